package domain

import (
	"fmt"
	"sort"
)

// NoTopic is the topic id the model assigns when no topic is confident.
// It never appears as a key in an AnalysisResult.
const NoTopic = -1

// TopicAssignment is the model's verdict for one document of a batch.
type TopicAssignment struct {
	// DocumentIndex is the position of the document in the batch.
	DocumentIndex int `json:"document_index"`

	// TopicID is the assigned topic, or NoTopic.
	TopicID int `json:"topic_id"`

	// Probability is the model's confidence in TopicID.
	Probability float64 `json:"probability"`
}

// HasTopic returns true if a topic was confidently assigned.
func (a TopicAssignment) HasTopic() bool {
	return a.TopicID != NoTopic
}

// Keyword is one descriptive word of a topic with its relevance score.
type Keyword struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// KnownCorpusIndex holds the previously analysed documents.
// DocumentNames[i] was assigned TopicOfDocument[i]. The index is read-only.
type KnownCorpusIndex struct {
	DocumentNames   []string `json:"document_names"`
	TopicOfDocument []int    `json:"topic_of_document"`
}

// Len returns the number of known documents.
func (i KnownCorpusIndex) Len() int {
	return len(i.DocumentNames)
}

// Validate checks that both tables are index-aligned.
func (i KnownCorpusIndex) Validate() error {
	if len(i.DocumentNames) != len(i.TopicOfDocument) {
		return fmt.Errorf("%w: corpus index has %d names but %d topic ids",
			ErrInvalidInput, len(i.DocumentNames), len(i.TopicOfDocument))
	}
	return nil
}

// DocumentsWithTopic returns the names of every document assigned topicID,
// in corpus order. The result is never nil.
func (i KnownCorpusIndex) DocumentsWithTopic(topicID int) []string {
	names := make([]string, 0)
	for pos, t := range i.TopicOfDocument {
		if t == topicID {
			names = append(names, i.DocumentNames[pos])
		}
	}
	return names
}

// AnalysisResult is the topic report for a batch of documents.
type AnalysisResult struct {
	// Assignments holds one entry per input document, in input order.
	Assignments []TopicAssignment `json:"assignments"`

	// TopicsWords maps each assigned topic to its comma-joined keywords.
	TopicsWords map[int]string `json:"topics_words"`

	// DocumentsForTopics maps each assigned topic to the known documents
	// sharing it. Newly analysed documents are never members.
	DocumentsForTopics map[int][]string `json:"documents_for_topics"`
}

// HasTopics returns true if at least one document received a topic.
// A false value is the "no confident topic" outcome, not an error.
func (r AnalysisResult) HasTopics() bool {
	return len(r.TopicsWords) > 0
}

// Topics returns the assigned topic ids in ascending order.
func (r AnalysisResult) Topics() []int {
	ids := make([]int, 0, len(r.TopicsWords))
	for id := range r.TopicsWords {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
