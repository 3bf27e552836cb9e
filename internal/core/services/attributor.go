package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/gutentopics/gutentopics/internal/core/domain"
	"github.com/gutentopics/gutentopics/internal/core/ports/driven"
	"github.com/gutentopics/gutentopics/internal/core/ports/driving"
	"github.com/gutentopics/gutentopics/internal/logger"
)

// Ensure TopicAttributor implements the interface.
var _ driving.TopicAttributor = (*TopicAttributor)(nil)

// keywordSeparator joins topic keywords for display.
const keywordSeparator = ", "

// TopicAttributor assigns normalised documents to topics of a pre-trained
// model and joins the topics against the known corpus index.
type TopicAttributor struct {
	model driven.TopicModel
}

// NewTopicAttributor creates a new topic attributor.
func NewTopicAttributor(model driven.TopicModel) *TopicAttributor {
	return &TopicAttributor{model: model}
}

// AttributeTopics transforms the batch with the model and builds the
// topic -> keywords and topic -> known documents views.
func (a *TopicAttributor) AttributeTopics(
	ctx context.Context,
	documents []domain.NormalizedDocument,
	index domain.KnownCorpusIndex,
) (*domain.AnalysisResult, error) {
	if len(documents) == 0 {
		return nil, fmt.Errorf("%w: empty document batch", domain.ErrInvalidInput)
	}
	if err := index.Validate(); err != nil {
		return nil, err
	}

	logger.Section("attribute")

	batch := make([]string, len(documents))
	for i := range documents {
		batch[i] = documents[i].Text()
	}

	topics, probabilities, err := a.model.Transform(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("%w: transform: %w", domain.ErrAttribution, err)
	}
	if len(topics) != len(batch) || len(probabilities) != len(batch) {
		return nil, fmt.Errorf("%w: model returned %d topics and %d probabilities for %d documents",
			domain.ErrAttribution, len(topics), len(probabilities), len(batch))
	}

	result := &domain.AnalysisResult{
		Assignments:        make([]domain.TopicAssignment, len(batch)),
		TopicsWords:        make(map[int]string),
		DocumentsForTopics: make(map[int][]string),
	}
	for i := range topics {
		result.Assignments[i] = domain.TopicAssignment{
			DocumentIndex: i,
			TopicID:       topics[i],
			Probability:   probabilities[i],
		}
		logger.Debug("assigned topic", "document", i, "topic", topics[i], "probability", probabilities[i])
	}

	for _, id := range distinctTopics(topics) {
		keywords, err := a.model.TopicKeywords(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("%w: keywords for topic %d: %w", domain.ErrAttribution, id, err)
		}
		result.TopicsWords[id] = keywordSummary(keywords)
		result.DocumentsForTopics[id] = index.DocumentsWithTopic(id)
	}

	if !result.HasTopics() {
		logger.Debug("no confident topic found", "documents", len(batch))
	}

	return result, nil
}

// distinctTopics returns the assigned topic ids in order of first
// appearance, without domain.NoTopic.
func distinctTopics(topics []int) []int {
	seen := make(map[int]struct{}, len(topics))
	var ids []int
	for _, id := range topics {
		if id == domain.NoTopic {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// keywordSummary drops scores and joins the words in model order.
func keywordSummary(keywords []domain.Keyword) string {
	words := make([]string, len(keywords))
	for i, kw := range keywords {
		words[i] = kw.Word
	}
	return strings.Join(words, keywordSeparator)
}
