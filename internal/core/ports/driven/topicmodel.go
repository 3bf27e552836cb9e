package driven

import (
	"context"

	"github.com/gutentopics/gutentopics/internal/core/domain"
)

// TopicModel is a pre-trained topic model. It is treated as a black box
// and must be safe for concurrent read-only use.
type TopicModel interface {
	// Transform assigns a topic and probability to each document.
	// Both slices are index-aligned with documents. domain.NoTopic
	// marks a document with no confident topic.
	Transform(ctx context.Context, documents []string) (topics []int, probabilities []float64, err error)

	// TopicKeywords returns the topic's keywords by descending relevance.
	TopicKeywords(ctx context.Context, topicID int) ([]domain.Keyword, error)
}
