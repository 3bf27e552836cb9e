package driving

import (
	"context"

	"github.com/gutentopics/gutentopics/internal/core/domain"
)

// TopicAttributor maps normalised documents onto a pre-trained topic model.
type TopicAttributor interface {
	// AttributeTopics returns topic keywords and known sibling documents for
	// every topic assigned to documents. An empty documents slice or a
	// misaligned index returns domain.ErrInvalidInput; model failures return
	// domain.ErrAttribution.
	AttributeTopics(
		ctx context.Context,
		documents []domain.NormalizedDocument,
		index domain.KnownCorpusIndex,
	) (*domain.AnalysisResult, error)
}
