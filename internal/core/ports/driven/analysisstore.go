package driven

import (
	"context"

	"github.com/gutentopics/gutentopics/internal/core/domain"
)

// AnalysisStore persists completed analyses.
type AnalysisStore interface {
	// Save stores or replaces an analysis.
	Save(ctx context.Context, analysis domain.Analysis) error

	// Get retrieves an analysis by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.Analysis, error)

	// List returns all analyses, newest first.
	List(ctx context.Context) ([]domain.Analysis, error)
}

// AnalysisRecorder observes analysis outcomes, typically for metrics.
type AnalysisRecorder interface {
	RecordAnalysis(outcome domain.Outcome, tokens int)
}
