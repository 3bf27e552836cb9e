package driving

import (
	"context"

	"github.com/gutentopics/gutentopics/internal/core/domain"
)

// AnalysisService runs the full pipeline for uploaded ebooks.
type AnalysisService interface {
	// Analyze normalises content, attributes it to topics against the
	// stored corpus index and persists the result.
	Analyze(ctx context.Context, name string, content []byte) (*domain.Analysis, error)

	// Get retrieves a stored analysis by ID.
	Get(ctx context.Context, id string) (*domain.Analysis, error)

	// List returns all stored analyses, newest first.
	List(ctx context.Context) ([]domain.Analysis, error)
}
