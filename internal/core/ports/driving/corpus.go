package driving

import (
	"context"
	"io"

	"github.com/gutentopics/gutentopics/internal/core/domain"
)

// CorpusService manages the known corpus index.
type CorpusService interface {
	// Index returns the stored corpus index.
	Index(ctx context.Context) (domain.KnownCorpusIndex, error)

	// Import replaces the index with CSV rows of "name,topic_id".
	// Returns the number of documents imported.
	Import(ctx context.Context, r io.Reader) (int, error)
}
