package driven

import (
	"context"

	"github.com/gutentopics/gutentopics/internal/core/domain"
)

// CorpusIndexStore persists the known corpus index.
// Load is idempotent and may be called once per request.
type CorpusIndexStore interface {
	// Load returns the full index in corpus order.
	Load(ctx context.Context) (domain.KnownCorpusIndex, error)

	// Replace swaps the stored index for idx.
	Replace(ctx context.Context, idx domain.KnownCorpusIndex) error
}
