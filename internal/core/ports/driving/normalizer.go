package driving

import "github.com/gutentopics/gutentopics/internal/core/domain"

// NormalizerService turns raw ebook bytes into content-word lemmas.
type NormalizerService interface {
	// Normalize decodes, strips distribution boilerplate, tokenizes,
	// lemmatizes and filters the document. It is deterministic.
	// Returns domain.ErrDecoding if the bytes cannot be decoded.
	Normalize(raw domain.RawDocument) (domain.NormalizedDocument, error)
}
