package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates a caller violated a precondition,
	// such as an empty document batch or a misaligned corpus index.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDecoding indicates raw bytes could not be decoded under the
	// detected or fallback encoding. It is terminal for the document.
	ErrDecoding = errors.New("decoding failed")

	// ErrAttribution indicates the topic model failed. No partial
	// result is produced.
	ErrAttribution = errors.New("topic attribution failed")

	// ErrNotReady indicates the lexicon resources were not set up
	// before normalisation.
	ErrNotReady = errors.New("lexicon not ready")
)

// OutcomeOf classifies an analysis error.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrDecoding):
		return OutcomeDecodingError
	case errors.Is(err, ErrInvalidInput):
		return OutcomeInvalidInput
	case errors.Is(err, ErrAttribution):
		return OutcomeAttributionError
	default:
		return OutcomeError
	}
}
