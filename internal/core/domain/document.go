package domain

import "strings"

// NormalizedDocument is the cleaned form of a RawDocument: an ordered
// sequence of lowercase, alphabetic, non-stopword lemmas.
// Multiplicity is preserved; tokens are never deduplicated.
type NormalizedDocument struct {
	// Tokens are the content-word lemmas in document order.
	Tokens []string
}

// Text joins the tokens into a single whitespace-separated string.
// This is the granularity the topic model consumes.
func (d NormalizedDocument) Text() string {
	return strings.Join(d.Tokens, " ")
}

// Len returns the number of tokens.
func (d NormalizedDocument) Len() int {
	return len(d.Tokens)
}

// IsEmpty returns true if normalisation kept no tokens.
func (d NormalizedDocument) IsEmpty() bool {
	return len(d.Tokens) == 0
}
