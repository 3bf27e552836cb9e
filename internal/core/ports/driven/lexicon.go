package driven

// Tokenizer splits text into word-level tokens, in order.
// Punctuation and contractions are split off as separate tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// Lemmatizer reduces a token to its dictionary base form.
type Lemmatizer interface {
	Lemmatize(token string) string
}

// StopwordSet reports whether a lowercase word is a stopword.
type StopwordSet interface {
	Contains(word string) bool
}

// Lexicon bundles the language resources the normaliser needs.
type Lexicon interface {
	Tokenizer
	Lemmatizer
	StopwordSet
}

// Readiness is implemented by collaborators that require explicit setup
// before use. Callers must not use a collaborator that reports false.
type Readiness interface {
	Ready() bool
}
