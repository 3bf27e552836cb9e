package english

import (
	"strings"

	"github.com/gutentopics/gutentopics/internal/core/ports/driven"
)

// Ensure Lexicon implements the interfaces.
var (
	_ driven.Lexicon   = (*Lexicon)(nil)
	_ driven.Readiness = (*Lexicon)(nil)
)

// Lexicon tokenizes with Punkt sentence splitting followed by Treebank
// word splitting, reduces tokens to dictionary lemmas, and recognises the
// NLTK English stopwords.
type Lexicon struct{}

// New creates a lexicon backed by the shared resources loaded by Setup.
func New() *Lexicon {
	return &Lexicon{}
}

// Ready reports whether Setup has completed.
func (l *Lexicon) Ready() bool {
	return Ready()
}

// Tokenize splits text into sentences and each sentence into word tokens.
// Punctuation and clitics such as "n't" become separate tokens.
// It returns nil if Setup has not run.
func (l *Lexicon) Tokenize(text string) []string {
	r := loaded.Load()
	if r == nil {
		return nil
	}

	var tokens []string
	for _, sentence := range r.sentences.Tokenize(text) {
		tokens = append(tokens, r.words.Tokenize(sentence)...)
	}
	return tokens
}

// Lemmatize returns the dictionary base form of token, lowercased.
// Words missing from the dictionary and stopwords are returned unchanged.
// It returns token unchanged if Setup has not run.
func (l *Lexicon) Lemmatize(token string) string {
	r := loaded.Load()
	if r == nil || token == "" {
		return token
	}
	lower := strings.ToLower(token)
	if l.Contains(lower) || !r.lemmas.InDict(lower) {
		return token
	}
	return r.lemmas.Lemma(lower)
}

// Contains reports whether word is an English stopword.
func (l *Lexicon) Contains(word string) bool {
	r := loaded.Load()
	if r == nil {
		return false
	}
	_, ok := r.stopwords[word]
	return ok
}
