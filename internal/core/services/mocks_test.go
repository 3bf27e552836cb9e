package services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gutentopics/gutentopics/internal/core/domain"
)

// --- Mock implementations ---

// mockCharset implements driven.Charset for testing. Decode accepts
// UTF-8 only and fails on anything else unless decodeErr is set.
type mockCharset struct {
	label       string
	confidence  int
	detectErr   error
	decodeErr   error
	unsupported map[string]bool

	detectCalls int
	decodedWith []string
}

func (m *mockCharset) Detect(_ []byte) (string, int, error) {
	m.detectCalls++
	return m.label, m.confidence, m.detectErr
}

func (m *mockCharset) Decode(content []byte, label string) (string, error) {
	m.decodedWith = append(m.decodedWith, label)
	if m.decodeErr != nil {
		return "", m.decodeErr
	}
	if !utf8.Valid(content) {
		return "", errors.New("invalid byte sequence")
	}
	return string(content), nil
}

func (m *mockCharset) Supports(label string) bool {
	return !m.unsupported[label]
}

// mockLexicon implements driven.Lexicon and driven.Readiness with a
// regexp tokenizer and a fixed lemma table.
type mockLexicon struct {
	notReady bool
	lemmas   map[string]string
	stop     map[string]struct{}
}

var mockTokenPattern = regexp.MustCompile(`[\p{L}]+|[0-9]+|[^\s\p{L}0-9]`)

func newMockLexicon() *mockLexicon {
	return &mockLexicon{
		lemmas: map[string]string{
			"cats":   "cat",
			"whales": "whale",
			"swam":   "swim",
			"seas":   "sea",
		},
		stop: map[string]struct{}{
			"the": {}, "a": {}, "in": {}, "and": {}, "of": {},
		},
	}
}

func (m *mockLexicon) Ready() bool {
	return !m.notReady
}

func (m *mockLexicon) Tokenize(text string) []string {
	return mockTokenPattern.FindAllString(text, -1)
}

func (m *mockLexicon) Lemmatize(token string) string {
	if lemma, ok := m.lemmas[strings.ToLower(token)]; ok {
		return lemma
	}
	return token
}

func (m *mockLexicon) Contains(word string) bool {
	_, ok := m.stop[word]
	return ok
}

// mockTopicModel implements driven.TopicModel for testing.
type mockTopicModel struct {
	topics        []int
	probabilities []float64
	keywords      map[int][]domain.Keyword
	transformErr  error
	keywordsErr   error

	transformCalls int
	received       []string
	keywordCalls   []int
}

func (m *mockTopicModel) Transform(_ context.Context, documents []string) ([]int, []float64, error) {
	m.transformCalls++
	m.received = documents
	if m.transformErr != nil {
		return nil, nil, m.transformErr
	}
	return m.topics, m.probabilities, nil
}

func (m *mockTopicModel) TopicKeywords(_ context.Context, topicID int) ([]domain.Keyword, error) {
	m.keywordCalls = append(m.keywordCalls, topicID)
	if m.keywordsErr != nil {
		return nil, m.keywordsErr
	}
	return m.keywords[topicID], nil
}

// mockRecorder implements driven.AnalysisRecorder for testing.
type mockRecorder struct {
	outcomes []domain.Outcome
	tokens   []int
}

func (m *mockRecorder) RecordAnalysis(outcome domain.Outcome, tokens int) {
	m.outcomes = append(m.outcomes, outcome)
	m.tokens = append(m.tokens, tokens)
}
