package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gutentopics/gutentopics/internal/core/domain"
	"github.com/gutentopics/gutentopics/internal/core/ports/driven"
	"github.com/gutentopics/gutentopics/internal/core/ports/driving"
	"github.com/gutentopics/gutentopics/internal/logger"
)

// Ensure Normalizer implements the interface.
var _ driving.NormalizerService = (*Normalizer)(nil)

// fallbackEncoding is used whenever detection is unsure or fails.
const fallbackEncoding = "UTF-8"

// NormalizerOptions tunes encoding detection.
type NormalizerOptions struct {
	// MinConfidence is the detector confidence below which UTF-8 is used.
	MinConfidence int

	// SampleBytes is how many leading bytes are given to the detector.
	// Zero means the whole document.
	SampleBytes int
}

// NormalizerOptionsFrom derives options from application settings.
func NormalizerOptionsFrom(s domain.EncodingSettings) NormalizerOptions {
	return NormalizerOptions{
		MinConfidence: s.MinConfidence,
		SampleBytes:   s.SampleBytes,
	}
}

// Normalizer converts raw ebook bytes into an ordered sequence of
// lowercase content-word lemmas. It holds no mutable state and is safe
// for concurrent use when its collaborators are.
type Normalizer struct {
	charset driven.Charset
	lexicon driven.Lexicon
	opts    NormalizerOptions
}

// NewNormalizer creates a new normalizer.
func NewNormalizer(charset driven.Charset, lexicon driven.Lexicon, opts NormalizerOptions) *Normalizer {
	return &Normalizer{
		charset: charset,
		lexicon: lexicon,
		opts:    opts,
	}
}

// Normalize runs detect/decode, boilerplate stripping, tokenization with
// lemmatization, and content-word filtering, in that order.
func (n *Normalizer) Normalize(raw domain.RawDocument) (domain.NormalizedDocument, error) {
	if r, ok := n.lexicon.(driven.Readiness); ok && !r.Ready() {
		return domain.NormalizedDocument{}, domain.ErrNotReady
	}

	logger.Section("normalize")

	label := raw.Encoding
	if label == "" {
		label = n.detectEncoding(raw.Content)
	}

	text, err := n.decode(raw.Content, label)
	if err != nil {
		return domain.NormalizedDocument{}, err
	}

	body := stripBoilerplate(text)
	tokens := n.tokenizeAndLemmatize(body)
	kept := n.filterContentWords(tokens)

	logger.Debug("normalized document",
		"name", raw.Name, "tokens", len(tokens), "kept", len(kept))

	return domain.NormalizedDocument{Tokens: kept}, nil
}

// detectEncoding returns the detector's label, or UTF-8 when the
// detector errors, is not confident, or names an encoding with no
// decoder. It never fails.
func (n *Normalizer) detectEncoding(content []byte) string {
	sample := content
	if n.opts.SampleBytes > 0 && len(sample) > n.opts.SampleBytes {
		sample = sample[:n.opts.SampleBytes]
	}

	label, confidence, err := n.charset.Detect(sample)
	switch {
	case err != nil:
		logger.Debug("encoding detection failed, using fallback", "err", err, "fallback", fallbackEncoding)
		return fallbackEncoding
	case label == "" || confidence < n.opts.MinConfidence:
		logger.Debug("encoding detection not confident, using fallback",
			"label", label, "confidence", confidence, "fallback", fallbackEncoding)
		return fallbackEncoding
	case !n.charset.Supports(label):
		logger.Debug("detected encoding has no decoder, using fallback",
			"label", label, "confidence", confidence, "fallback", fallbackEncoding)
		return fallbackEncoding
	}

	logger.Debug("detected encoding", "label", label, "confidence", confidence)
	return label
}

// decode converts content to text. Any failure is a terminal DecodingError.
func (n *Normalizer) decode(content []byte, label string) (string, error) {
	text, err := n.charset.Decode(content, label)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", domain.ErrDecoding, label, err)
	}
	return text, nil
}

// tokenizeAndLemmatize tokenizes the whole body once and lemmatizes each
// token, preserving order.
func (n *Normalizer) tokenizeAndLemmatize(text string) []string {
	tokens := n.lexicon.Tokenize(text)
	lemmas := make([]string, len(tokens))
	for i, tok := range tokens {
		lemmas[i] = n.lexicon.Lemmatize(tok)
	}
	return lemmas
}

// filterContentWords keeps alphabetic, non-stopword tokens, lowercased.
// Order and duplicates are preserved.
func (n *Normalizer) filterContentWords(tokens []string) []string {
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !isAlpha(tok) {
			continue
		}
		lower := strings.ToLower(tok)
		if n.lexicon.Contains(lower) {
			continue
		}
		kept = append(kept, lower)
	}
	return kept
}

// isAlpha reports whether s is non-empty and made only of letters.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
