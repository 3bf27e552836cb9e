package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gutentopics/gutentopics/internal/adapters/driven/encoding"
	"github.com/gutentopics/gutentopics/internal/adapters/driven/lexicon/english"
	"github.com/gutentopics/gutentopics/internal/core/domain"
)

// newEnglishNormalizer wires the normalizer to the real encoding and
// English lexicon adapters.
func newEnglishNormalizer(t *testing.T) *Normalizer {
	t.Helper()
	require.NoError(t, english.Setup())
	return NewNormalizer(encoding.New(), english.New(), NormalizerOptions{
		MinConfidence: 30,
		SampleBytes:   64 * 1024,
	})
}

func TestNormalizer_EnglishGutenbergEbook(t *testing.T) {
	n := newEnglishNormalizer(t)

	doc, err := n.Normalize(domain.RawDocument{
		Name: "foo.txt",
		Content: []byte("*** START OF THE PROJECT GUTENBERG EBOOK FOO ***\n" +
			"Hello world, the cats run. *** END OF THE PROJECT GUTENBERG EBOOK ***\n" +
			"License text..."),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world", "cat", "run"}, doc.Tokens)
}

func TestNormalizer_EnglishIrregularForms(t *testing.T) {
	n := newEnglishNormalizer(t)

	tests := []struct {
		text     string
		expected []string
	}{
		{"The geese studied the mice.", []string{"goose", "study", "mouse"}},
		{"Horses and whales.", []string{"horse", "whale"}},
		{"She argued.", []string{"argue"}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			doc, err := n.Normalize(domain.RawDocument{Content: []byte(tt.text)})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, doc.Tokens)
		})
	}
}
