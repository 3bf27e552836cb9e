package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gutentopics/gutentopics/internal/core/domain"
)

func newTestNormalizer(charset *mockCharset, lexicon *mockLexicon) *Normalizer {
	return NewNormalizer(charset, lexicon, NormalizerOptions{MinConfidence: 30, SampleBytes: 1024})
}

func TestNormalizer_GutenbergEbook(t *testing.T) {
	charset := &mockCharset{label: "UTF-8", confidence: 100}
	n := newTestNormalizer(charset, newMockLexicon())

	raw := domain.RawDocument{
		Name: "foo.txt",
		Content: []byte("*** START OF THE PROJECT GUTENBERG EBOOK FOO ***\n" +
			"Hello world, the cats run. *** END OF THE PROJECT GUTENBERG EBOOK ***\n" +
			"License text..."),
	}

	doc, err := n.Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world", "cat", "run"}, doc.Tokens)
}

func TestNormalizer_EmptyContent(t *testing.T) {
	n := newTestNormalizer(&mockCharset{label: "UTF-8", confidence: 100}, newMockLexicon())

	doc, err := n.Normalize(domain.RawDocument{Name: "empty.txt"})
	require.NoError(t, err)
	assert.True(t, doc.IsEmpty())
}

func TestNormalizer_FilterKeepsOnlyAlphabeticContentWords(t *testing.T) {
	n := newTestNormalizer(&mockCharset{label: "UTF-8", confidence: 100}, newMockLexicon())

	doc, err := n.Normalize(domain.RawDocument{
		Content: []byte("In 1851 the Whales swam, and swam; whales! Café 42"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"whale", "swim", "swim", "whale", "café"}, doc.Tokens)
	for _, tok := range doc.Tokens {
		assert.Equal(t, strings.ToLower(tok), tok)
		assert.True(t, isAlpha(tok), tok)
	}
}

func TestNormalizer_Idempotent(t *testing.T) {
	n := newTestNormalizer(&mockCharset{label: "UTF-8", confidence: 100}, newMockLexicon())

	first, err := n.Normalize(domain.RawDocument{Content: []byte("The whales swam in the seas.")})
	require.NoError(t, err)

	second, err := n.Normalize(domain.RawDocument{Content: []byte(first.Text())})
	require.NoError(t, err)
	assert.Equal(t, first.Tokens, second.Tokens)
}

func TestNormalizer_EncodingFallback(t *testing.T) {
	tests := []struct {
		name    string
		charset *mockCharset
	}{
		{"low confidence", &mockCharset{label: "windows-1252", confidence: 10}},
		{"detector error", &mockCharset{detectErr: errors.New("no match")}},
		{"empty label", &mockCharset{confidence: 90}},
		{"no decoder for label", &mockCharset{
			label: "IBM424_rtl", confidence: 90, unsupported: map[string]bool{"IBM424_rtl": true},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := newTestNormalizer(tt.charset, newMockLexicon())

			doc, err := n.Normalize(domain.RawDocument{Content: []byte("whales")})
			require.NoError(t, err)
			assert.Equal(t, []string{"whale"}, doc.Tokens)
			assert.Equal(t, []string{fallbackEncoding}, tt.charset.decodedWith)
		})
	}
}

func TestNormalizer_UsesDetectedEncoding(t *testing.T) {
	charset := &mockCharset{label: "ISO-8859-1", confidence: 80}
	n := newTestNormalizer(charset, newMockLexicon())

	_, err := n.Normalize(domain.RawDocument{Content: []byte("whales")})
	require.NoError(t, err)
	assert.Equal(t, []string{"ISO-8859-1"}, charset.decodedWith)
}

func TestNormalizer_DeclaredEncodingSkipsDetection(t *testing.T) {
	charset := &mockCharset{label: "ISO-8859-1", confidence: 80}
	n := newTestNormalizer(charset, newMockLexicon())

	_, err := n.Normalize(domain.RawDocument{Content: []byte("whales"), Encoding: "UTF-8"})
	require.NoError(t, err)
	assert.Zero(t, charset.detectCalls)
	assert.Equal(t, []string{"UTF-8"}, charset.decodedWith)
}

func TestNormalizer_DecodingError(t *testing.T) {
	n := newTestNormalizer(&mockCharset{label: "UTF-8", confidence: 100}, newMockLexicon())

	_, err := n.Normalize(domain.RawDocument{Content: []byte{0xff, 0xfe, 0xfd}})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDecoding)
	assert.Contains(t, err.Error(), "UTF-8")
}

func TestNormalizer_NotReady(t *testing.T) {
	lexicon := newMockLexicon()
	lexicon.notReady = true
	n := newTestNormalizer(&mockCharset{label: "UTF-8", confidence: 100}, lexicon)

	_, err := n.Normalize(domain.RawDocument{Content: []byte("whales")})
	assert.ErrorIs(t, err, domain.ErrNotReady)
}

func TestStripBoilerplate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "both markers",
			in:   "header *** START OF THE PROJECT GUTENBERG EBOOK X *** body *** END OF THE PROJECT GUTENBERG EBOOK *** license",
			want: " body ",
		},
		{
			name: "start only",
			in:   "header *** START OF THIS PROJECT GUTENBERG EBOOK X *** body",
			want: " body",
		},
		{
			name: "end only",
			in:   "body *** END OF THIS PROJECT GUTENBERG EBOOK *** license",
			want: "body ",
		},
		{
			name: "no markers",
			in:   "just a body",
			want: "just a body",
		},
		{
			name: "case insensitive",
			in:   "*** start of the project gutenberg ebook x ***body*** end of the project gutenberg ebook",
			want: "body",
		},
		{
			name: "end before start is ignored",
			in:   "*** END OF THE PROJECT GUTENBERG EBOOK *** front *** START OF THE PROJECT GUTENBERG EBOOK X *** body",
			want: " body",
		},
		{
			name: "first markers win",
			in: "*** START OF THE PROJECT GUTENBERG EBOOK A *** one " +
				"*** END OF THE PROJECT GUTENBERG EBOOK *** " +
				"*** START OF THE PROJECT GUTENBERG EBOOK B *** two " +
				"*** END OF THE PROJECT GUTENBERG EBOOK ***",
			want: " one ",
		},
		{
			name: "start marker needs a title",
			in:   "*** START OF THE PROJECT GUTENBERG EBOOK *** body",
			want: "*** START OF THE PROJECT GUTENBERG EBOOK *** body",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripBoilerplate(tt.in))
		})
	}
}

func TestStripBoilerplate_ResultIsSubstring(t *testing.T) {
	in := "a *** START OF THE PROJECT GUTENBERG EBOOK T *** b *** END OF THE PROJECT GUTENBERG EBOOK c"
	out := stripBoilerplate(in)
	assert.True(t, strings.Contains(in, out))
	assert.NotContains(t, out, "START OF")
	assert.NotContains(t, out, "END OF")
}

func TestIsAlpha(t *testing.T) {
	assert.True(t, isAlpha("whale"))
	assert.True(t, isAlpha("Ærø"))
	assert.False(t, isAlpha(""))
	assert.False(t, isAlpha("n't"))
	assert.False(t, isAlpha("1851"))
	assert.False(t, isAlpha(","))
}

func TestNormalizerOptionsFrom(t *testing.T) {
	opts := NormalizerOptionsFrom(domain.EncodingSettings{MinConfidence: 40, SampleBytes: 512})
	assert.Equal(t, NormalizerOptions{MinConfidence: 40, SampleBytes: 512}, opts)
}
