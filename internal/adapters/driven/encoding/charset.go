package encoding

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	xencoding "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/unicode/norm"

	"github.com/gutentopics/gutentopics/internal/core/ports/driven"
)

// Ensure Charset implements the interface.
var _ driven.Charset = (*Charset)(nil)

// utf8BOM is stripped from decoded UTF-8 text.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// chardetNames maps chardet labels that neither index knows.
var chardetNames = map[string]xencoding.Encoding{
	"gb-18030": simplifiedchinese.GB18030,
	"utf-32be": utf32.UTF32(utf32.BigEndian, utf32.UseBOM),
	"utf-32le": utf32.UTF32(utf32.LittleEndian, utf32.UseBOM),
}

// ErrUnknownEncoding is returned for labels no decoder exists for.
var ErrUnknownEncoding = errors.New("unknown encoding")

// ErrInvalidBytes is returned when content is not valid in the requested
// encoding.
var ErrInvalidBytes = errors.New("invalid byte sequence")

// Charset implements driven.Charset.
type Charset struct {
	detector *chardet.Detector
}

// New creates a charset detector and decoder for plain text.
func New() *Charset {
	return &Charset{detector: chardet.NewTextDetector()}
}

// Detect returns the most likely encoding of sample.
// Confidence is on chardet's 0-100 scale.
func (c *Charset) Detect(sample []byte) (string, int, error) {
	if len(sample) == 0 {
		return "", 0, errors.New("empty sample")
	}
	if bytes.HasPrefix(sample, utf8BOM) {
		return "UTF-8", 100, nil
	}

	result, err := c.detector.DetectBest(sample)
	if err != nil {
		return "", 0, fmt.Errorf("detect charset: %w", err)
	}
	return result.Charset, result.Confidence, nil
}

// Decode converts content in the named encoding to NFC-normalised UTF-8.
func (c *Charset) Decode(content []byte, label string) (string, error) {
	if isUTF8(label) {
		content = bytes.TrimPrefix(content, utf8BOM)
		if !utf8.Valid(content) {
			return "", fmt.Errorf("%w for UTF-8", ErrInvalidBytes)
		}
		return norm.NFC.String(string(content)), nil
	}

	enc, err := lookup(label)
	if err != nil {
		return "", err
	}

	decoded, err := enc.NewDecoder().Bytes(content)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", label, err)
	}
	// x/text decoders substitute U+FFFD for bytes they cannot map.
	if bytes.ContainsRune(decoded, utf8.RuneError) {
		return "", fmt.Errorf("%w for %s", ErrInvalidBytes, label)
	}
	return norm.NFC.String(string(decoded)), nil
}

// Supports reports whether label names an encoding Decode can handle.
func (c *Charset) Supports(label string) bool {
	if isUTF8(label) {
		return true
	}
	_, err := lookup(label)
	return err == nil
}

func isUTF8(label string) bool {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "utf-8", "utf8", "ascii", "us-ascii":
		return true
	}
	return false
}

// lookup resolves a label via chardet's own names, then the WHATWG index,
// then IANA names. chardet's visual/logical suffixes on the EBCDIC code
// pages are dropped first.
func lookup(label string) (xencoding.Encoding, error) {
	name := strings.ToLower(strings.TrimSpace(label))
	name = strings.TrimSuffix(strings.TrimSuffix(name, "_rtl"), "_ltr")

	if enc, ok := chardetNames[name]; ok {
		return enc, nil
	}
	// The WHATWG replacement encoding maps every input to U+FFFD.
	if enc, err := htmlindex.Get(name); err == nil && enc != xencoding.Replacement {
		return enc, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil || enc == xencoding.Replacement {
		return nil, fmt.Errorf("%w %q", ErrUnknownEncoding, label)
	}
	return enc, nil
}
