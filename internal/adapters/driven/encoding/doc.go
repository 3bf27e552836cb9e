// Package encoding detects and decodes the character encoding of raw
// ebook bytes using chardet statistics and golang.org/x/text decoders.
package encoding
