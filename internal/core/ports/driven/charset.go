package driven

// EncodingDetector guesses the character encoding of a byte sample.
type EncodingDetector interface {
	// Detect returns an encoding label and a confidence from 0 to 100.
	Detect(sample []byte) (label string, confidence int, err error)
}

// TextDecoder converts bytes in a named encoding into a UTF-8 string.
type TextDecoder interface {
	// Decode fails if content is not valid in the named encoding
	// or the encoding is unknown.
	Decode(content []byte, label string) (string, error)

	// Supports reports whether label names an encoding Decode knows.
	Supports(label string) bool
}

// Charset combines detection and decoding.
type Charset interface {
	EncodingDetector
	TextDecoder
}
