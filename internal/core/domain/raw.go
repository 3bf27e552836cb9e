package domain

// RawDocument represents the opaque bytes of an uploaded ebook.
// It exists only for the duration of one normalisation call.
type RawDocument struct {
	// Name is the display name of the upload, usually its file name.
	Name string

	// Content is the raw bytes.
	Content []byte

	// Encoding is the declared character encoding.
	// Empty means the encoding is detected from Content.
	Encoding string
}
