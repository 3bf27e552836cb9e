package domain

import (
	"fmt"
	"time"
)

// TopicModelSettings configures the remote topic model service.
type TopicModelSettings struct {
	// BaseURL is the topic model service base URL.
	BaseURL string

	// Timeout bounds each request to the service.
	Timeout time.Duration

	// RequestsPerSecond is the sustained request rate.
	RequestsPerSecond float64

	// Burst is the maximum request burst.
	Burst int
}

// EncodingSettings tunes character encoding detection.
type EncodingSettings struct {
	// MinConfidence is the detector confidence (0-100) below which
	// UTF-8 is assumed instead of the detected encoding.
	MinConfidence int

	// SampleBytes is how many leading bytes the detector inspects.
	SampleBytes int
}

// StorageSettings holds persistence locations.
type StorageSettings struct {
	// DataDir holds the metadata database.
	DataDir string
}

// OutputSettings holds locations for generated files.
type OutputSettings struct {
	// CleanedDir receives cleaned_<name> files from the normalize command.
	CleanedDir string
}

// ServerSettings configures the HTTP upload server.
type ServerSettings struct {
	// Addr is the listen address.
	Addr string

	// UploadDir receives uploaded files.
	UploadDir string

	// MaxUploadBytes caps the size of a single upload.
	MaxUploadBytes int64
}

// WatchSettings configures the inbox watcher.
type WatchSettings struct {
	// Dir is the directory watched for new ebooks.
	Dir string
}

// AppSettings holds all application settings.
type AppSettings struct {
	TopicModel TopicModelSettings
	Encoding   EncodingSettings
	Storage    StorageSettings
	Output     OutputSettings
	Server     ServerSettings
	Watch      WatchSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// Storage.DataDir is left empty so stores pick their home-relative default.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		TopicModel: TopicModelSettings{
			BaseURL:           "http://localhost:8765",
			Timeout:           30 * time.Second,
			RequestsPerSecond: 5,
			Burst:             5,
		},
		Encoding: EncodingSettings{
			MinConfidence: 30,
			SampleBytes:   64 * 1024,
		},
		Output: OutputSettings{
			CleanedDir: "cleaned_files",
		},
		Server: ServerSettings{
			Addr:           ":8080",
			UploadDir:      "uploads",
			MaxUploadBytes: 32 << 20,
		},
		Watch: WatchSettings{
			Dir: "inbox",
		},
	}
}

// Validate checks settings for values no component can work with.
func (s AppSettings) Validate() error {
	if s.TopicModel.BaseURL == "" {
		return fmt.Errorf("%w: topic model base URL is empty", ErrInvalidInput)
	}
	if s.TopicModel.RequestsPerSecond <= 0 {
		return fmt.Errorf("%w: topic model request rate must be positive", ErrInvalidInput)
	}
	if s.Encoding.MinConfidence < 0 || s.Encoding.MinConfidence > 100 {
		return fmt.Errorf("%w: encoding confidence %d outside 0-100", ErrInvalidInput, s.Encoding.MinConfidence)
	}
	if s.Encoding.SampleBytes <= 0 {
		return fmt.Errorf("%w: encoding sample size must be positive", ErrInvalidInput)
	}
	return nil
}
