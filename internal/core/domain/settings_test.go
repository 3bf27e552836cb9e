package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, "http://localhost:8765", s.TopicModel.BaseURL)
	assert.Equal(t, 30*time.Second, s.TopicModel.Timeout)
	assert.Equal(t, 30, s.Encoding.MinConfidence)
	assert.Equal(t, "cleaned_files", s.Output.CleanedDir)
	assert.Equal(t, "uploads", s.Server.UploadDir)
	assert.Empty(t, s.Storage.DataDir)
	assert.NoError(t, s.Validate())
}

func TestAppSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*AppSettings)
	}{
		{"empty base url", func(s *AppSettings) { s.TopicModel.BaseURL = "" }},
		{"zero rate", func(s *AppSettings) { s.TopicModel.RequestsPerSecond = 0 }},
		{"confidence above range", func(s *AppSettings) { s.Encoding.MinConfidence = 101 }},
		{"negative confidence", func(s *AppSettings) { s.Encoding.MinConfidence = -1 }},
		{"zero sample", func(s *AppSettings) { s.Encoding.SampleBytes = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultAppSettings()
			tt.modify(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidInput)
		})
	}
}
