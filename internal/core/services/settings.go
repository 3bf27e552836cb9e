package services

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/gutentopics/gutentopics/internal/core/domain"
	"github.com/gutentopics/gutentopics/internal/core/ports/driven"
	"github.com/gutentopics/gutentopics/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyModelBaseURL   = "topicmodel.base_url"
	keyModelTimeout   = "topicmodel.timeout"
	keyModelRate      = "topicmodel.requests_per_second"
	keyModelBurst     = "topicmodel.burst"
	keyEncodingMin    = "encoding.min_confidence"
	keyEncodingSample = "encoding.sample_bytes"
	keyStorageDataDir = "storage.data_dir"
	keyOutputCleaned  = "output.cleaned_dir"
	keyServerAddr     = "server.addr"
	keyServerUploads  = "server.upload_dir"
	keyServerMaxBytes = "server.max_upload_bytes"
	keyWatchDir       = "watch.dir"
)

// settingKind is how a setting's string value is parsed.
type settingKind int

const (
	kindString settingKind = iota
	kindInt
	kindFloat
	kindDuration
)

var settingKinds = map[string]settingKind{
	keyModelBaseURL:   kindString,
	keyModelTimeout:   kindDuration,
	keyModelRate:      kindFloat,
	keyModelBurst:     kindInt,
	keyEncodingMin:    kindInt,
	keyEncodingSample: kindInt,
	keyStorageDataDir: kindString,
	keyOutputCleaned:  kindString,
	keyServerAddr:     kindString,
	keyServerUploads:  kindString,
	keyServerMaxBytes: kindInt,
	keyWatchDir:       kindString,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or malformed values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	d := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		TopicModel: domain.TopicModelSettings{
			BaseURL:           s.getString(keyModelBaseURL, d.TopicModel.BaseURL),
			Timeout:           s.getDuration(keyModelTimeout, d.TopicModel.Timeout),
			RequestsPerSecond: s.getFloat(keyModelRate, d.TopicModel.RequestsPerSecond),
			Burst:             s.getInt(keyModelBurst, d.TopicModel.Burst),
		},
		Encoding: domain.EncodingSettings{
			MinConfidence: s.getInt(keyEncodingMin, d.Encoding.MinConfidence),
			SampleBytes:   s.getInt(keyEncodingSample, d.Encoding.SampleBytes),
		},
		Storage: domain.StorageSettings{
			DataDir: s.getString(keyStorageDataDir, d.Storage.DataDir),
		},
		Output: domain.OutputSettings{
			CleanedDir: s.getString(keyOutputCleaned, d.Output.CleanedDir),
		},
		Server: domain.ServerSettings{
			Addr:           s.getString(keyServerAddr, d.Server.Addr),
			UploadDir:      s.getString(keyServerUploads, d.Server.UploadDir),
			MaxUploadBytes: int64(s.getInt(keyServerMaxBytes, int(d.Server.MaxUploadBytes))),
		},
		Watch: domain.WatchSettings{
			Dir: s.getString(keyWatchDir, d.Watch.Dir),
		},
	}

	return settings, nil
}

// Set parses value according to the key's type, checks the resulting
// settings are valid, and persists the value.
func (s *SettingsService) Set(key, value string) error {
	kind, ok := settingKinds[key]
	if !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	var typed any
	switch kind {
	case kindInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s expects an integer: %w", domain.ErrInvalidInput, key, err)
		}
		typed = int64(n)
	case kindFloat:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: %s expects a number: %w", domain.ErrInvalidInput, key, err)
		}
		typed = f
	case kindDuration:
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("%w: %s expects a duration like 30s: %w", domain.ErrInvalidInput, key, err)
		}
		typed = value
	default:
		typed = value
	}

	candidate := &SettingsService{configStore: overlay{ConfigStore: s.configStore, key: key, value: typed}}
	settings, err := candidate.Get()
	if err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	return s.configStore.Set(key, typed)
}

// Keys returns the supported setting keys in sorted order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, 0, len(settingKinds))
	for k := range settingKinds {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ConfigPath returns the configuration file path.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}

// Helper methods for reading config with defaults

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}

// overlay shadows a single key of a ConfigStore without persisting it.
type overlay struct {
	driven.ConfigStore
	key   string
	value any
}

func (o overlay) Get(key string) (any, bool) {
	if key == o.key {
		return o.value, true
	}
	return o.ConfigStore.Get(key)
}

func (o overlay) GetString(key string) string {
	if key == o.key {
		str, _ := o.value.(string)
		return str
	}
	return o.ConfigStore.GetString(key)
}

func (o overlay) GetInt(key string) int {
	if key == o.key {
		n, _ := o.value.(int64)
		return int(n)
	}
	return o.ConfigStore.GetInt(key)
}

func (o overlay) GetFloat(key string) float64 {
	if key == o.key {
		switch v := o.value.(type) {
		case float64:
			return v
		case int64:
			return float64(v)
		}
		return 0
	}
	return o.ConfigStore.GetFloat(key)
}
