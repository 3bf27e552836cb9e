package cli

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gutentopics/gutentopics/internal/core/domain"
)

// mockAnalysisService implements driving.AnalysisService for testing.
type mockAnalysisService struct {
	analysis *domain.Analysis
	analyses []domain.Analysis
	err      error

	analyzedName    string
	analyzedContent string
}

func (m *mockAnalysisService) Analyze(_ context.Context, name string, content []byte) (*domain.Analysis, error) {
	m.analyzedName = name
	m.analyzedContent = string(content)
	return m.analysis, m.err
}

func (m *mockAnalysisService) Get(_ context.Context, id string) (*domain.Analysis, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.analysis == nil || m.analysis.ID != id {
		return nil, domain.ErrNotFound
	}
	return m.analysis, nil
}

func (m *mockAnalysisService) List(_ context.Context) ([]domain.Analysis, error) {
	return m.analyses, m.err
}

// mockCorpusService implements driving.CorpusService for testing.
type mockCorpusService struct {
	index    domain.KnownCorpusIndex
	imported int
	err      error

	importedCSV string
}

func (m *mockCorpusService) Index(_ context.Context) (domain.KnownCorpusIndex, error) {
	return m.index, m.err
}

func (m *mockCorpusService) Import(_ context.Context, r io.Reader) (int, error) {
	data, _ := io.ReadAll(r) //nolint:errcheck // test helper
	m.importedCSV = string(data)
	return m.imported, m.err
}

// mockNormalizer implements driving.NormalizerService for testing.
type mockNormalizer struct {
	tokens []string
	err    error

	received domain.RawDocument
}

func (m *mockNormalizer) Normalize(raw domain.RawDocument) (domain.NormalizedDocument, error) {
	m.received = raw
	if m.err != nil {
		return domain.NormalizedDocument{}, m.err
	}
	return domain.NormalizedDocument{Tokens: m.tokens}, nil
}

// mockSettingsService implements driving.SettingsService for testing.
type mockSettingsService struct {
	settings domain.AppSettings
	setErr   error

	setKey   string
	setValue string
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Set(key, value string) error {
	m.setKey, m.setValue = key, value
	return m.setErr
}

func (m *mockSettingsService) Keys() []string {
	return []string{
		"encoding.min_confidence",
		"encoding.sample_bytes",
		"output.cleaned_dir",
		"server.addr",
		"server.max_upload_bytes",
		"server.upload_dir",
		"storage.data_dir",
		"topicmodel.base_url",
		"topicmodel.burst",
		"topicmodel.requests_per_second",
		"topicmodel.timeout",
		"watch.dir",
	}
}

func (m *mockSettingsService) ConfigPath() string {
	return "/tmp/gutentopics/config.toml"
}

// withServices installs s for the duration of the test.
func withServices(t *testing.T, s Services) {
	t.Helper()
	SetServices(s)
	t.Cleanup(func() { SetServices(Services{}) })
}

// execute runs the root command with args and returns its combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(t)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		resetFlags(t)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

// resetFlags clears flag values left over from earlier executions.
func resetFlags(t *testing.T) {
	t.Helper()
	require.NoError(t, rootCmd.PersistentFlags().Set("verbose", "false"))
	analyzeJSON = false
	resultsJSON = false
	normalizeEncoding = ""
	serveAddr = ""
	watchDir = ""
}

func whaleAnalysis() *domain.Analysis {
	return &domain.Analysis{
		ID:         "an-1",
		Name:       "moby.txt",
		TokenCount: 42,
		Result: domain.AnalysisResult{
			Assignments:        []domain.TopicAssignment{{DocumentIndex: 0, TopicID: 5, Probability: 0.87}},
			TopicsWords:        map[int]string{5: "whale, sea"},
			DocumentsForTopics: map[int][]string{5: {"A", "B"}},
		},
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func noTopicAnalysis() *domain.Analysis {
	return &domain.Analysis{
		ID:         "an-2",
		Name:       "ledger.txt",
		TokenCount: 7,
		Result: domain.AnalysisResult{
			Assignments:        []domain.TopicAssignment{{DocumentIndex: 0, TopicID: domain.NoTopic}},
			TopicsWords:        map[int]string{},
			DocumentsForTopics: map[int][]string{},
		},
		CreatedAt: time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
	}
}
