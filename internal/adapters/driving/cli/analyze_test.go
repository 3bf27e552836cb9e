package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gutentopics/gutentopics/internal/core/domain"
)

func writeBook(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestAnalyzeCmd_RequiresExactlyOneArg(t *testing.T) {
	withServices(t, Services{Analysis: &mockAnalysisService{}})

	_, err := execute(t, "analyze")
	assert.Error(t, err)
}

func TestAnalyzeCmd_NilService(t *testing.T) {
	withServices(t, Services{})

	_, err := execute(t, "analyze", writeBook(t, "moby.txt", "Call me Ishmael."))
	assert.ErrorIs(t, err, errNoAnalysisService)
}

func TestAnalyzeCmd_PrintsReport(t *testing.T) {
	svc := &mockAnalysisService{analysis: whaleAnalysis()}
	withServices(t, Services{Analysis: svc})

	out, err := execute(t, "analyze", writeBook(t, "moby.txt", "Call me Ishmael."))
	require.NoError(t, err)

	assert.Equal(t, "moby.txt", svc.analyzedName)
	assert.Equal(t, "Call me Ishmael.", svc.analyzedContent)
	assert.Contains(t, out, "Analysis an-1")
	assert.Contains(t, out, "5 (probability 0.87)")
	assert.Contains(t, out, "Topic 5: whale, sea")
	assert.Contains(t, out, "Known books: A, B")
}

func TestAnalyzeCmd_NoTopic(t *testing.T) {
	withServices(t, Services{Analysis: &mockAnalysisService{analysis: noTopicAnalysis()}})

	out, err := execute(t, "analyze", writeBook(t, "ledger.txt", "1 2 3"))
	require.NoError(t, err)
	assert.Contains(t, out, "no confident topic found")
}

func TestAnalyzeCmd_JSON(t *testing.T) {
	withServices(t, Services{Analysis: &mockAnalysisService{analysis: whaleAnalysis()}})

	out, err := execute(t, "analyze", "--json", writeBook(t, "moby.txt", "x"))
	require.NoError(t, err)

	var got domain.Analysis
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "an-1", got.ID)
	assert.Equal(t, "whale, sea", got.Result.TopicsWords[5])
}

func TestAnalyzeCmd_MissingFile(t *testing.T) {
	withServices(t, Services{Analysis: &mockAnalysisService{}})

	_, err := execute(t, "analyze", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestAnalyzeCmd_ServiceErrorKeepsCategory(t *testing.T) {
	svc := &mockAnalysisService{err: fmt.Errorf("%w: model down", domain.ErrAttribution)}
	withServices(t, Services{Analysis: svc})

	_, err := execute(t, "analyze", writeBook(t, "moby.txt", "x"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAttribution)
	assert.Contains(t, err.Error(), "topic model")
}

func TestDescribeFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"decoding", domain.ErrDecoding, "could not be decoded"},
		{"attribution", domain.ErrAttribution, "topic model"},
		{"not ready", domain.ErrNotReady, "not initialised"},
		{"other", errors.New("boom"), "analysis failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := describeFailure(tt.err)
			assert.ErrorIs(t, err, tt.err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
