package logger

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func reset() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestSetVerbose(t *testing.T) {
	defer reset()

	SetVerbose(false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestDebug_WhenVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("detected encoding", "label", "UTF-8", "confidence", 100)

	assert.Equal(t, "level=DEBUG msg=\"detected encoding\" label=UTF-8 confidence=100\n", buf.String())
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("hidden")
	Info("hidden too")
	Section("normalize")

	assert.Empty(t, buf.String())
}

func TestSection_WhenVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Section("normalize")

	assert.Equal(t, "level=DEBUG msg=stage name=normalize\n", buf.String())
}

func TestWarn_AlwaysEmitted(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Warn("low confidence", "label", "windows-1252")

	assert.Equal(t, "level=WARN msg=\"low confidence\" label=windows-1252\n", buf.String())
}

func TestError_IncludesCause(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	Error("analysis failed", errors.New("boom"), "file", "moby.txt")

	assert.Equal(t, "level=ERROR msg=\"analysis failed\" file=moby.txt err=boom\n", buf.String())
}

func TestLogger_ReturnsCurrent(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Logger().Info("via slog")

	assert.Contains(t, buf.String(), "msg=\"via slog\"")
}
