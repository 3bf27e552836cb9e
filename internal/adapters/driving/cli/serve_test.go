package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gutentopics/gutentopics/internal/adapters/driving/mcp"
)

func TestServeCmd_NilService(t *testing.T) {
	withServices(t, Services{})

	_, err := execute(t, "serve")
	assert.ErrorIs(t, err, errNoAnalysisService)
}

func TestServeCmd_Flags(t *testing.T) {
	assert.NotNil(t, serveCmd.Flags().Lookup("addr"))
}

func TestWatchCmd_NilService(t *testing.T) {
	withServices(t, Services{})

	_, err := execute(t, "watch")
	assert.ErrorIs(t, err, errNoAnalysisService)
}

func TestWatchCmd_Flags(t *testing.T) {
	assert.NotNil(t, watchCmd.Flags().Lookup("dir"))
}

func TestMCPCmd_RequiresAnalysisService(t *testing.T) {
	withServices(t, Services{})

	_, err := execute(t, "mcp")
	assert.ErrorIs(t, err, mcp.ErrMissingAnalysisService)
}

func TestMCPCmd_Flags(t *testing.T) {
	flag := mcpCmd.Flags().Lookup("http")
	assert.NotNil(t, flag)
	assert.Equal(t, "", flag.DefValue)
}
