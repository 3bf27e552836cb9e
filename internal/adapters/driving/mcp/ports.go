package mcp

import (
	"github.com/gutentopics/gutentopics/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Analysis runs and retrieves analyses.
	Analysis driving.AnalysisService

	// Corpus exposes the known corpus index. Optional.
	Corpus driving.CorpusService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Analysis == nil {
		return ErrMissingAnalysisService
	}
	return nil
}
