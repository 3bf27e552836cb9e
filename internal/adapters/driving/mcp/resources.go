package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gutentopics/gutentopics/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for gutentopics resources.
	uriScheme = "gutentopics://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "corpus",
		Name:        "corpus",
		Description: "Known corpus documents and their topic ids",
		MIMEType:    "application/json",
	}, s.handleCorpusResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "analyses/{analysisId}",
		Name:        "analysis",
		Description: "A stored analysis report",
		MIMEType:    "application/json",
	}, s.handleAnalysisResource)
}

// handleCorpusResource returns the known corpus index.
func (s *Server) handleCorpusResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Corpus == nil {
		return jsonResource(req.Params.URI, "[]"), nil
	}

	idx, err := s.ports.Corpus.Index(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading corpus index: %w", err)
	}

	type corpusEntry struct {
		Name    string `json:"name"`
		TopicID int    `json:"topic_id"`
	}
	entries := make([]corpusEntry, idx.Len())
	for i := range idx.DocumentNames {
		entries[i] = corpusEntry{Name: idx.DocumentNames[i], TopicID: idx.TopicOfDocument[i]}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling corpus: %w", err)
	}
	return jsonResource(req.Params.URI, string(data)), nil
}

// handleAnalysisResource returns one stored analysis.
func (s *Server) handleAnalysisResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractAnalysisID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	analysis, err := s.ports.Analysis.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting analysis: %w", err)
	}

	data, err := json.MarshalIndent(toAnalysisOutput(analysis), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling analysis: %w", err)
	}
	return jsonResource(req.Params.URI, string(data)), nil
}

func jsonResource(uri, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     text,
		}},
	}
}

// extractAnalysisID extracts the id from a URI like gutentopics://analyses/{analysisId}.
func extractAnalysisID(uri string) string {
	const prefix = uriScheme + "analyses/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
