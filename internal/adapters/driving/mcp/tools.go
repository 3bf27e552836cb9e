package mcp

import (
	"context"
	"errors"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gutentopics/gutentopics/internal/core/domain"
)

// defaultListLimit caps list_analyses when no limit is given.
const defaultListLimit = 20

// AnalyzeInput is the input schema for the analyze_text tool.
type AnalyzeInput struct {
	Name string `json:"name,omitempty" jsonschema:"display name for the text, e.g. a file name"`
	Text string `json:"text" jsonschema:"full text of the ebook, Project Gutenberg banners included or not"`
}

// AnalysisOutput is the output schema for one analysis.
type AnalysisOutput struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	TokenCount  int           `json:"token_count"`
	TopicID     int           `json:"topic_id"`
	Probability float64       `json:"probability"`
	Topics      []TopicOutput `json:"topics"`
	CreatedAt   time.Time     `json:"created_at"`
}

// TopicOutput describes one assigned topic.
type TopicOutput struct {
	ID        int      `json:"id"`
	Keywords  string   `json:"keywords"`
	Documents []string `json:"documents"`
}

// ListInput is the input schema for the list_analyses tool.
type ListInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of analyses to return (default 20)"`
}

// ListOutput is the output schema for the list_analyses tool.
type ListOutput struct {
	Analyses []AnalysisSummary `json:"analyses"`
	Count    int               `json:"count"`
}

// AnalysisSummary is a compact view of a stored analysis.
type AnalysisSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TopicID   int       `json:"topic_id"`
	CreatedAt time.Time `json:"created_at"`
}

// GetInput is the input schema for the get_analysis tool.
type GetInput struct {
	ID string `json:"id" jsonschema:"analysis id returned by analyze_text or list_analyses"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_text",
		Description: "Attribute an ebook text to a topic and list known books sharing it",
	}, s.handleAnalyze)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_analyses",
		Description: "List stored analyses, newest first",
	}, s.handleList)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_analysis",
		Description: "Get a stored analysis by id",
	}, s.handleGet)
}

func (s *Server) handleAnalyze(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeInput,
) (*mcp.CallToolResult, AnalysisOutput, error) {
	if input.Text == "" {
		return nil, AnalysisOutput{}, errors.New("text is required")
	}
	name := input.Name
	if name == "" {
		name = "untitled.txt"
	}

	analysis, err := s.ports.Analysis.Analyze(ctx, name, []byte(input.Text))
	if err != nil {
		return nil, AnalysisOutput{}, err
	}
	return nil, toAnalysisOutput(analysis), nil
}

func (s *Server) handleList(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListInput,
) (*mcp.CallToolResult, ListOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	analyses, err := s.ports.Analysis.List(ctx)
	if err != nil {
		return nil, ListOutput{}, err
	}
	if len(analyses) > limit {
		analyses = analyses[:limit]
	}

	output := ListOutput{
		Analyses: make([]AnalysisSummary, len(analyses)),
		Count:    len(analyses),
	}
	for i := range analyses {
		output.Analyses[i] = AnalysisSummary{
			ID:        analyses[i].ID,
			Name:      analyses[i].Name,
			TopicID:   analyses[i].Assignment().TopicID,
			CreatedAt: analyses[i].CreatedAt,
		}
	}
	return nil, output, nil
}

func (s *Server) handleGet(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetInput,
) (*mcp.CallToolResult, AnalysisOutput, error) {
	analysis, err := s.ports.Analysis.Get(ctx, input.ID)
	if err != nil {
		return nil, AnalysisOutput{}, err
	}
	return nil, toAnalysisOutput(analysis), nil
}

func toAnalysisOutput(a *domain.Analysis) AnalysisOutput {
	assignment := a.Assignment()
	out := AnalysisOutput{
		ID:          a.ID,
		Name:        a.Name,
		TokenCount:  a.TokenCount,
		TopicID:     assignment.TopicID,
		Probability: assignment.Probability,
		Topics:      []TopicOutput{},
		CreatedAt:   a.CreatedAt,
	}
	for _, id := range a.Result.Topics() {
		out.Topics = append(out.Topics, TopicOutput{
			ID:        id,
			Keywords:  a.Result.TopicsWords[id],
			Documents: a.Result.DocumentsForTopics[id],
		})
	}
	return out
}
