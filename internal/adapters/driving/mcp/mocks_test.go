package mcp

import (
	"context"
	"io"

	"github.com/gutentopics/gutentopics/internal/core/domain"
)

// mockAnalysisService is a mock implementation of driving.AnalysisService.
type mockAnalysisService struct {
	analysis *domain.Analysis
	analyses []domain.Analysis
	err      error

	analyzedName string
	analyzedText string
}

func (m *mockAnalysisService) Analyze(_ context.Context, name string, content []byte) (*domain.Analysis, error) {
	m.analyzedName = name
	m.analyzedText = string(content)
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

// mockCorpusService is a mock implementation of driving.CorpusService.
type mockCorpusService struct {
	index domain.KnownCorpusIndex
	err   error
}

func (m *mockCorpusService) Index(_ context.Context) (domain.KnownCorpusIndex, error) {
	return m.index, m.err
}

func (m *mockCorpusService) Import(_ context.Context, _ io.Reader) (int, error) {
	return 0, m.err
}

func whaleAnalysis() *domain.Analysis {
	return &domain.Analysis{
		ID:         "an-1",
		Name:       "moby.txt",
		TokenCount: 3,
		Result: domain.AnalysisResult{
			Assignments:        []domain.TopicAssignment{{DocumentIndex: 0, TopicID: 5, Probability: 0.9}},
			TopicsWords:        map[int]string{5: "whale, sea"},
			DocumentsForTopics: map[int][]string{5: {"A", "B"}},
		},
	}
}
