package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gutentopics/gutentopics/internal/core/domain"
)

func TestServer_handleAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("returns topic report", func(t *testing.T) {
		svc := &mockAnalysisService{analysis: whaleAnalysis()}
		server, err := NewServer(&Ports{Analysis: svc})
		require.NoError(t, err)

		_, output, err := server.handleAnalyze(ctx, nil, AnalyzeInput{Name: "moby.txt", Text: "Call me Ishmael."})
		require.NoError(t, err)

		assert.Equal(t, "moby.txt", svc.analyzedName)
		assert.Equal(t, "Call me Ishmael.", svc.analyzedText)
		assert.Equal(t, "an-1", output.ID)
		assert.Equal(t, 5, output.TopicID)
		assert.InDelta(t, 0.9, output.Probability, 1e-9)
		require.Len(t, output.Topics, 1)
		assert.Equal(t, TopicOutput{ID: 5, Keywords: "whale, sea", Documents: []string{"A", "B"}}, output.Topics[0])
	})

	t.Run("default name", func(t *testing.T) {
		svc := &mockAnalysisService{analysis: whaleAnalysis()}
		server, err := NewServer(&Ports{Analysis: svc})
		require.NoError(t, err)

		_, _, err = server.handleAnalyze(ctx, nil, AnalyzeInput{Text: "text"})
		require.NoError(t, err)
		assert.Equal(t, "untitled.txt", svc.analyzedName)
	})

	t.Run("empty text is rejected", func(t *testing.T) {
		svc := &mockAnalysisService{}
		server, err := NewServer(&Ports{Analysis: svc})
		require.NoError(t, err)

		_, _, err = server.handleAnalyze(ctx, nil, AnalyzeInput{})
		require.Error(t, err)
		assert.Empty(t, svc.analyzedName)
	})

	t.Run("no topic yields empty topic list", func(t *testing.T) {
		svc := &mockAnalysisService{analysis: &domain.Analysis{
			ID: "an-2",
			Result: domain.AnalysisResult{
				Assignments:        []domain.TopicAssignment{{TopicID: domain.NoTopic}},
				TopicsWords:        map[int]string{},
				DocumentsForTopics: map[int][]string{},
			},
		}}
		server, err := NewServer(&Ports{Analysis: svc})
		require.NoError(t, err)

		_, output, err := server.handleAnalyze(ctx, nil, AnalyzeInput{Text: "x"})
		require.NoError(t, err)
		assert.Equal(t, domain.NoTopic, output.TopicID)
		assert.NotNil(t, output.Topics)
		assert.Empty(t, output.Topics)
	})

	t.Run("service error is returned", func(t *testing.T) {
		svc := &mockAnalysisService{err: domain.ErrAttribution}
		server, err := NewServer(&Ports{Analysis: svc})
		require.NoError(t, err)

		_, _, err = server.handleAnalyze(ctx, nil, AnalyzeInput{Text: "x"})
		assert.ErrorIs(t, err, domain.ErrAttribution)
	})
}

func TestServer_handleList(t *testing.T) {
	ctx := context.Background()
	analyses := make([]domain.Analysis, 30)
	for i := range analyses {
		analyses[i] = *whaleAnalysis()
	}

	server, err := NewServer(&Ports{Analysis: &mockAnalysisService{analyses: analyses}})
	require.NoError(t, err)

	_, output, err := server.handleList(ctx, nil, ListInput{})
	require.NoError(t, err)
	assert.Equal(t, defaultListLimit, output.Count)
	assert.Equal(t, 5, output.Analyses[0].TopicID)

	_, output, err = server.handleList(ctx, nil, ListInput{Limit: 3})
	require.NoError(t, err)
	assert.Len(t, output.Analyses, 3)

	failing, err := NewServer(&Ports{Analysis: &mockAnalysisService{err: errors.New("db down")}})
	require.NoError(t, err)
	_, _, err = failing.handleList(ctx, nil, ListInput{})
	assert.Error(t, err)
}

func TestServer_handleGet(t *testing.T) {
	ctx := context.Background()
	server, err := NewServer(&Ports{Analysis: &mockAnalysisService{analysis: whaleAnalysis()}})
	require.NoError(t, err)

	_, output, err := server.handleGet(ctx, nil, GetInput{ID: "an-1"})
	require.NoError(t, err)
	assert.Equal(t, "moby.txt", output.Name)

	_, _, err = server.handleGet(ctx, nil, GetInput{ID: "nope"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
