package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/gutentopics/gutentopics/internal/core/domain"
	"github.com/gutentopics/gutentopics/internal/core/ports/driven"
)

// Ensure AnalysisStore implements the interface.
var _ driven.AnalysisStore = (*AnalysisStore)(nil)

// AnalysisStore is an in-memory implementation of driven.AnalysisStore.
type AnalysisStore struct {
	mu       sync.RWMutex
	analyses map[string]domain.Analysis
}

// NewAnalysisStore creates a new in-memory analysis store.
func NewAnalysisStore() *AnalysisStore {
	return &AnalysisStore{
		analyses: make(map[string]domain.Analysis),
	}
}

// Save stores or replaces an analysis.
func (s *AnalysisStore) Save(_ context.Context, analysis domain.Analysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyses[analysis.ID] = analysis
	return nil
}

// Get retrieves an analysis by ID.
func (s *AnalysisStore) Get(_ context.Context, id string) (*domain.Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.analyses[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &a, nil
}

// List returns all analyses, newest first.
func (s *AnalysisStore) List(_ context.Context) ([]domain.Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Analysis, 0, len(s.analyses))
	for _, a := range s.analyses {
		result = append(result, a)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}
