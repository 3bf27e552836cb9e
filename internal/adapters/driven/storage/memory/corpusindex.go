package memory

import (
	"context"
	"sync"

	"github.com/gutentopics/gutentopics/internal/core/domain"
	"github.com/gutentopics/gutentopics/internal/core/ports/driven"
)

// Ensure CorpusIndexStore implements the interface.
var _ driven.CorpusIndexStore = (*CorpusIndexStore)(nil)

// CorpusIndexStore is an in-memory implementation of driven.CorpusIndexStore.
type CorpusIndexStore struct {
	mu    sync.RWMutex
	index domain.KnownCorpusIndex
}

// NewCorpusIndexStore creates a store holding a copy of idx.
func NewCorpusIndexStore(idx domain.KnownCorpusIndex) *CorpusIndexStore {
	return &CorpusIndexStore{index: copyIndex(idx)}
}

// Load returns a copy of the stored index.
func (s *CorpusIndexStore) Load(_ context.Context) (domain.KnownCorpusIndex, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyIndex(s.index), nil
}

// Replace swaps the stored index.
func (s *CorpusIndexStore) Replace(_ context.Context, idx domain.KnownCorpusIndex) error {
	if err := idx.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = copyIndex(idx)
	return nil
}

// copyIndex keeps callers from mutating the stored tables.
func copyIndex(idx domain.KnownCorpusIndex) domain.KnownCorpusIndex {
	return domain.KnownCorpusIndex{
		DocumentNames:   append([]string(nil), idx.DocumentNames...),
		TopicOfDocument: append([]int(nil), idx.TopicOfDocument...),
	}
}
