package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gutentopics/gutentopics/internal/core/domain"
	"github.com/gutentopics/gutentopics/internal/core/ports/driven"
	"github.com/gutentopics/gutentopics/internal/core/ports/driving"
	"github.com/gutentopics/gutentopics/internal/logger"
)

// Ensure CorpusService implements the interface.
var _ driving.CorpusService = (*CorpusService)(nil)

// CorpusService manages the known corpus index.
type CorpusService struct {
	store driven.CorpusIndexStore
}

// NewCorpusService creates a new corpus service.
func NewCorpusService(store driven.CorpusIndexStore) *CorpusService {
	return &CorpusService{store: store}
}

// Index returns the stored corpus index.
func (s *CorpusService) Index(ctx context.Context) (domain.KnownCorpusIndex, error) {
	return s.store.Load(ctx)
}

// Import reads "name,topic_id" rows and replaces the stored index.
// A first row whose topic column is not an integer is treated as a header.
func (s *CorpusService) Import(ctx context.Context, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	var idx domain.KnownCorpusIndex
	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
		}

		name := strings.TrimSpace(record[0])
		topic, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			if line == 1 {
				continue
			}
			return 0, fmt.Errorf("%w: line %d: topic id %q is not an integer",
				domain.ErrInvalidInput, line, record[1])
		}
		if name == "" {
			return 0, fmt.Errorf("%w: line %d: empty document name", domain.ErrInvalidInput, line)
		}

		idx.DocumentNames = append(idx.DocumentNames, name)
		idx.TopicOfDocument = append(idx.TopicOfDocument, topic)
	}

	if err := idx.Validate(); err != nil {
		return 0, err
	}
	if err := s.store.Replace(ctx, idx); err != nil {
		return 0, fmt.Errorf("replace corpus index: %w", err)
	}

	logger.Info("imported corpus index", "documents", idx.Len())
	return idx.Len(), nil
}
