package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gutentopics/gutentopics/internal/core/domain"
	"github.com/gutentopics/gutentopics/internal/core/ports/driven"
)

// analysisStore implements driven.AnalysisStore.
type analysisStore struct {
	store *Store
}

var _ driven.AnalysisStore = (*analysisStore)(nil)

// Save stores or replaces an analysis. The result is kept as JSON.
func (s *analysisStore) Save(ctx context.Context, analysis domain.Analysis) error {
	resultJSON, err := json.Marshal(analysis.Result)
	if err != nil {
		return fmt.Errorf("marshalling result: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO analyses (id, name, token_count, topic_id, result, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			token_count = excluded.token_count,
			topic_id = excluded.topic_id,
			result = excluded.result,
			created_at = excluded.created_at
	`, analysis.ID, analysis.Name, analysis.TokenCount, analysis.Assignment().TopicID,
		string(resultJSON), analysis.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("saving analysis: %w", err)
	}
	return nil
}

// Get retrieves an analysis by ID.
func (s *analysisStore) Get(ctx context.Context, id string) (*domain.Analysis, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, name, token_count, result, created_at
		FROM analyses WHERE id = ?
	`, id)

	a, err := scanAnalysis(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// List returns all analyses, newest first.
func (s *analysisStore) List(ctx context.Context) ([]domain.Analysis, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, token_count, result, created_at
		FROM analyses ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying analyses: %w", err)
	}
	defer rows.Close()

	analyses := []domain.Analysis{}
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating analyses: %w", err)
	}
	return analyses, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row scanner) (*domain.Analysis, error) {
	var (
		a          domain.Analysis
		resultJSON string
		createdAt  int64
	)
	if err := row.Scan(&a.ID, &a.Name, &a.TokenCount, &resultJSON, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning analysis: %w", err)
	}

	if err := json.Unmarshal([]byte(resultJSON), &a.Result); err != nil {
		return nil, fmt.Errorf("unmarshalling result of %s: %w", a.ID, err)
	}

	a.CreatedAt = time.Unix(0, createdAt)

	return &a, nil
}
