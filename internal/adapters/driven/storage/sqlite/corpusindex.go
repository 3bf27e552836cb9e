package sqlite

import (
	"context"
	"fmt"

	"github.com/gutentopics/gutentopics/internal/core/domain"
	"github.com/gutentopics/gutentopics/internal/core/ports/driven"
)

// corpusIndexStore implements driven.CorpusIndexStore.
type corpusIndexStore struct {
	store *Store
}

var _ driven.CorpusIndexStore = (*corpusIndexStore)(nil)

// Load returns the index in corpus order.
func (s *corpusIndexStore) Load(ctx context.Context) (domain.KnownCorpusIndex, error) {
	rows, err := s.store.db.QueryContext(ctx,
		"SELECT name, topic_id FROM corpus_documents ORDER BY position")
	if err != nil {
		return domain.KnownCorpusIndex{}, fmt.Errorf("querying corpus index: %w", err)
	}
	defer rows.Close()

	idx := domain.KnownCorpusIndex{
		DocumentNames:   []string{},
		TopicOfDocument: []int{},
	}
	for rows.Next() {
		var name string
		var topic int
		if err := rows.Scan(&name, &topic); err != nil {
			return domain.KnownCorpusIndex{}, fmt.Errorf("scanning corpus row: %w", err)
		}
		idx.DocumentNames = append(idx.DocumentNames, name)
		idx.TopicOfDocument = append(idx.TopicOfDocument, topic)
	}
	if err := rows.Err(); err != nil {
		return domain.KnownCorpusIndex{}, fmt.Errorf("iterating corpus rows: %w", err)
	}
	return idx, nil
}

// Replace swaps the whole index atomically.
func (s *corpusIndexStore) Replace(ctx context.Context, idx domain.KnownCorpusIndex) error {
	if err := idx.Validate(); err != nil {
		return err
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, "DELETE FROM corpus_documents"); err != nil {
		return fmt.Errorf("clearing corpus index: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO corpus_documents (position, name, topic_id) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, name := range idx.DocumentNames {
		if _, err := stmt.ExecContext(ctx, i, name, idx.TopicOfDocument[i]); err != nil {
			return fmt.Errorf("inserting %q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing corpus index: %w", err)
	}
	return nil
}
