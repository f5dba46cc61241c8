package materials

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo on Postgres. Flashcards and quiz are stored as
// JSONB columns.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a study material row.
func (r *PGRepo) Create(ctx context.Context, m StudyMaterial) error {
	flashcards, quiz, err := marshalMaterial(m)
	if err != nil {
		return err
	}
	const query = `
INSERT INTO study_materials (id, document_id, summary, flashcards, quiz, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = r.DB.ExecContext(ctx, query, m.ID, m.DocumentID, m.Summary, flashcards, quiz, m.CreatedAt)
	return err
}

// GetByDocumentID fetches the material generated for a document.
func (r *PGRepo) GetByDocumentID(ctx context.Context, documentID string) (StudyMaterial, error) {
	const query = `
SELECT id, document_id, summary, flashcards, quiz, created_at
FROM study_materials
WHERE document_id = $1
LIMIT 1`
	return scanMaterial(r.DB.QueryRowContext(ctx, query, documentID))
}

func marshalMaterial(m StudyMaterial) (flashcards, quiz []byte, err error) {
	flashcards, err = json.Marshal(m.Flashcards)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal flashcards: %w", err)
	}
	quiz, err = json.Marshal(m.Quiz)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal quiz: %w", err)
	}
	return flashcards, quiz, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMaterial(row rowScanner) (StudyMaterial, error) {
	var m StudyMaterial
	var summary sql.NullString
	var flashcards, quiz []byte
	err := row.Scan(&m.ID, &m.DocumentID, &summary, &flashcards, &quiz, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return StudyMaterial{}, ErrNotFound
		}
		return StudyMaterial{}, err
	}
	if summary.Valid {
		m.Summary = summary.String
	}
	if len(flashcards) > 0 {
		if err := json.Unmarshal(flashcards, &m.Flashcards); err != nil {
			return StudyMaterial{}, fmt.Errorf("unmarshal flashcards: %w", err)
		}
	}
	if len(quiz) > 0 {
		if err := json.Unmarshal(quiz, &m.Quiz); err != nil {
			return StudyMaterial{}, fmt.Errorf("unmarshal quiz: %w", err)
		}
	}
	return m, nil
}

var _ Repo = (*PGRepo)(nil)
