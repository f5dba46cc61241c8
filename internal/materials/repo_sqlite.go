package materials

import (
	"context"
	"database/sql"
)

// SQLiteRepo implements Repo on SQLite. Flashcards and quiz are stored as
// JSON text.
type SQLiteRepo struct {
	DB *sql.DB
}

func (r *SQLiteRepo) Create(ctx context.Context, m StudyMaterial) error {
	flashcards, quiz, err := marshalMaterial(m)
	if err != nil {
		return err
	}
	const query = `
INSERT INTO study_materials (id, document_id, summary, flashcards, quiz, created_at)
VALUES (?, ?, ?, ?, ?, ?)`
	_, err = r.DB.ExecContext(ctx, query, m.ID, m.DocumentID, m.Summary, string(flashcards), string(quiz), m.CreatedAt)
	return err
}

func (r *SQLiteRepo) GetByDocumentID(ctx context.Context, documentID string) (StudyMaterial, error) {
	const query = `
SELECT id, document_id, summary, flashcards, quiz, created_at
FROM study_materials
WHERE document_id = ?
LIMIT 1`
	return scanMaterial(r.DB.QueryRowContext(ctx, query, documentID))
}

var _ Repo = (*SQLiteRepo)(nil)
