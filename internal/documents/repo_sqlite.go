package documents

import (
	"context"
	"database/sql"
)

// SQLiteRepo implements Repo on SQLite. Query shapes mirror PGRepo with
// positional placeholders.
type SQLiteRepo struct {
	DB *sql.DB
}

func (r *SQLiteRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (id, user_id, file_name, mime_type, file_data, status, error_message, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.DB.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.UserID,
		doc.FileName,
		doc.MimeType,
		doc.FileData,
		doc.Status,
		nullString(doc.ErrorMessage),
		doc.CreatedAt,
	)
	return err
}

func (r *SQLiteRepo) GetByID(ctx context.Context, documentID string) (Document, error) {
	const query = `
SELECT ` + documentColumns + `
FROM documents
WHERE id = ?
LIMIT 1`
	return scanDocument(r.DB.QueryRowContext(ctx, query, documentID))
}

func (r *SQLiteRepo) GetByIDForUser(ctx context.Context, userID, documentID string) (Document, error) {
	const query = `
SELECT ` + documentColumns + `
FROM documents
WHERE user_id = ? AND id = ?
LIMIT 1`
	return scanDocument(r.DB.QueryRowContext(ctx, query, userID, documentID))
}

func (r *SQLiteRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Document, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT ` + documentColumns + `
FROM documents
WHERE user_id = ?
ORDER BY created_at DESC, id DESC
LIMIT ? OFFSET ?`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

func (r *SQLiteRepo) UpdateStatus(ctx context.Context, documentID, status string, errorMessage *string) error {
	const query = `
UPDATE documents
SET status = ?, error_message = ?
WHERE id = ?`
	res, err := r.DB.ExecContext(ctx, query, status, nullString(errorMessage), documentID)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*SQLiteRepo)(nil)
