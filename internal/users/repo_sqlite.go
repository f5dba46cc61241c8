package users

import (
	"context"
	"database/sql"
	"time"
)

type SQLiteRepo struct {
	DB *sql.DB
}

func (r *SQLiteRepo) Upsert(ctx context.Context, user User) error {
	const query = `
INSERT INTO users (id, email, full_name, picture_url, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
  email = excluded.email,
  full_name = excluded.full_name,
  picture_url = excluded.picture_url,
  updated_at = excluded.updated_at`
	now := time.Now().UTC()
	_, err := r.DB.ExecContext(ctx, query,
		user.ID,
		user.Email,
		nullableString(user.FullName),
		nullableString(user.PictureURL),
		now,
		now,
	)
	return err
}

func (r *SQLiteRepo) GetByID(ctx context.Context, userID string) (User, error) {
	const query = `
SELECT id, email, full_name, picture_url, created_at, updated_at
FROM users
WHERE id = ?
LIMIT 1`
	return scanUser(r.DB.QueryRowContext(ctx, query, userID))
}

var _ Repo = (*SQLiteRepo)(nil)
