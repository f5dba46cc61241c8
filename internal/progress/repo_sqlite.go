package progress

import (
	"context"
	"database/sql"
)

// SQLiteRepo implements Repo on SQLite.
type SQLiteRepo struct {
	DB *sql.DB
}

func (r *SQLiteRepo) Create(ctx context.Context, p QuizProgress) error {
	const query = `
INSERT INTO quiz_progress (id, user_id, study_material_id, score, total_questions, completed_at)
VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.DB.ExecContext(ctx, query, p.ID, p.UserID, p.StudyMaterialID, p.Score, p.TotalQuestions, p.CompletedAt)
	return err
}

func (r *SQLiteRepo) ListByUser(ctx context.Context, userID string) ([]QuizProgress, error) {
	const query = `
SELECT id, user_id, study_material_id, score, total_questions, completed_at
FROM quiz_progress
WHERE user_id = ?
ORDER BY completed_at DESC, id DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []QuizProgress
	for rows.Next() {
		var p QuizProgress
		if err := rows.Scan(&p.ID, &p.UserID, &p.StudyMaterialID, &p.Score, &p.TotalQuestions, &p.CompletedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

var _ Repo = (*SQLiteRepo)(nil)
