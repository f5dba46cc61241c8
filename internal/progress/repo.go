package progress

import "context"

// Repo is the persistence contract for quiz progress.
type Repo interface {
	Create(ctx context.Context, p QuizProgress) error
	ListByUser(ctx context.Context, userID string) ([]QuizProgress, error)
}
