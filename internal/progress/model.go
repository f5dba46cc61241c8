package progress

import "time"

// QuizProgress is a single quiz attempt. The log is append-only; retakes add
// rows rather than overwriting.
type QuizProgress struct {
	ID              string
	UserID          string
	StudyMaterialID string
	Score           int
	TotalQuestions  int
	CompletedAt     time.Time
}
