package progress

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"studykit-backend/internal/shared/telemetry"
)

// Service validates and records quiz attempts.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Save appends a quiz attempt. score must be >= 0 and totalQuestions >= 1;
// score > totalQuestions is accepted but logged, matching the lenient write
// boundary the read side compensates for.
func (s *Service) Save(ctx context.Context, userID, studyMaterialID string, score, totalQuestions int) (QuizProgress, error) {
	studyMaterialID = strings.TrimSpace(studyMaterialID)
	if studyMaterialID == "" {
		return QuizProgress{}, fmt.Errorf("%w: studyMaterialId is required", ErrInvalidInput)
	}
	if score < 0 {
		return QuizProgress{}, fmt.Errorf("%w: score must be >= 0", ErrInvalidInput)
	}
	if totalQuestions < 1 {
		return QuizProgress{}, fmt.Errorf("%w: totalQuestions must be >= 1", ErrInvalidInput)
	}
	if score > totalQuestions {
		telemetry.Warn("progress.score_exceeds_total", map[string]any{
			"userId":          userID,
			"studyMaterialId": studyMaterialID,
			"score":           score,
			"totalQuestions":  totalQuestions,
		})
	}

	p := QuizProgress{
		ID:              uuid.NewString(),
		UserID:          userID,
		StudyMaterialID: studyMaterialID,
		Score:           score,
		TotalQuestions:  totalQuestions,
		CompletedAt:     time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return QuizProgress{}, fmt.Errorf("create progress: %w", err)
	}
	return p, nil
}

// Entry is a stored attempt with its derived percentage.
type Entry struct {
	QuizProgress
	Percentage int
}

// List returns the user's attempts with percentages computed at read time.
func (s *Service) List(ctx context.Context, userID string) ([]Entry, error) {
	items, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(items))
	for _, p := range items {
		out = append(out, Entry{QuizProgress: p, Percentage: Percentage(p.Score, p.TotalQuestions)})
	}
	return out, nil
}

// Percentage is round(score/totalQuestions*100). totalQuestions < 1 yields 0
// as a guard; the write boundary rejects such rows.
func Percentage(score, totalQuestions int) int {
	if totalQuestions < 1 {
		return 0
	}
	return int(math.Round(float64(score) / float64(totalQuestions) * 100))
}
