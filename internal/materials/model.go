package materials

import (
	"fmt"
	"time"
)

// Flashcard is a single front/back study card.
type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// QuizQuestion is a multiple-choice question. CorrectAnswerIndex must index
// into Options, but generated data is not guaranteed to honor that.
type QuizQuestion struct {
	ID                 int      `json:"id"`
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
	Explanation        string   `json:"explanation"`
}

// Generated is the structured record recovered from a model completion.
// The normalizer does not validate shape; consumers must treat the contents
// as untrusted until checked.
type Generated struct {
	Summary    string         `json:"summary"`
	Flashcards []Flashcard    `json:"flashcards"`
	Quiz       []QuizQuestion `json:"quiz"`
}

// QuizIssues reports quiz entries that violate the answer-bounds invariant.
// Violations are data-quality defects to surface in logs, not hard failures.
func (g Generated) QuizIssues() []string {
	var issues []string
	for i, q := range g.Quiz {
		if len(q.Options) < 2 {
			issues = append(issues, fmt.Sprintf("question %d: fewer than 2 options", i))
			continue
		}
		if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex >= len(q.Options) {
			issues = append(issues, fmt.Sprintf("question %d: correctAnswerIndex out of range", i))
		}
	}
	return issues
}

// StudyMaterial is the persisted AI-generated material for a document.
// Created exactly once by the processing job, immutable thereafter.
type StudyMaterial struct {
	ID         string         `json:"id"`
	DocumentID string         `json:"documentId"`
	Summary    string         `json:"summary"`
	Flashcards []Flashcard    `json:"flashcards"`
	Quiz       []QuizQuestion `json:"quiz"`
	CreatedAt  time.Time      `json:"createdAt"`
}
