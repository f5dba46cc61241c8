package materials

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"studykit-backend/internal/documents"
	"studykit-backend/internal/extract"
	"studykit-backend/internal/shared/metrics"
	"studykit-backend/internal/shared/telemetry"
)

const maxErrorMessageLen = 500

// Processor drives a document through its processing lifecycle:
// processing -> extract -> generate -> persist -> completed, or failed with a
// persisted error message. Process never returns an error or lets a panic
// escape; once the transition to processing succeeds the document always
// ends in a terminal state.
type Processor struct {
	Docs      documents.Repo
	Materials Repo
	Generator *Generator

	// Extract defaults to extract.FromBase64; tests inject outcomes here.
	Extract func(payload, declaredMimeType string) (string, error)
}

// Process runs the full pipeline for one document. Safe to call from any
// worker goroutine; concurrent calls for the same document are not fenced.
func (p *Processor) Process(ctx context.Context, documentID string) {
	defer func() {
		if r := recover(); r != nil {
			p.fail(documentID, fmt.Errorf("panic: %v", r))
		}
	}()

	startedAt := time.Now()
	metrics.IncProcessingStarted()

	if err := p.Docs.UpdateStatus(ctx, documentID, documents.StatusProcessing, nil); err != nil {
		p.fail(documentID, fmt.Errorf("mark processing: %w", err))
		return
	}
	telemetry.Info("document.status", map[string]any{
		"documentId":        documentID,
		"status_transition": "pending->processing",
	})

	doc, err := p.Docs.GetByID(ctx, documentID)
	if err != nil {
		p.fail(documentID, fmt.Errorf("load document: %w", err))
		return
	}

	extractFn := p.Extract
	if extractFn == nil {
		extractFn = extract.FromBase64
	}
	text, err := extractFn(doc.FileData, doc.MimeType)
	if err != nil {
		p.fail(documentID, err)
		return
	}

	generated, err := p.Generator.Generate(ctx, text)
	if err != nil {
		p.fail(documentID, err)
		return
	}
	if issues := generated.QuizIssues(); len(issues) > 0 {
		telemetry.Warn("material.quiz_issues", map[string]any{
			"documentId": documentID,
			"issues":     issues,
		})
	}

	material := StudyMaterial{
		ID:         uuid.NewString(),
		DocumentID: doc.ID,
		Summary:    generated.Summary,
		Flashcards: generated.Flashcards,
		Quiz:       generated.Quiz,
		CreatedAt:  time.Now().UTC(),
	}
	if err := p.Materials.Create(ctx, material); err != nil {
		p.fail(documentID, fmt.Errorf("persist material: %w", err))
		return
	}

	if err := p.Docs.UpdateStatus(ctx, documentID, documents.StatusCompleted, nil); err != nil {
		p.fail(documentID, fmt.Errorf("mark completed: %w", err))
		return
	}

	metrics.IncProcessingCompleted()
	metrics.ObserveProcessingDurationMs(float64(time.Since(startedAt).Milliseconds()))
	telemetry.Info("document.status", map[string]any{
		"documentId":        documentID,
		"status_transition": "processing->completed",
		"durationMs":        time.Since(startedAt).Milliseconds(),
	})
}

// fail moves the document to failed with a derived, sanitized message. The
// update deliberately uses a fresh context so a canceled job context cannot
// block the terminal transition. A failing failure-update is only logged.
func (p *Processor) fail(documentID string, cause error) {
	metrics.IncProcessingFailed()

	msg := deriveErrorMessage(cause)
	if err := p.Docs.UpdateStatus(context.Background(), documentID, documents.StatusFailed, &msg); err != nil {
		telemetry.Error("document.fail_update", map[string]any{
			"documentId": documentID,
			"error":      err.Error(),
		})
	}

	fields := map[string]any{
		"documentId":        documentID,
		"status_transition": "processing->failed",
		"errorMessage":      msg,
	}
	if cause != nil {
		fields["cause"] = cause.Error()
	}
	telemetry.Info("document.status", fields)
}

// deriveErrorMessage turns a job failure into a message safe to persist and
// show to the user: newlines stripped, length capped, never empty.
func deriveErrorMessage(cause error) string {
	msg := ""
	if cause != nil {
		msg = strings.TrimSpace(cause.Error())
	}
	if msg == "" {
		return "Unknown error"
	}
	msg = strings.ReplaceAll(msg, "\r", " ")
	msg = strings.ReplaceAll(msg, "\n", " ")
	if len(msg) > maxErrorMessageLen {
		msg = msg[:maxErrorMessageLen]
	}
	return msg
}
