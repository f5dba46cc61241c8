package documents

import "time"

// Document statuses. Status is mutated only by the processing job; uploads
// always start at pending.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Document is an uploaded source document. FileData holds the original
// payload as base64 text; the upload boundary verifies it decodes, and the
// extraction step decodes it again when the job runs.
type Document struct {
	ID           string
	UserID       string
	FileName     string
	MimeType     string
	FileData     string
	Status       string
	ErrorMessage *string
	CreatedAt    time.Time
}
