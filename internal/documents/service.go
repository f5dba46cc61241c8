package documents

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"studykit-backend/internal/shared/telemetry"
	"studykit-backend/internal/shared/util"
)

// DefaultMaxUploadBytes caps the decoded payload size.
const DefaultMaxUploadBytes = 10 << 20 // 10MB

// Dispatcher hands a stored document to the background processing queue.
type Dispatcher interface {
	Enqueue(documentID string)
}

// Service owns upload validation and document reads.
type Service struct {
	Repo           Repo
	Jobs           Dispatcher
	MaxUploadBytes int64
}

// NewService constructs a Service with the default size cap.
func NewService(repo Repo, jobs Dispatcher) *Service {
	return &Service{Repo: repo, Jobs: jobs, MaxUploadBytes: DefaultMaxUploadBytes}
}

// Upload validates the payload, stores a pending document, and enqueues it
// for processing. It returns before the job runs; clients poll for status.
func (s *Service) Upload(ctx context.Context, userID, fileName, mimeType, fileData string) (Document, error) {
	if userID == "" {
		return Document{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	cleanName, err := util.SanitizeFileName(fileName)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	mimeType = strings.TrimSpace(mimeType)
	if mimeType == "" {
		return Document{}, fmt.Errorf("%w: mimeType is required", ErrInvalidInput)
	}
	if err := checkMimeType(mimeType); err != nil {
		return Document{}, err
	}
	fileData = strings.TrimSpace(fileData)
	if fileData == "" {
		return Document{}, fmt.Errorf("%w: fileData is required", ErrInvalidInput)
	}
	decoded, err := base64.StdEncoding.DecodeString(fileData)
	if err != nil {
		return Document{}, fmt.Errorf("%w: fileData must be valid base64", ErrInvalidInput)
	}
	maxBytes := s.MaxUploadBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	if int64(len(decoded)) > maxBytes {
		return Document{}, fmt.Errorf("%w: file exceeds %d bytes", ErrInvalidInput, maxBytes)
	}

	doc := Document{
		ID:        uuid.NewString(),
		UserID:    userID,
		FileName:  cleanName,
		MimeType:  mimeType,
		FileData:  fileData,
		Status:    StatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, fmt.Errorf("create document: %w", err)
	}

	telemetry.Info("document.uploaded", map[string]any{
		"documentId": doc.ID,
		"userId":     doc.UserID,
		"mimeType":   doc.MimeType,
		"sizeBytes":  len(decoded),
	})

	if s.Jobs != nil {
		s.Jobs.Enqueue(doc.ID)
	}
	return doc, nil
}

// checkMimeType enforces the upload acceptance policy: PDF, plain text, and
// HTML are processed; images are rejected here and again in the extractor.
func checkMimeType(mimeType string) error {
	family := strings.ToLower(mimeType)
	if idx := strings.Index(family, ";"); idx >= 0 {
		family = strings.TrimSpace(family[:idx])
	}
	switch {
	case strings.Contains(family, "pdf"):
		return nil
	case strings.HasPrefix(family, "text/"):
		return nil
	case strings.Contains(family, "html"):
		return nil
	case strings.HasPrefix(family, "image/"):
		return fmt.Errorf("%w: image uploads are not supported", ErrInvalidInput)
	default:
		return fmt.Errorf("%w: unsupported mimeType %q", ErrInvalidInput, mimeType)
	}
}

// Get returns a document owned by the given user.
func (s *Service) Get(ctx context.Context, userID, documentID string) (Document, error) {
	if documentID == "" {
		return Document{}, fmt.Errorf("%w: document id is required", ErrInvalidInput)
	}
	return s.Repo.GetByIDForUser(ctx, userID, documentID)
}

// List returns the user's documents, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Document, error) {
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}
