package materials

import (
	"context"
	"errors"

	"studykit-backend/internal/documents"
)

// Service answers the material read side used by polling clients.
type Service struct {
	Docs      documents.Repo
	Materials Repo
}

// NewService constructs a Service.
func NewService(docs documents.Repo, materials Repo) *Service {
	return &Service{Docs: docs, Materials: materials}
}

// GetForDocument returns a user's document together with its study material.
// Material is nil when the job has not completed yet; callers polling early
// get the document and a null material rather than an error.
func (s *Service) GetForDocument(ctx context.Context, userID, documentID string) (documents.Document, *StudyMaterial, error) {
	doc, err := s.Docs.GetByIDForUser(ctx, userID, documentID)
	if err != nil {
		return documents.Document{}, nil, err
	}
	m, err := s.Materials.GetByDocumentID(ctx, documentID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return doc, nil, nil
		}
		return documents.Document{}, nil, err
	}
	return doc, &m, nil
}
