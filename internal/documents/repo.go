package documents

import "context"

// Repo is the persistence contract for documents.
//
// GetByID is unscoped and intended for the processing job, which runs without
// a user context. All request-path reads go through the user-scoped methods.
type Repo interface {
	Create(ctx context.Context, doc Document) error
	GetByID(ctx context.Context, documentID string) (Document, error)
	GetByIDForUser(ctx context.Context, userID, documentID string) (Document, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Document, error)
	UpdateStatus(ctx context.Context, documentID, status string, errorMessage *string) error
}
