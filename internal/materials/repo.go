package materials

import "context"

// Repo is the persistence contract for study materials. Materials are
// written exactly once per document by the processing job.
type Repo interface {
	Create(ctx context.Context, m StudyMaterial) error
	GetByDocumentID(ctx context.Context, documentID string) (StudyMaterial, error)
}
