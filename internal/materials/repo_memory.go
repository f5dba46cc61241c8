package materials

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory Repo used in dev mode and tests.
type MemoryRepo struct {
	mu         sync.RWMutex
	byDocument map[string]StudyMaterial
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byDocument: make(map[string]StudyMaterial)}
}

func (r *MemoryRepo) Create(ctx context.Context, m StudyMaterial) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byDocument[m.DocumentID] = m
	return nil
}

func (r *MemoryRepo) GetByDocumentID(ctx context.Context, documentID string) (StudyMaterial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.byDocument[documentID]
	if !ok {
		return StudyMaterial{}, ErrNotFound
	}
	return m, nil
}

var _ Repo = (*MemoryRepo)(nil)
