package progress

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory Repo used in dev mode and tests.
type MemoryRepo struct {
	mu      sync.RWMutex
	entries []QuizProgress
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) Create(ctx context.Context, p QuizProgress) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, p)
	return nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]QuizProgress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []QuizProgress
	for _, p := range r.entries {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CompletedAt.After(out[j].CompletedAt)
	})
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
