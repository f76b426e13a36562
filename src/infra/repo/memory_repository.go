package repo

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"registration/src/core/domain"
)

// MemoryRepository implements UserRepository in process memory.
type MemoryRepository struct {
	mu    sync.RWMutex
	users []domain.User
}

// NewMemoryRepository returns an empty store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Health(context.Context) error {
	return nil
}

func (r *MemoryRepository) Append(_ context.Context, u domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := prepare(u, r.users)
	if err != nil {
		return nil, err
	}
	r.users = append(r.users, stored)
	return &stored, nil
}

func (r *MemoryRepository) Get(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return find(r.users, id)
}

func (r *MemoryRepository) List(context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *MemoryRepository) Count(context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.users), nil
}

// prepare assigns the ID and creation time of a record about to be appended
// to existing.
func prepare(u domain.User, existing []domain.User) (domain.User, error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	} else if _, err := find(existing, u.ID); err == nil {
		return domain.User{}, domain.NewConflictError("user " + u.ID.String() + " already stored")
	}
	u.CreatedAt = time.Now().UTC()
	return u, nil
}

func find(users []domain.User, id uuid.UUID) (*domain.User, error) {
	for i := range users {
		if users[i].ID == id {
			u := users[i]
			return &u, nil
		}
	}
	return nil, domain.NewNotFoundError("user")
}
