// Package userrepo manages repository layer of users.
package userrepo

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// RepoMem keeps users in process memory.
type RepoMem struct {
	mu    sync.RWMutex
	users map[uuid.UUID]domain.User
}

// NewRepoMem returns an empty user RepoMem.
func NewRepoMem() *RepoMem {
	return &RepoMem{
		users: make(map[uuid.UUID]domain.User),
	}
}

// Create stores the user unless one with the same id exists and then returns it.
func (r *RepoMem) Create(_ context.Context, u domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[u.ID]; ok {
		return domain.User{}, &domain.AlreadyExistsError{Entity: domain.EntityUser, ID: u.ID}
	}

	r.users[u.ID] = u

	return u, nil
}

// Get returns the user with the given id.
func (r *RepoMem) Get(_ context.Context, id uuid.UUID) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return domain.User{}, domain.NewUserNotFound(id)
	}

	return u, nil
}
