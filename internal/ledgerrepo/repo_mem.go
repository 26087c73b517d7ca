// Package ledgerrepo manages repository layer of ledgers.
package ledgerrepo

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// RepoMem keeps ledgers in process memory.
//
// Its lock guards only the identity index. Ledger contents are guarded by each ledger's own lock.
type RepoMem struct {
	mu      sync.RWMutex
	ledgers map[uuid.UUID]*domain.Ledger
	order   []uuid.UUID
}

// NewRepoMem returns an empty ledger RepoMem.
func NewRepoMem() *RepoMem {
	return &RepoMem{
		ledgers: make(map[uuid.UUID]*domain.Ledger),
	}
}

// Save inserts the ledger unless one with the same id is already stored.
func (r *RepoMem) Save(_ context.Context, l *domain.Ledger) (*domain.Ledger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ledgers[l.ID()]; ok {
		return nil, &domain.AlreadyExistsError{Entity: domain.EntityLedger, ID: l.ID()}
	}

	r.ledgers[l.ID()] = l
	r.order = append(r.order, l.ID())

	return l, nil
}

// Get returns the ledger with the given id and whether it exists.
func (r *RepoMem) Get(_ context.Context, id uuid.UUID) (*domain.Ledger, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.ledgers[id]

	return l, ok
}

// List returns all ledgers in insertion order.
func (r *RepoMem) List(_ context.Context) []*domain.Ledger {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*domain.Ledger, 0, len(r.order))
	for _, id := range r.order {
		items = append(items, r.ledgers[id])
	}

	return items
}

// ListByOwner returns the ledgers owned by the given user in insertion order.
func (r *RepoMem) ListByOwner(ctx context.Context, ownerID uuid.UUID) []*domain.Ledger {
	items := []*domain.Ledger{}

	for _, l := range r.List(ctx) {
		if l.OwnerID() == ownerID {
			items = append(items, l)
		}
	}

	return items
}
