package test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// UserCreator stores users.
type UserCreator interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
}

// LedgerSaver stores ledgers.
type LedgerSaver interface {
	Save(ctx context.Context, l *domain.Ledger) (*domain.Ledger, error)
}

// SeedUser stores a random user.
func SeedUser(t *testing.T, repo UserCreator) domain.User {
	t.Helper()

	u := RandomUser()

	user, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("repo.Create(context.Background(), %+v) returned error: %v", u, err)
	}

	return user
}

// SeedLedger stores a random ledger for the owner with the given number of deposits.
func SeedLedger(t *testing.T, repo LedgerSaver, ownerID uuid.UUID, deposits int) *domain.Ledger {
	t.Helper()

	l := RandomLedger(t, ownerID, deposits)

	saved, err := repo.Save(context.Background(), l)
	if err != nil {
		t.Fatalf("repo.Save(context.Background(), %v) returned error: %v", l.ID(), err)
	}

	return saved
}
