// Package test provides shared test helpers.
package test

import (
	"testing"

	"github.com/google/uuid"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/randompkg"
)

// RandomUser returns a random user.
func RandomUser() domain.User {
	return domain.NewUser(randompkg.Name(), randompkg.Name(), randompkg.Email())
}

// RandomLedger returns a ledger owned by ownerID with the given number of random deposits.
func RandomLedger(t *testing.T, ownerID uuid.UUID, deposits int) *domain.Ledger {
	t.Helper()

	l := domain.NewLedger(randompkg.Name(), ownerID)

	for i := 0; i < deposits; i++ {
		amount := RandomAmount(t, 1, 10_000)

		if _, err := l.Deposit(amount); err != nil {
			t.Fatalf("l.Deposit(%v) returned error: %v", amount, err)
		}
	}

	return l
}

// RandomAmount returns random Money between min and max.
func RandomAmount(t *testing.T, min, max int64) domain.Money {
	t.Helper()

	amount := randompkg.Int64Between(min, max)

	m, err := domain.NewMoney(amount)
	if err != nil {
		t.Fatalf("domain.NewMoney(%v) returned error: %v", amount, err)
	}

	return m
}
