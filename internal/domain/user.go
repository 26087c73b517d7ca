package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the owner identity a ledger is created for.
type User struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUser returns a user with a fresh identity.
func NewUser(firstName, lastName, email string) User {
	return User{
		ID:        uuid.New(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
}
