package auth

import (
	"github.com/google/uuid"

	"github.com/simple-twitter/simple-twitter/internal/shared"
)

// Account is the credential view of a user account used during login.
type Account struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Status       shared.AccountStatus
}
