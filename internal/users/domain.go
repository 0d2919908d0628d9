package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/simple-twitter/simple-twitter/internal/shared"
)

// User represents a user account.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	DisplayName  string
	BirthDate    *time.Time
	Status       shared.AccountStatus
	CreatedAt    time.Time
	RegisteredAt *time.Time
	UpdatedAt    time.Time
}

// IsRegistered reports whether the account has been confirmed.
func (u *User) IsRegistered() bool {
	return u.Status != shared.AccountUnregistered
}

// IsBlocked reports whether the account is locked out.
func (u *User) IsBlocked() bool {
	return u.Status == shared.AccountBlocked
}

// Age computes the account holder's age in whole years at the given time.
// Returns 0 when no birth date is set.
func (u *User) Age(now time.Time) int {
	if u.BirthDate == nil {
		return 0
	}
	birth := *u.BirthDate
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
