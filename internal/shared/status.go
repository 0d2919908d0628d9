package shared

import "strings"

// AccountStatus is the lifecycle state of a user account.
type AccountStatus string

const (
	// AccountUnregistered marks an account created but not yet confirmed.
	AccountUnregistered AccountStatus = "UNREGISTERED"
	// AccountActive marks a confirmed, usable account.
	AccountActive AccountStatus = "ACTIVE"
	// AccountInactive marks a deactivated account.
	AccountInactive AccountStatus = "INACTIVE"
	// AccountBlocked marks an account locked out by moderation.
	AccountBlocked AccountStatus = "BLOCKED"
)

// DisplayValue renders the status the way the API exposes it.
func (s AccountStatus) DisplayValue() string {
	return strings.ToLower(string(s))
}
