// Package identity resolves token subjects to accounts and their granted
// authorities.
package identity

import (
	"sort"

	"github.com/google/uuid"
)

// Principal describes the authenticated actor for the lifetime of one
// request. It is immutable after construction; authorities are resolved once
// at authentication time.
type Principal struct {
	// UserID is the stable account identifier. Ownership checks compare
	// against this, not the username.
	UserID uuid.UUID

	// Subject is the unique username embedded in the bearer token.
	Subject string

	// Authorities holds the granted role names, deduplicated and sorted.
	Authorities []string
}

// NewPrincipal builds a Principal, collapsing duplicate authorities.
func NewPrincipal(userID uuid.UUID, subject string, authorities []string) *Principal {
	seen := make(map[string]struct{}, len(authorities))
	unique := make([]string, 0, len(authorities))
	for _, a := range authorities {
		if a == "" {
			continue
		}
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		unique = append(unique, a)
	}
	sort.Strings(unique)
	return &Principal{UserID: userID, Subject: subject, Authorities: unique}
}

// HasAuthority reports whether the principal was granted the named role.
func (p *Principal) HasAuthority(name string) bool {
	if p == nil {
		return false
	}
	for _, a := range p.Authorities {
		if a == name {
			return true
		}
	}
	return false
}
