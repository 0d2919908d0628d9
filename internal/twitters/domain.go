package twitters

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/simple-twitter/simple-twitter/internal/identity"
	"github.com/simple-twitter/simple-twitter/internal/shared"
)

// Visibility controls third-party read access to a twitter.
type Visibility string

const (
	// VisibilityPublic makes the twitter readable by everyone.
	VisibilityPublic Visibility = "PUBLIC"
	// VisibilityPrivate restricts reads to the owner.
	VisibilityPrivate Visibility = "PRIVATE"
)

// ParseVisibility converts the wire form ("public"/"private") to a Visibility.
func ParseVisibility(value string) (Visibility, error) {
	switch strings.ToUpper(value) {
	case string(VisibilityPublic):
		return VisibilityPublic, nil
	case string(VisibilityPrivate):
		return VisibilityPrivate, nil
	default:
		return "", shared.InvalidArgument("Visibility value is invalid. Only 'public' or 'private' is permitted")
	}
}

// DisplayValue renders the visibility the way the API exposes it.
func (v Visibility) DisplayValue() string {
	return strings.ToLower(string(v))
}

// Twitter is a single post. The author is fixed at creation and never
// transfers.
type Twitter struct {
	ID             int64
	Content        string
	AuthorID       uuid.UUID
	AuthorUsername string
	Visibility     Visibility
	Likes          int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsPublic reports whether the twitter is publicly visible.
func (t *Twitter) IsPublic() bool {
	return t.Visibility == VisibilityPublic
}

// IsEdited reports whether the twitter changed after creation.
func (t *Twitter) IsEdited() bool {
	return !t.CreatedAt.Equal(t.UpdatedAt)
}

// IsOwner reports whether the principal owns the twitter. Ownership is
// compared by stable account identity, not username.
func (t *Twitter) IsOwner(p *identity.Principal) bool {
	return p != nil && p.UserID == t.AuthorID
}

// CanView reports whether the principal may read the twitter: public posts
// are readable by anyone, private posts only by their owner.
func (t *Twitter) CanView(p *identity.Principal) bool {
	return t.IsPublic() || t.IsOwner(p)
}
