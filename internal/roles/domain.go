package roles

// Role represents a grantable authority.
type Role struct {
	ID   int64
	Name string
}

// DefaultRoleName is granted to every newly registered account.
const DefaultRoleName = "USER"
