package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewPrincipalCollapsesDuplicates(t *testing.T) {
	p := NewPrincipal(uuid.New(), "alice", []string{"USER", "ADMIN", "USER", "", "ADMIN"})

	assert.Equal(t, []string{"ADMIN", "USER"}, p.Authorities)
}

func TestNewPrincipalOrderIrrelevant(t *testing.T) {
	id := uuid.New()
	a := NewPrincipal(id, "alice", []string{"ADMIN", "USER"})
	b := NewPrincipal(id, "alice", []string{"USER", "ADMIN"})

	assert.Equal(t, a.Authorities, b.Authorities)
}

func TestHasAuthority(t *testing.T) {
	p := NewPrincipal(uuid.New(), "alice", []string{"USER"})

	assert.True(t, p.HasAuthority("USER"))
	assert.False(t, p.HasAuthority("ADMIN"))

	var nilPrincipal *Principal
	assert.False(t, nilPrincipal.HasAuthority("USER"))
}
