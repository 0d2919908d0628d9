package roles

import (
	"context"
	"fmt"

	"github.com/simple-twitter/simple-twitter/internal/shared"
)

// Service handles role lookups.
type Service struct {
	repo RepositoryPort
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// FindByName resolves a role by name.
func (s *Service) FindByName(ctx context.Context, name string) (*Role, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: role name cannot be empty", shared.ErrInvalidArgument)
	}
	return s.repo.FindByName(ctx, name)
}

// DefaultUserRole returns the role granted to new registrations.
func (s *Service) DefaultUserRole(ctx context.Context) (*Role, error) {
	return s.FindByName(ctx, DefaultRoleName)
}
