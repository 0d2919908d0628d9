package roles

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/simple-twitter/simple-twitter/internal/shared"
)

// RepositoryPort defines data access methods for roles.
type RepositoryPort interface {
	FindByName(ctx context.Context, name string) (*Role, error)
}

// Repository provides PostgreSQL backed persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// FindByName fetches a role by its unique name.
func (r *Repository) FindByName(ctx context.Context, name string) (*Role, error) {
	var role Role
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM roles WHERE name = $1`, name).Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: role %q", shared.ErrNotFound, name)
		}
		return nil, fmt.Errorf("roles: find by name: %w", err)
	}
	return &role, nil
}

var _ RepositoryPort = (*Repository)(nil)
