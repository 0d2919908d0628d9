package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/simple-twitter/simple-twitter/internal/shared"
)

// Directory maps a token subject to an account and its authority set.
type Directory interface {
	LoadBySubject(ctx context.Context, subject string) (*Principal, error)
}

// PGDirectory implements Directory against PostgreSQL.
type PGDirectory struct {
	pool *pgxpool.Pool
}

// NewDirectory constructs a PostgreSQL backed directory.
func NewDirectory(pool *pgxpool.Pool) *PGDirectory {
	return &PGDirectory{pool: pool}
}

// LoadBySubject resolves the username to a Principal. Unknown subjects
// return shared.ErrNotFound; blocked accounts fail resolution so their
// outstanding tokens stop authenticating immediately.
func (d *PGDirectory) LoadBySubject(ctx context.Context, subject string) (*Principal, error) {
	if subject == "" {
		return nil, fmt.Errorf("%w: subject cannot be empty", shared.ErrInvalidArgument)
	}

	var (
		userID uuid.UUID
		status string
	)
	err := d.pool.QueryRow(ctx,
		`SELECT id, status FROM users WHERE username = $1`, subject,
	).Scan(&userID, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("identity: load subject: %w", err)
	}
	if shared.AccountStatus(status) == shared.AccountBlocked {
		return nil, shared.ErrAccountBlocked
	}

	rows, err := d.pool.Query(ctx,
		`SELECT r.name
		   FROM roles r
		   JOIN users_roles ur ON ur.role_id = r.id
		  WHERE ur.user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("identity: load authorities: %w", err)
	}
	defer rows.Close()

	var authorities []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("identity: scan authority: %w", err)
		}
		authorities = append(authorities, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("identity: read authorities: %w", err)
	}

	return NewPrincipal(userID, subject, authorities), nil
}

var _ Directory = (*PGDirectory)(nil)
