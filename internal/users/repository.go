package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/simple-twitter/simple-twitter/internal/platform/db"
	"github.com/simple-twitter/simple-twitter/internal/shared"
)

const uniqueViolationCode = "23505"

// RepositoryPort defines data access methods for users.
type RepositoryPort interface {
	Create(ctx context.Context, user *User, roleID int64) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	Update(ctx context.Context, user *User) error
}

// Repository provides PostgreSQL backed persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts the user and its default role link in one transaction.
func (r *Repository) Create(ctx context.Context, user *User, roleID int64) error {
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO users (id, username, email, password, status, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			user.ID, user.Username, user.Email, user.PasswordHash, user.Status, user.CreatedAt, user.UpdatedAt)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO users_roles (user_id, role_id) VALUES ($1, $2)`,
			user.ID, roleID)
		return err
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("%w: username or email already taken", shared.ErrDuplicate)
		}
		return fmt.Errorf("users: create: %w", err)
	}
	return nil
}

// FindByEmail fetches a user by email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.findBy(ctx, "email", email)
}

// FindByUsername fetches a user by username.
func (r *Repository) FindByUsername(ctx context.Context, username string) (*User, error) {
	return r.findBy(ctx, "username", username)
}

func (r *Repository) findBy(ctx context.Context, column, value string) (*User, error) {
	var user User
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, email, password, COALESCE(display_name, ''), birth_date, status, created_at, registered_at, updated_at
		   FROM users WHERE `+column+` = $1`, value,
	).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.DisplayName,
		&user.BirthDate, &user.Status, &user.CreatedAt, &user.RegisteredAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("users: find by %s: %w", column, err)
	}
	return &user, nil
}

// Update persists mutable profile fields.
func (r *Repository) Update(ctx context.Context, user *User) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users
		    SET display_name = $2, birth_date = $3, status = $4, registered_at = $5, updated_at = $6
		  WHERE id = $1`,
		user.ID, user.DisplayName, user.BirthDate, user.Status, user.RegisteredAt, user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("users: update: %w", err)
	}
	return nil
}

var _ RepositoryPort = (*Repository)(nil)
