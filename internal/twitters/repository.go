package twitters

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/simple-twitter/simple-twitter/internal/shared"
)

// RepositoryPort abstracts twitter persistence.
type RepositoryPort interface {
	Create(ctx context.Context, twitter *Twitter) error
	FindByID(ctx context.Context, id int64) (*Twitter, error)
	FindAllByAuthor(ctx context.Context, authorID uuid.UUID) ([]*Twitter, error)
	Update(ctx context.Context, twitter *Twitter) error
	Delete(ctx context.Context, id int64) error
}

// Repository is the pgx-backed implementation of RepositoryPort.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a Repository instance.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a new twitter and fills in its generated id.
func (r *Repository) Create(ctx context.Context, twitter *Twitter) error {
	const query = `
		INSERT INTO twitters (content, author_id, visibility, likes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		twitter.Content,
		twitter.AuthorID,
		twitter.Visibility,
		twitter.Likes,
		twitter.CreatedAt,
		twitter.UpdatedAt,
	).Scan(&twitter.ID)
	if err != nil {
		return fmt.Errorf("twitters: create: %w", err)
	}
	return nil
}

// FindByID loads one twitter with its author's username resolved.
func (r *Repository) FindByID(ctx context.Context, id int64) (*Twitter, error) {
	const query = `
		SELECT t.id, t.content, t.author_id, u.username, t.visibility, t.likes, t.created_at, t.updated_at
		FROM twitters t
		JOIN users u ON u.id = t.author_id
		WHERE t.id = $1`

	var twitter Twitter
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&twitter.ID,
		&twitter.Content,
		&twitter.AuthorID,
		&twitter.AuthorUsername,
		&twitter.Visibility,
		&twitter.Likes,
		&twitter.CreatedAt,
		&twitter.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, shared.NotFound("Twitter not found")
	}
	if err != nil {
		return nil, fmt.Errorf("twitters: find by id: %w", err)
	}
	return &twitter, nil
}

// FindAllByAuthor returns the author's twitters, newest first.
func (r *Repository) FindAllByAuthor(ctx context.Context, authorID uuid.UUID) ([]*Twitter, error) {
	const query = `
		SELECT t.id, t.content, t.author_id, u.username, t.visibility, t.likes, t.created_at, t.updated_at
		FROM twitters t
		JOIN users u ON u.id = t.author_id
		WHERE t.author_id = $1
		ORDER BY t.created_at DESC, t.id DESC`

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("twitters: find by author: %w", err)
	}
	defer rows.Close()

	var twitters []*Twitter
	for rows.Next() {
		var twitter Twitter
		if err := rows.Scan(
			&twitter.ID,
			&twitter.Content,
			&twitter.AuthorID,
			&twitter.AuthorUsername,
			&twitter.Visibility,
			&twitter.Likes,
			&twitter.CreatedAt,
			&twitter.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("twitters: scan: %w", err)
		}
		twitters = append(twitters, &twitter)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("twitters: iterate: %w", err)
	}
	return twitters, nil
}

// Update persists the editable fields of a twitter.
func (r *Repository) Update(ctx context.Context, twitter *Twitter) error {
	const query = `
		UPDATE twitters
		SET content = $1, visibility = $2, likes = $3, updated_at = $4
		WHERE id = $5`

	tag, err := r.pool.Exec(ctx, query,
		twitter.Content,
		twitter.Visibility,
		twitter.Likes,
		twitter.UpdatedAt,
		twitter.ID,
	)
	if err != nil {
		return fmt.Errorf("twitters: update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.NotFound("Twitter not found")
	}
	return nil
}

// Delete removes a twitter by id.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM twitters WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("twitters: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.NotFound("Twitter not found")
	}
	return nil
}
