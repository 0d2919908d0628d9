package twitters

import (
	"context"
	"log/slog"
	"time"

	"github.com/simple-twitter/simple-twitter/internal/identity"
	"github.com/simple-twitter/simple-twitter/internal/shared"
)

// Service handles twitter business logic and access policy.
type Service struct {
	repo   RepositoryPort
	logger *slog.Logger
	now    func() time.Time
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// Create posts a new twitter owned by the principal. Visibility defaults to
// public when the request leaves it blank.
func (s *Service) Create(ctx context.Context, principal *identity.Principal, req CreateTwitterRequest) (*TwitterResponse, error) {
	visibility := VisibilityPublic
	if req.Visibility != "" {
		parsed, err := ParseVisibility(req.Visibility)
		if err != nil {
			return nil, err
		}
		visibility = parsed
	}

	now := s.now().UTC()
	twitter := &Twitter{
		Content:        req.Content,
		AuthorID:       principal.UserID,
		AuthorUsername: principal.Subject,
		Visibility:     visibility,
		Likes:          0,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, twitter); err != nil {
		return nil, err
	}

	response := toResponse(twitter)
	return &response, nil
}

// List returns the principal's own twitters, private ones included.
func (s *Service) List(ctx context.Context, principal *identity.Principal) (*TwitterListResponse, error) {
	found, err := s.repo.FindAllByAuthor(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}

	twitters := make([]TwitterResponse, 0, len(found))
	for _, twitter := range found {
		twitters = append(twitters, toResponse(twitter))
	}
	return &TwitterListResponse{Twitters: twitters}, nil
}

// Get returns one twitter if the principal is allowed to see it. A private
// twitter is only visible to its owner.
func (s *Service) Get(ctx context.Context, principal *identity.Principal, id int64) (*TwitterResponse, error) {
	twitter, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !twitter.CanView(principal) {
		return nil, shared.PermissionDenied("User does not have permission to view this twitter")
	}

	response := toResponse(twitter)
	return &response, nil
}

// Update edits a twitter. Only the owner may modify it, regardless of
// visibility.
func (s *Service) Update(ctx context.Context, principal *identity.Principal, id int64, req UpdateTwitterRequest) (*TwitterResponse, error) {
	twitter, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !twitter.IsOwner(principal) {
		return nil, shared.PermissionDenied("User does not have permission to update this twitter")
	}

	if req.Content != nil {
		twitter.Content = *req.Content
	}
	if req.Visibility != nil {
		visibility, err := ParseVisibility(*req.Visibility)
		if err != nil {
			return nil, err
		}
		twitter.Visibility = visibility
	}
	if req.Likes != nil {
		twitter.Likes = *req.Likes
	}
	twitter.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, twitter); err != nil {
		return nil, err
	}

	response := toResponse(twitter)
	return &response, nil
}

// Delete removes a twitter. Only the owner may delete it.
func (s *Service) Delete(ctx context.Context, principal *identity.Principal, id int64) error {
	twitter, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !twitter.IsOwner(principal) {
		return shared.PermissionDenied("User does not have permission to delete this twitter")
	}
	return s.repo.Delete(ctx, twitter.ID)
}
