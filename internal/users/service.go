package users

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/simple-twitter/simple-twitter/internal/auth"
	"github.com/simple-twitter/simple-twitter/internal/roles"
	"github.com/simple-twitter/simple-twitter/internal/shared"
)

// CredentialVerifier checks login credentials.
type CredentialVerifier interface {
	Authenticate(ctx context.Context, email, password string) (*auth.Account, error)
}

// TokenIssuer mints bearer tokens for a subject.
type TokenIssuer interface {
	Issue(subject string) (string, time.Time, error)
	TTL() time.Duration
}

// RoleProvider resolves the default role for new registrations.
type RoleProvider interface {
	DefaultUserRole(ctx context.Context) (*roles.Role, error)
}

// ConfirmationEnqueuer queues the registration confirmation email.
type ConfirmationEnqueuer interface {
	EnqueueUserConfirmation(ctx context.Context, email, username string) error
}

// Service handles user business logic.
type Service struct {
	repo     RepositoryPort
	roles    RoleProvider
	verifier CredentialVerifier
	issuer   TokenIssuer
	mail     ConfirmationEnqueuer
	logger   *slog.Logger
	now      func() time.Time
}

// NewService builds a Service instance. mail may be nil when no queue is
// configured.
func NewService(repo RepositoryPort, roleProvider RoleProvider, verifier CredentialVerifier, issuer TokenIssuer, mail ConfirmationEnqueuer, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		roles:    roleProvider,
		verifier: verifier,
		issuer:   issuer,
		mail:     mail,
		logger:   logger,
		now:      time.Now,
	}
}

// Register creates an unconfirmed account with the default role and queues
// the confirmation email.
func (s *Service) Register(ctx context.Context, req CreateUserRequest) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("users: hash password: %w", err)
	}

	role, err := s.roles.DefaultUserRole(ctx)
	if err != nil {
		return fmt.Errorf("users: default role: %w", err)
	}

	now := s.now().UTC()
	user := &User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashed),
		Status:       shared.AccountUnregistered,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, user, role.ID); err != nil {
		return err
	}

	if s.mail != nil {
		// Best effort: a lost email must not fail the registration.
		if err := s.mail.EnqueueUserConfirmation(ctx, user.Email, user.Username); err != nil {
			s.logger.Warn("enqueue confirmation email", slog.Any("error", err))
		}
	}
	return nil
}

// Confirm activates an unconfirmed account. Confirming twice is harmless.
func (s *Service) Confirm(ctx context.Context, email string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user.IsRegistered() {
		return "User is already registered", nil
	}

	now := s.now().UTC()
	user.Status = shared.AccountActive
	user.RegisteredAt = &now
	user.UpdatedAt = now
	if err := s.repo.Update(ctx, user); err != nil {
		return "", err
	}
	return "User was confirmed successfully", nil
}

// Login verifies credentials and issues a bearer token bound to the username.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	account, err := s.verifier.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	signed, _, err := s.issuer.Issue(account.Username)
	if err != nil {
		return nil, fmt.Errorf("users: issue token: %w", err)
	}
	return &LoginResponse{
		AccessToken: signed,
		ExpiresIn:   int64(s.issuer.TTL().Seconds()),
	}, nil
}

// Update applies profile changes for the authenticated subject.
func (s *Service) Update(ctx context.Context, subject string, req UpdateUserRequest) (string, error) {
	user, err := s.repo.FindByUsername(ctx, subject)
	if err != nil {
		return "", err
	}
	if !user.IsRegistered() {
		return "User not registered", nil
	}

	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.BirthDate != nil {
		birth, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			return "", fmt.Errorf("%w: birth_date must use YYYY-MM-DD", shared.ErrInvalidArgument)
		}
		user.BirthDate = &birth
	}
	user.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return "", err
	}
	return "User was updated successfully", nil
}

// GetInfo returns the authenticated subject's profile.
func (s *Service) GetInfo(ctx context.Context, subject string) (*UserInfoResponse, error) {
	user, err := s.repo.FindByUsername(ctx, subject)
	if err != nil {
		return nil, err
	}
	return &UserInfoResponse{
		Username:      user.Username,
		Age:           user.Age(s.now()),
		DisplayName:   user.DisplayName,
		CreateDate:    user.CreatedAt.Format("2006-01-02"),
		AccountStatus: user.Status.DisplayValue(),
	}, nil
}
