// Package auth enforces the authentication boundary: every request is either
// exempt, authenticated, or rejected before any handler runs.
package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/simple-twitter/simple-twitter/internal/identity"
	"github.com/simple-twitter/simple-twitter/internal/platform/httpx"
	"github.com/simple-twitter/simple-twitter/internal/shared"
	"github.com/simple-twitter/simple-twitter/internal/token"
)

const bearerPrefix = "Bearer "

type endpoint struct {
	method string
	path   string
}

// Authenticator verifies bearer tokens and attaches the resolved principal to
// the request context. It holds only read-only configuration and is safe for
// concurrent use.
type Authenticator struct {
	logger    *slog.Logger
	codec     *token.Codec
	directory identity.Directory
	exempt    map[endpoint]struct{}
}

// NewAuthenticator constructs the authentication gate with the fixed
// allow-list of unauthenticated endpoints.
func NewAuthenticator(logger *slog.Logger, codec *token.Codec, directory identity.Directory) *Authenticator {
	return &Authenticator{
		logger:    logger,
		codec:     codec,
		directory: directory,
		exempt: map[endpoint]struct{}{
			{http.MethodPost, "/users"}:          {},
			{http.MethodPatch, "/users/confirm"}: {},
			{http.MethodPost, "/users/login"}:    {},
		},
	}
}

// Middleware authenticates the request or terminates it with a 401 envelope.
// Exempt endpoints pass through untouched.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.required(r) {
			next.ServeHTTP(w, r)
			return
		}

		bearer := headerToken(r)
		if bearer == "" {
			a.reject(w, "Token is not valid")
			return
		}

		subject, err := a.codec.Verify(bearer)
		if err != nil {
			details := "Token is not valid"
			if errors.Is(err, token.ErrTokenExpired) {
				details = "Token is expired"
			}
			a.reject(w, details)
			return
		}

		principal, err := a.directory.LoadBySubject(r.Context(), subject)
		if err != nil {
			if r.Context().Err() != nil {
				// Request cancelled while resolving identity: abandon the
				// attempt without attaching a principal or writing a body.
				return
			}
			switch {
			case errors.Is(err, shared.ErrNotFound),
				errors.Is(err, shared.ErrAccountBlocked),
				errors.Is(err, shared.ErrInvalidArgument):
				// Indistinguishable from an invalid token on purpose.
				a.reject(w, "Token is not valid")
			default:
				a.logger.Error("authentication gate", slog.Any("error", err))
				httpx.Error(w, http.StatusInternalServerError, "Internal Server Error", "", "internal")
			}
			return
		}

		ctx := identity.ContextWithPrincipal(r.Context(), principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *Authenticator) required(r *http.Request) bool {
	_, ok := a.exempt[endpoint{method: r.Method, path: r.URL.Path}]
	return !ok
}

func (a *Authenticator) reject(w http.ResponseWriter, details string) {
	httpx.Error(w, http.StatusUnauthorized, "Authentication Failure", details, "shared.ErrAuthentication")
}

func headerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}
	return strings.TrimPrefix(header, bearerPrefix)
}
