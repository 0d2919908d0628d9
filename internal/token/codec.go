// Package token issues and verifies the signed bearer tokens used for
// authentication. Tokens are self-contained: validity is a function of the
// signature and the embedded expiry only, nothing is stored server-side.
package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the default token lifetime applied by Issue.
const DefaultTTL = 3 * time.Hour

var (
	// ErrTokenMissing indicates an empty token was presented.
	ErrTokenMissing = errors.New("token is missing")
	// ErrTokenInvalid indicates a malformed, mis-signed, mis-issued or expired token.
	ErrTokenInvalid = errors.New("token is not valid")
	// ErrTokenExpired indicates the token's expiry has passed. It wraps
	// ErrTokenInvalid so callers that only care about validity keep working.
	ErrTokenExpired = fmt.Errorf("%w: token is expired", ErrTokenInvalid)
	// ErrEmptySubject indicates Issue was called without a subject.
	ErrEmptySubject = errors.New("subject cannot be empty")
)

// Codec signs and verifies HMAC-SHA256 bearer tokens for a fixed issuer.
// It performs pure cryptographic compute and is safe for concurrent use.
type Codec struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// Option customizes a Codec.
type Option func(*Codec)

// WithTTL overrides the default token lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(c *Codec) { c.ttl = ttl }
}

// WithClock overrides the time source, used by expiry tests.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) { c.now = now }
}

// NewCodec constructs a Codec for the given signing secret and issuer.
func NewCodec(secret, issuer string, opts ...Option) *Codec {
	c := &Codec{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    DefaultTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Issue creates a signed token for subject using the current time and the
// configured lifetime. It returns the token and its expiry.
func (c *Codec) Issue(subject string) (string, time.Time, error) {
	now := c.now().UTC()
	expiresAt := now.Add(c.ttl)
	signed, err := c.IssueAt(subject, now, expiresAt)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// IssueAt creates a signed token for subject with explicit issue and expiry
// times. The signature is deterministic for identical inputs and secret.
func (c *Codec) IssueAt(subject string, issuedAt, expiresAt time.Time) (string, error) {
	if strings.TrimSpace(subject) == "" {
		return "", ErrEmptySubject
	}
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    c.issuer,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify checks the token's signature, issuer and expiry, and returns the
// embedded subject unchanged. A token is rejected at or after its expiry.
func (c *Codec) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrTokenMissing
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return c.secret, nil
	},
		jwt.WithIssuer(c.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	if !parsed.Valid {
		return "", ErrTokenInvalid
	}
	return claims.Subject, nil
}

// TTL reports the configured token lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}
