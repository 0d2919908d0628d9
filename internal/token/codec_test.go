package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-signing-secret"
	testIssuer = "simple_twitter"
)

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	codec := NewCodec(testSecret, testIssuer)

	signed, expiresAt, err := codec.Issue("alice")
	require.NoError(t, err)
	require.NotEmpty(t, signed)
	assert.WithinDuration(t, time.Now().Add(DefaultTTL), expiresAt, time.Minute)

	subject, err := codec.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestIssueRejectsEmptySubject(t *testing.T) {
	codec := NewCodec(testSecret, testIssuer)

	_, _, err := codec.Issue("")
	assert.ErrorIs(t, err, ErrEmptySubject)

	_, _, err = codec.Issue("   ")
	assert.ErrorIs(t, err, ErrEmptySubject)
}

func TestVerifyEmptyTokenIsParameterError(t *testing.T) {
	codec := NewCodec(testSecret, testIssuer)

	_, err := codec.Verify("")
	require.ErrorIs(t, err, ErrTokenMissing)
	assert.NotErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyMalformedToken(t *testing.T) {
	codec := NewCodec(testSecret, testIssuer)

	_, err := codec.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyRejectsDifferentKey(t *testing.T) {
	issuing := NewCodec("other-secret", testIssuer)
	verifying := NewCodec(testSecret, testIssuer)

	signed, _, err := issuing.Issue("alice")
	require.NoError(t, err)

	_, err = verifying.Verify(signed)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	issuing := NewCodec(testSecret, "someone_else")
	verifying := NewCodec(testSecret, testIssuer)

	signed, _, err := issuing.Issue("alice")
	require.NoError(t, err)

	_, err = verifying.Verify(signed)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	issuedAt := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	expiresAt := issuedAt.Add(DefaultTTL)

	codec := NewCodec(testSecret, testIssuer, WithClock(func() time.Time {
		return expiresAt.Add(time.Second)
	}))

	signed, err := codec.IssueAt("alice", issuedAt, expiresAt)
	require.NoError(t, err)

	_, err = codec.Verify(signed)
	require.ErrorIs(t, err, ErrTokenExpired)
	// Expiry is a flavor of invalidity, never a separate success path.
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyJustBeforeExpiry(t *testing.T) {
	issuedAt := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	expiresAt := issuedAt.Add(DefaultTTL)

	codec := NewCodec(testSecret, testIssuer, WithClock(func() time.Time {
		return expiresAt.Add(-time.Second)
	}))

	signed, err := codec.IssueAt("alice", issuedAt, expiresAt)
	require.NoError(t, err)

	subject, err := codec.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestIssueIsDeterministicForFixedInputs(t *testing.T) {
	issuedAt := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	expiresAt := issuedAt.Add(time.Hour)

	codec := NewCodec(testSecret, testIssuer)

	first, err := codec.IssueAt("alice", issuedAt, expiresAt)
	require.NoError(t, err)
	second, err := codec.IssueAt("alice", issuedAt, expiresAt)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCustomTTL(t *testing.T) {
	codec := NewCodec(testSecret, testIssuer, WithTTL(30*time.Minute))

	_, expiresAt, err := codec.Issue("alice")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, time.Minute)
}
