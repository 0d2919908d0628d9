package shared

import "errors"

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate indicates a unique constraint violation.
	ErrDuplicate = errors.New("duplicate entry")
	// ErrInvalidCredentials indicates login failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAuthentication indicates the request could not be authenticated.
	ErrAuthentication = errors.New("authentication failed")
	// ErrPermissionDenied indicates the caller may not act on the resource.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrAccountBlocked indicates the account is blocked.
	ErrAccountBlocked = errors.New("account is blocked")
	// ErrInvalidArgument indicates a caller-supplied value is invalid.
	ErrInvalidArgument = errors.New("invalid argument")
)

// domainError carries a user-facing message while still matching its
// sentinel through errors.Is.
type domainError struct {
	msg  string
	kind error
}

func (e *domainError) Error() string { return e.msg }

func (e *domainError) Is(target error) bool { return errors.Is(e.kind, target) }

// NotFound builds an ErrNotFound with a user-facing message.
func NotFound(msg string) error { return &domainError{msg: msg, kind: ErrNotFound} }

// PermissionDenied builds an ErrPermissionDenied with a user-facing message.
func PermissionDenied(msg string) error { return &domainError{msg: msg, kind: ErrPermissionDenied} }

// InvalidArgument builds an ErrInvalidArgument with a user-facing message.
func InvalidArgument(msg string) error { return &domainError{msg: msg, kind: ErrInvalidArgument} }
