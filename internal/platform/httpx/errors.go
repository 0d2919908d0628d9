package httpx

import (
	"errors"
	"net/http"

	"github.com/simple-twitter/simple-twitter/internal/shared"
)

// RespondError maps domain errors to the HTTP error envelope.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		Error(w, http.StatusNotFound, "Not Found Exception", err.Error(), "shared.ErrNotFound")
	case errors.Is(err, shared.ErrDuplicate):
		Error(w, http.StatusBadRequest, "Bad Request Exception", err.Error(), "shared.ErrDuplicate")
	case errors.Is(err, shared.ErrInvalidArgument):
		Error(w, http.StatusBadRequest, "Bad Request Exception", err.Error(), "shared.ErrInvalidArgument")
	case errors.Is(err, shared.ErrInvalidCredentials):
		Error(w, http.StatusUnauthorized, "Invalid Credentials Exception", err.Error(), "shared.ErrInvalidCredentials")
	case errors.Is(err, shared.ErrAuthentication):
		Error(w, http.StatusUnauthorized, "Authentication Failure", err.Error(), "shared.ErrAuthentication")
	case errors.Is(err, shared.ErrAccountBlocked):
		Error(w, http.StatusForbidden, "Permission Denied Exception", err.Error(), "shared.ErrAccountBlocked")
	case errors.Is(err, shared.ErrPermissionDenied):
		Error(w, http.StatusForbidden, "Permission Denied Exception", err.Error(), "shared.ErrPermissionDenied")
	default:
		Error(w, http.StatusInternalServerError, "Internal Server Error", "", "internal")
	}
}
