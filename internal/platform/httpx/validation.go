package httpx

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RespondValidationError renders DTO validation failures as a 400 envelope
// with every offending field listed in details.
func RespondValidationError(w http.ResponseWriter, err error) {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		Error(w, http.StatusBadRequest, "Bad Request Exception", "request body is not valid", "validator")
		return
	}
	details := make([]string, 0, len(fieldErrors))
	for _, fieldErr := range fieldErrors {
		details = append(details, fieldDetail(fieldErr))
	}
	Error(w, http.StatusBadRequest, "Invalid Fields Exception. Check details", strings.Join(details, ", "), "validator.ValidationErrors")
}

func fieldDetail(err validator.FieldError) string {
	field := strings.ToLower(err.Field())
	switch err.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " is invalid"
	case "min":
		return field + " is too short"
	case "datetime":
		return field + " has an invalid format"
	default:
		return field + " is invalid"
	}
}
