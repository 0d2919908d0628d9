// Package httpx provides HTTP response utilities and the API error envelope.
package httpx

import (
	"encoding/json"
	"net/http"
	"time"
)

// ErrorDetails is the error envelope returned by every failing endpoint.
type ErrorDetails struct {
	Timestamp        time.Time `json:"timestamp"`
	Status           int       `json:"status"`
	Title            string    `json:"title"`
	Details          string    `json:"details"`
	DeveloperMessage string    `json:"developer_message"`
}

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Error sends the error envelope with the given status code.
func Error(w http.ResponseWriter, status int, title, details, developerMessage string) {
	JSON(w, status, ErrorDetails{
		Timestamp:        time.Now().UTC(),
		Status:           status,
		Title:            title,
		Details:          details,
		DeveloperMessage: developerMessage,
	})
}

// DecodeJSON decodes JSON request body into the target struct.
func DecodeJSON(r *http.Request, target any) error {
	return json.NewDecoder(r.Body).Decode(target)
}
