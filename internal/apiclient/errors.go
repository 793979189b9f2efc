package apiclient

import (
	"fmt"
	"net/http"
)

// Category is the fixed classification of a failed API call. Every failure
// surfaced by this package falls into exactly one category, derived from the
// response status (or its absence) alone, never from message text.
type Category string

const (
	Unauthorized    Category = "unauthorized"
	Forbidden       Category = "forbidden"
	NotFound        Category = "not_found"
	Conflict        Category = "conflict"
	ServerError     Category = "server_error"
	NetworkError    Category = "network_error"
	ValidationError Category = "validation_error"
	UnknownError    Category = "unknown_error"
)

// defaultMessage is the final fallback when neither the server body nor the
// transport provides anything displayable.
const defaultMessage = "An unexpected error occurred"

// Error is a classified API failure. Message is always non-empty and safe to
// display to the user.
type Error struct {
	Category Category
	// Status is the HTTP status code, or 0 when no response was received.
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s: %s", e.Category, e.Message)
	}
	return fmt.Sprintf("%s (%d): %s", e.Category, e.Status, e.Message)
}

// Classify maps an HTTP status code to its error category.
func Classify(status int) Category {
	switch {
	case status == http.StatusUnauthorized:
		return Unauthorized
	case status == http.StatusForbidden:
		return Forbidden
	case status == http.StatusNotFound:
		return NotFound
	case status == http.StatusConflict:
		return Conflict
	case status >= 500:
		return ServerError
	default:
		return UnknownError
	}
}

// errorBody is the structured error payload the backend returns on failures.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// messageFrom picks the displayable message for a failed response: the
// server's structured message field if present, otherwise the HTTP status
// text, otherwise a fixed default.
func messageFrom(body errorBody, status int) string {
	if body.Message != "" {
		return body.Message
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return defaultMessage
}
