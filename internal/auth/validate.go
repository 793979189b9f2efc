package auth

import (
	"net/mail"

	"github.com/splitmacha/splitmacha/internal/apiclient"
)

// Validation failures resolve locally, before any network call is attempted.
// They are classified so the UI handles them like any other API failure.
var (
	ErrInvalidEmail = &apiclient.Error{
		Category: apiclient.ValidationError,
		Message:  "Please enter a valid email address",
	}
	ErrWeakPassword = &apiclient.Error{
		Category: apiclient.ValidationError,
		Message:  "Password must be at least 8 characters",
	}
	ErrNameRequired = &apiclient.Error{
		Category: apiclient.ValidationError,
		Message:  "Name is required",
	}
)

func validateEmail(email string) error {
	if email == "" {
		return ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return ErrWeakPassword
	}
	return nil
}
