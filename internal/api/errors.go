package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/shelfmark/shelfmark-api/internal/api/shared"
	"github.com/shelfmark/shelfmark-api/internal/domain"
	"github.com/shelfmark/shelfmark-api/internal/service/auth"
	"github.com/shelfmark/shelfmark-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
// Validation failures, uniqueness conflicts and bad credentials all render
// as 400; unresolvable identifiers as 404; everything else as 500. This is
// the single place that decides status codes, so handlers never leak
// internal error types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors (including malformed identifiers)
	case store.IsNotFoundError(err), errors.Is(err, domain.ErrInvalidID):
		return http.StatusNotFound

	// Uniqueness conflicts
	case store.IsDuplicateError(err):
		return http.StatusBadRequest

	// Bad credentials; message stays generic regardless of cause
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest

	// Validation failures
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Token errors from the auth middleware
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, store.ErrAccountNotFound):
		return "Account not found"

	case errors.Is(err, store.ErrBookNotFound):
		return "Book not found"

	case errors.Is(err, domain.ErrInvalidID), errors.Is(err, store.ErrNotFound):
		return "Not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already in use"

	case errors.Is(err, store.ErrISBNExists):
		return "A book with this ISBN already exists"

	case errors.Is(err, domain.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes an error response for the given error, deriving
// both the status code and a safe message. Validation errors carry their
// own message since domain validation messages are already user-facing.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	status := MapErrorToStatusCode(err)
	if userMessage == "" {
		userMessage = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, userMessage, err)
}

// SanitizeValidationError removes internal details from validator errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// Example format:
		// "Key: 'LoginRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly messages.
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
