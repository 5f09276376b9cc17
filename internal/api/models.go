package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/shelfmark/shelfmark-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the account registration endpoint.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// UpdateAccountRequest defines the payload for the account update endpoint.
// Pointer fields distinguish "not provided" (nil, leave unchanged) from
// "provided as empty" (rejected: name and email may never be cleared).
type UpdateAccountRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// AddBookRequest defines the payload for the book creation endpoint.
// The publication year is a pointer so a missing field is distinguishable
// from a legitimate zero and rejected as absent.
type AddBookRequest struct {
	Title           string `json:"title"            validate:"required"`
	Author          string `json:"author"           validate:"required"`
	ISBN            string `json:"isbn"             validate:"required"`
	PublicationYear *int   `json:"publication_year" validate:"required"`
}

// AccountSummary is the client-facing view of an account. It never carries
// password material.
type AccountSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// NewAccountSummary strips password material from a domain account.
func NewAccountSummary(account *domain.Account) AccountSummary {
	return AccountSummary{
		ID:        account.ID,
		Name:      account.Name,
		Email:     account.Email,
		CreatedAt: account.CreatedAt,
	}
}

// AccountResponse wraps a single account payload.
type AccountResponse struct {
	User AccountSummary `json:"user"`
}

// AccountListResponse wraps the account collection payload.
type AccountListResponse struct {
	Users []AccountSummary `json:"users"`
}

// AuthResponse defines the successful response for the login endpoint.
type AuthResponse struct {
	User AccountSummary `json:"user"`

	// Token is the signed JWT used for API authorization.
	Token string `json:"token"`

	// ExpiresAt is the RFC 3339 timestamp when the token expires.
	ExpiresAt string `json:"expires_at"`
}

// BookResponse wraps a single book payload.
type BookResponse struct {
	Book *domain.Book `json:"book"`
}

// BookListResponse wraps the catalog payload, newest first.
type BookListResponse struct {
	Books []*domain.Book `json:"books"`
}

// ConfirmationResponse acknowledges a successful destructive operation.
type ConfirmationResponse struct {
	Msg string `json:"msg"`
}
