package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/shelfmark/shelfmark-api/internal/domain"
)

// AccountStore defines the interface for account data persistence.
type AccountStore interface {
	// Create saves a new account to the store. The account must already
	// carry its hashed password; plaintext is never persisted.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, account *domain.Account) error

	// GetByID retrieves an account by its unique ID.
	// Returns ErrAccountNotFound if the account does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)

	// GetByEmail retrieves an account by email address.
	// Returns ErrAccountNotFound if the account does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)

	// List returns all accounts. Password hashes are included in the
	// returned entities; the API layer is responsible for stripping them.
	List(ctx context.Context) ([]*domain.Account, error)

	// Update modifies an existing account's name and email.
	// Returns ErrAccountNotFound if the account does not exist.
	// Returns ErrEmailExists if updating to an email held by another account.
	Update(ctx context.Context, account *domain.Account) error

	// Delete removes an account from the store by its ID.
	// Returns ErrAccountNotFound if the account does not exist.
	// This operation is permanent and cannot be undone.
	Delete(ctx context.Context, id uuid.UUID) error
}
