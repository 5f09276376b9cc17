package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/shelfmark/shelfmark-api/internal/domain"
)

// BookStore defines the interface for catalog data persistence.
type BookStore interface {
	// Create saves a new book to the store.
	// Returns ErrISBNExists if a book with the same ISBN already exists.
	Create(ctx context.Context, book *domain.Book) error

	// GetByID retrieves a book by its unique ID.
	// Returns ErrBookNotFound if the book does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error)

	// GetByISBN retrieves a book by its ISBN.
	// Returns ErrBookNotFound if the book does not exist.
	GetByISBN(ctx context.Context, isbn string) (*domain.Book, error)

	// List returns all books ordered by creation time, newest first.
	List(ctx context.Context) ([]*domain.Book, error)

	// Delete removes a book from the store by its ID.
	// Returns ErrBookNotFound if the book does not exist.
	// This operation is permanent and cannot be undone.
	Delete(ctx context.Context, id uuid.UUID) error
}
