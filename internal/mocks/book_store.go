package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/shelfmark/shelfmark-api/internal/domain"
	"github.com/shelfmark/shelfmark-api/internal/store"
)

// MockBookStore implements store.BookStore for testing.
// The default behavior is an in-memory map keyed by ISBN; each method can
// be overridden through its function field.
type MockBookStore struct {
	mu sync.Mutex

	// Function fields for customizable behavior
	CreateFn    func(ctx context.Context, book *domain.Book) error
	GetByIDFn   func(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	GetByISBNFn func(ctx context.Context, isbn string) (*domain.Book, error)
	ListFn      func(ctx context.Context) ([]*domain.Book, error)
	DeleteFn    func(ctx context.Context, id uuid.UUID) error

	// Data for the default implementation
	Books map[string]*domain.Book
}

// Ensure MockBookStore implements store.BookStore
var _ store.BookStore = (*MockBookStore)(nil)

// NewMockBookStore creates a new mock store with initialized defaults.
func NewMockBookStore() *MockBookStore {
	return &MockBookStore{
		Books: make(map[string]*domain.Book),
	}
}

// Create implements the BookStore interface.
func (m *MockBookStore) Create(ctx context.Context, book *domain.Book) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, book)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.Books[book.ISBN]; exists {
		return store.ErrISBNExists
	}

	m.Books[book.ISBN] = book
	return nil
}

// GetByID implements the BookStore interface.
func (m *MockBookStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, book := range m.Books {
		if book.ID == id {
			return book, nil
		}
	}
	return nil, store.ErrBookNotFound
}

// GetByISBN implements the BookStore interface.
func (m *MockBookStore) GetByISBN(ctx context.Context, isbn string) (*domain.Book, error) {
	if m.GetByISBNFn != nil {
		return m.GetByISBNFn(ctx, isbn)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	book, exists := m.Books[isbn]
	if !exists {
		return nil, store.ErrBookNotFound
	}
	return book, nil
}

// List implements the BookStore interface. Books come back newest first,
// matching the ordering contract of the real store.
func (m *MockBookStore) List(ctx context.Context) ([]*domain.Book, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	books := make([]*domain.Book, 0, len(m.Books))
	for _, book := range m.Books {
		books = append(books, book)
	}
	sort.Slice(books, func(i, j int) bool {
		return books[i].CreatedAt.After(books[j].CreatedAt)
	})
	return books, nil
}

// Delete implements the BookStore interface.
func (m *MockBookStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for isbn, book := range m.Books {
		if book.ID == id {
			delete(m.Books, isbn)
			return nil
		}
	}
	return store.ErrBookNotFound
}
