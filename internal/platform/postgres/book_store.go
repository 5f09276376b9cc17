package postgres

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shelfmark/shelfmark-api/internal/domain"
	"github.com/shelfmark/shelfmark-api/internal/store"
)

// PostgresBookStore implements the store.BookStore interface
// using a PostgreSQL database as the storage backend.
type PostgresBookStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresBookStore creates a new PostgreSQL implementation of the
// BookStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, the default logger is used.
func NewPostgresBookStore(db store.DBTX, logger *slog.Logger) *PostgresBookStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresBookStore{
		db:     db,
		logger: logger.With(slog.String("component", "book_store")),
	}
}

// Ensure PostgresBookStore implements store.BookStore interface
var _ store.BookStore = (*PostgresBookStore)(nil)

// Create implements store.BookStore.Create
func (s *PostgresBookStore) Create(ctx context.Context, book *domain.Book) error {
	query := `
		INSERT INTO books (id, title, author, isbn, publication_year, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.db.ExecContext(ctx, query,
		book.ID, book.Title, book.Author, book.ISBN,
		book.PublicationYear, book.CreatedAt)
	if err != nil {
		s.logger.DebugContext(ctx, "book insert failed", slog.String("error", err.Error()))
		return MapUniqueViolation(err, store.ErrISBNExists)
	}

	return nil
}

// GetByID implements store.BookStore.GetByID
func (s *PostgresBookStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	query := `
		SELECT id, title, author, isbn, publication_year, created_at
		FROM books
		WHERE id = $1`

	book := &domain.Book{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&book.ID, &book.Title, &book.Author, &book.ISBN,
		&book.PublicationYear, &book.CreatedAt)
	if err != nil {
		if IsNotFoundError(err) {
			return nil, store.ErrBookNotFound
		}
		return nil, MapError(err)
	}

	return book, nil
}

// GetByISBN implements store.BookStore.GetByISBN
func (s *PostgresBookStore) GetByISBN(ctx context.Context, isbn string) (*domain.Book, error) {
	query := `
		SELECT id, title, author, isbn, publication_year, created_at
		FROM books
		WHERE isbn = $1`

	book := &domain.Book{}
	err := s.db.QueryRowContext(ctx, query, isbn).Scan(
		&book.ID, &book.Title, &book.Author, &book.ISBN,
		&book.PublicationYear, &book.CreatedAt)
	if err != nil {
		if IsNotFoundError(err) {
			return nil, store.ErrBookNotFound
		}
		return nil, MapError(err)
	}

	return book, nil
}

// List implements store.BookStore.List
// Books are returned newest first, ordered by creation time.
func (s *PostgresBookStore) List(ctx context.Context) ([]*domain.Book, error) {
	query := `
		SELECT id, title, author, isbn, publication_year, created_at
		FROM books
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logger.WarnContext(ctx, "failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	books := make([]*domain.Book, 0)
	for rows.Next() {
		book := &domain.Book{}
		if err := rows.Scan(
			&book.ID, &book.Title, &book.Author, &book.ISBN,
			&book.PublicationYear, &book.CreatedAt); err != nil {
			return nil, MapError(err)
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return books, nil
}

// Delete implements store.BookStore.Delete
func (s *PostgresBookStore) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM books WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrBookNotFound)
}
