package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Book validation errors
var (
	ErrEmptyBookID  = errors.New("book ID cannot be empty")
	ErrEmptyTitle   = errors.New("book title cannot be empty")
	ErrEmptyAuthor  = errors.New("book author cannot be empty")
	ErrEmptyISBN    = errors.New("book ISBN cannot be empty")
	ErrEmptyPubYear = errors.New("book publication year cannot be empty")
)

// Book represents a catalog record. Books are immutable after creation;
// the only way to change catalog content is delete and re-add.
type Book struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	ISBN            string    `json:"isbn"`
	PublicationYear int       `json:"publication_year"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewBook creates a new Book with the given attributes.
// It generates a new UUID for the book ID and sets the creation timestamp.
// Returns an error if validation fails.
func NewBook(title, author, isbn string, publicationYear int) (*Book, error) {
	book := &Book{
		ID:              uuid.New(),
		Title:           title,
		Author:          author,
		ISBN:            isbn,
		PublicationYear: publicationYear,
		CreatedAt:       time.Now().UTC(),
	}

	if err := book.Validate(); err != nil {
		return nil, err
	}

	return book, nil
}

// Validate checks if the Book has valid data.
// All four catalog attributes are mandatory.
func (b *Book) Validate() error {
	if b.ID == uuid.Nil {
		return ErrEmptyBookID
	}

	if b.Title == "" {
		return ErrEmptyTitle
	}

	if b.Author == "" {
		return ErrEmptyAuthor
	}

	if b.ISBN == "" {
		return ErrEmptyISBN
	}

	if b.PublicationYear == 0 {
		return ErrEmptyPubYear
	}

	return nil
}
