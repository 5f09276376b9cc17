package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBook(t *testing.T) {
	t.Parallel()

	t.Run("creates valid book", func(t *testing.T) {
		t.Parallel()
		book, err := NewBook("Dune", "Herbert", "9780441013593", 1965)
		require.NoError(t, err)

		assert.Equal(t, "Dune", book.Title)
		assert.Equal(t, "Herbert", book.Author)
		assert.Equal(t, "9780441013593", book.ISBN)
		assert.Equal(t, 1965, book.PublicationYear)
		assert.False(t, book.CreatedAt.IsZero())
	})

	tests := []struct {
		name    string
		title   string
		author  string
		isbn    string
		year    int
		wantErr error
	}{
		{"missing title", "", "Herbert", "9780441013593", 1965, ErrEmptyTitle},
		{"missing author", "Dune", "", "9780441013593", 1965, ErrEmptyAuthor},
		{"missing isbn", "Dune", "Herbert", "", 1965, ErrEmptyISBN},
		{"missing year", "Dune", "Herbert", "9780441013593", 0, ErrEmptyPubYear},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewBook(tc.title, tc.author, tc.isbn, tc.year)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
