package api

import (
	"errors"
	"net/http"

	"github.com/shelfmark/shelfmark-api/internal/api/shared"
	"github.com/shelfmark/shelfmark-api/internal/domain"
	"github.com/shelfmark/shelfmark-api/internal/store"
)

// BookHandler handles catalog-related API requests.
type BookHandler struct {
	bookStore store.BookStore
}

// NewBookHandler creates a new BookHandler with the given dependencies.
func NewBookHandler(bookStore store.BookStore) *BookHandler {
	return &BookHandler{
		bookStore: bookStore,
	}
}

// Add handles POST /books.
func (h *BookHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req AddBookRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	book, err := domain.NewBook(req.Title, req.Author, req.ISBN, *req.PublicationYear)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	// Pre-check for an existing ISBN. The unique constraint in the store
	// remains the final authority for racing inserts.
	if _, err := h.bookStore.GetByISBN(r.Context(), req.ISBN); err == nil {
		HandleAPIError(w, r, store.ErrISBNExists, "")
		return
	} else if !store.IsNotFoundError(err) {
		HandleAPIError(w, r, err, "Failed to add book")
		return
	}

	if err := h.bookStore.Create(r.Context(), book); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, BookResponse{Book: book})
}

// List handles GET /books. Books are returned newest first.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list books")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, BookListResponse{Books: books})
}

// Delete handles DELETE /books/{id}. Removal is permanent; re-adding under
// a new ISBN is the only path to changing catalog content.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.bookStore.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			HandleAPIError(w, r, store.ErrBookNotFound, "")
			return
		}
		HandleAPIError(w, r, err, "Failed to delete book")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ConfirmationResponse{Msg: "Book deleted"})
}
