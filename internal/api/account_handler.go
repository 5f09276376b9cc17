package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/shelfmark/shelfmark-api/internal/api/shared"
	"github.com/shelfmark/shelfmark-api/internal/domain"
	"github.com/shelfmark/shelfmark-api/internal/service/auth"
	"github.com/shelfmark/shelfmark-api/internal/store"
)

// AccountHandler handles account-related API requests.
type AccountHandler struct {
	accountStore   store.AccountStore
	jwtService     auth.JWTService
	passwordHasher auth.PasswordHasher
}

// NewAccountHandler creates a new AccountHandler with the given dependencies.
func NewAccountHandler(
	accountStore store.AccountStore,
	jwtService auth.JWTService,
	passwordHasher auth.PasswordHasher,
) *AccountHandler {
	return &AccountHandler{
		accountStore:   accountStore,
		jwtService:     jwtService,
		passwordHasher: passwordHasher,
	}
}

// Register handles POST /accounts/register.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	account, err := domain.NewAccount(req.Name, req.Email, req.Password)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	// Pre-check for an existing email. The unique constraint in the store
	// remains the final authority; a racing insert still surfaces as
	// ErrEmailExists from Create.
	if _, err := h.accountStore.GetByEmail(r.Context(), req.Email); err == nil {
		HandleAPIError(w, r, store.ErrEmailExists, "")
		return
	} else if !store.IsNotFoundError(err) {
		HandleAPIError(w, r, err, "Failed to register account")
		return
	}

	hashed, err := h.passwordHasher.Hash(account.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to register account")
		return
	}
	account.HashedPassword = hashed
	account.Password = ""

	if err := h.accountStore.Create(r.Context(), account); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, AccountResponse{
		User: NewAccountSummary(account),
	})
}

// Login handles POST /accounts/login.
// Unknown email and wrong password render identically so the response
// never reveals which one failed.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	account, err := h.accountStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if store.IsNotFoundError(err) {
			HandleAPIError(w, r, domain.ErrInvalidCredentials, "")
			return
		}
		HandleAPIError(w, r, err, "Failed to authenticate")
		return
	}

	if err := h.passwordHasher.Compare(account.HashedPassword, req.Password); err != nil {
		HandleAPIError(w, r, domain.ErrInvalidCredentials, "")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), account.ID)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "account_id", account.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate session token")
		return
	}

	claims, err := h.jwtService.ValidateToken(r.Context(), token)
	if err != nil {
		slog.Error("failed to read back token claims", "error", err, "account_id", account.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate session token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		User:      NewAccountSummary(account),
		Token:     token,
		ExpiresAt: claims.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

// List handles GET /accounts.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list accounts")
		return
	}

	summaries := make([]AccountSummary, 0, len(accounts))
	for _, account := range accounts {
		summaries = append(summaries, NewAccountSummary(account))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AccountListResponse{Users: summaries})
}

// Update handles PUT /accounts/{id}.
// Fields left out of the payload are left unchanged; fields provided as
// empty strings are rejected rather than clearing the stored value.
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateAccountRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := h.accountStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			shared.RespondWithError(w, r, http.StatusBadRequest, domain.ErrEmptyName.Error())
			return
		}
		account.Name = *req.Name
	}

	if req.Email != nil {
		if !domain.ValidEmail(*req.Email) {
			shared.RespondWithError(w, r, http.StatusBadRequest, domain.ErrInvalidEmail.Error())
			return
		}

		// Uniqueness check against other accounts only; keeping the same
		// email is not a conflict.
		if *req.Email != account.Email {
			if existing, err := h.accountStore.GetByEmail(r.Context(), *req.Email); err == nil && existing.ID != id {
				HandleAPIError(w, r, store.ErrEmailExists, "")
				return
			} else if err != nil && !store.IsNotFoundError(err) {
				HandleAPIError(w, r, err, "Failed to update account")
				return
			}
		}
		account.Email = *req.Email
	}

	account.UpdatedAt = time.Now().UTC()

	if err := h.accountStore.Update(r.Context(), account); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AccountResponse{
		User: NewAccountSummary(account),
	})
}

// Delete handles DELETE /accounts/{id}. Removal is permanent.
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.accountStore.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			HandleAPIError(w, r, store.ErrAccountNotFound, "")
			return
		}
		HandleAPIError(w, r, err, "Failed to delete account")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ConfirmationResponse{Msg: "Account deleted"})
}
