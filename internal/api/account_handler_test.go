package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfmark/shelfmark-api/internal/config"
	"github.com/shelfmark/shelfmark-api/internal/domain"
	"github.com/shelfmark/shelfmark-api/internal/mocks"
	"github.com/shelfmark/shelfmark-api/internal/service/auth"
)

func newTestJWTService(t *testing.T) auth.JWTService {
	t.Helper()
	svc, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            "test-jwt-secret-that-is-32-chars-long",
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)
	return svc
}

func newAccountRouter(t *testing.T, accountStore *mocks.MockAccountStore) http.Handler {
	t.Helper()
	handler := NewAccountHandler(accountStore, newTestJWTService(t), auth.NewBcryptHasher())

	r := chi.NewRouter()
	r.Post("/accounts/register", handler.Register)
	r.Post("/accounts/login", handler.Login)
	r.Get("/accounts", handler.List)
	r.Put("/accounts/{id}", handler.Update)
	r.Delete("/accounts/{id}", handler.Delete)
	return r
}

func doJSONRequest(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

// seedAccount stores an account with a real bcrypt hash so the login path
// exercises the library comparison.
func seedAccount(t *testing.T, accountStore *mocks.MockAccountStore, name, email, password string) *domain.Account {
	t.Helper()

	account, err := domain.NewAccount(name, email, password)
	require.NoError(t, err)

	hashed, err := auth.NewBcryptHasher().Hash(password)
	require.NoError(t, err)
	account.HashedPassword = hashed
	account.Password = ""

	require.NoError(t, accountStore.Create(context.Background(), account))
	return account
}

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("success returns 201 and no password material", func(t *testing.T) {
		t.Parallel()
		accountStore := mocks.NewMockAccountStore()
		router := newAccountRouter(t, accountStore)

		rec := doJSONRequest(t, router, http.MethodPost, "/accounts/register", map[string]string{
			"name":     "Ann",
			"email":    "ann@x.com",
			"password": "secret1",
		})

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp AccountResponse
		decodeBody(t, rec, &resp)
		assert.NotEqual(t, uuid.Nil, resp.User.ID)
		assert.Equal(t, "Ann", resp.User.Name)
		assert.Equal(t, "ann@x.com", resp.User.Email)

		// The body never carries the plaintext or the hash.
		body := rec.Body.String()
		assert.NotContains(t, body, "secret1")
		assert.NotContains(t, body, "password")
		assert.NotContains(t, body, "$2a$")

		// The stored hash never equals the plaintext.
		stored := accountStore.Accounts["ann@x.com"]
		require.NotNil(t, stored)
		assert.NotEqual(t, "secret1", stored.HashedPassword)
		assert.Empty(t, stored.Password)
	})

	t.Run("duplicate email returns 400 regardless of password", func(t *testing.T) {
		t.Parallel()
		accountStore := mocks.NewMockAccountStore()
		router := newAccountRouter(t, accountStore)
		seedAccount(t, accountStore, "Ann", "ann@x.com", "secret1")

		rec := doJSONRequest(t, router, http.MethodPost, "/accounts/register", map[string]string{
			"name":     "Other Ann",
			"email":    "ann@x.com",
			"password": "different-password",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp struct {
			Msg string `json:"msg"`
		}
		decodeBody(t, rec, &resp)
		assert.Equal(t, "Email already in use", resp.Msg)
	})

	tests := []struct {
		name    string
		payload map[string]string
	}{
		{
			name: "missing name",
			payload: map[string]string{
				"email":    "ann@x.com",
				"password": "secret1",
			},
		},
		{
			name: "missing email",
			payload: map[string]string{
				"name":     "Ann",
				"password": "secret1",
			},
		},
		{
			name: "malformed email",
			payload: map[string]string{
				"name":     "Ann",
				"email":    "not-an-email",
				"password": "secret1",
			},
		},
		{
			name: "password shorter than six characters",
			payload: map[string]string{
				"name":     "Ann",
				"email":    "ann@x.com",
				"password": "five5",
			},
		},
		{
			name: "missing password",
			payload: map[string]string{
				"name":  "Ann",
				"email": "ann@x.com",
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name+" returns 400", func(t *testing.T) {
			t.Parallel()
			accountStore := mocks.NewMockAccountStore()
			router := newAccountRouter(t, accountStore)

			rec := doJSONRequest(t, router, http.MethodPost, "/accounts/register", tc.payload)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, accountStore.Accounts, "no record may be persisted on validation failure")
		})
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("success returns token valid for one hour", func(t *testing.T) {
		t.Parallel()
		accountStore := mocks.NewMockAccountStore()
		router := newAccountRouter(t, accountStore)
		account := seedAccount(t, accountStore, "Ann", "ann@x.com", "secret1")

		rec := doJSONRequest(t, router, http.MethodPost, "/accounts/login", map[string]string{
			"email":    "ann@x.com",
			"password": "secret1",
		})

		require.Equal(t, http.StatusOK, rec.Code)

		var resp AuthResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, account.ID, resp.User.ID)
		assert.Equal(t, "ann@x.com", resp.User.Email)
		require.NotEmpty(t, resp.Token)

		// The token must decode back to the same account with a one-hour window.
		claims, err := newTestJWTService(t).ValidateToken(context.Background(), resp.Token)
		require.NoError(t, err)
		assert.Equal(t, account.ID, claims.AccountID)
		assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, time.Minute)

		expiresAt, err := time.Parse(time.RFC3339, resp.ExpiresAt)
		require.NoError(t, err)
		assert.WithinDuration(t, claims.ExpiresAt, expiresAt, time.Second)
	})

	t.Run("wrong password and unknown email render identically", func(t *testing.T) {
		t.Parallel()
		accountStore := mocks.NewMockAccountStore()
		router := newAccountRouter(t, accountStore)
		seedAccount(t, accountStore, "Ann", "ann@x.com", "secret1")

		wrongPassword := doJSONRequest(t, router, http.MethodPost, "/accounts/login", map[string]string{
			"email":    "ann@x.com",
			"password": "wrong",
		})
		unknownEmail := doJSONRequest(t, router, http.MethodPost, "/accounts/login", map[string]string{
			"email":    "nobody@x.com",
			"password": "secret1",
		})

		assert.Equal(t, http.StatusBadRequest, wrongPassword.Code)
		assert.Equal(t, http.StatusBadRequest, unknownEmail.Code)

		var w, u struct {
			Msg string `json:"msg"`
		}
		decodeBody(t, wrongPassword, &w)
		decodeBody(t, unknownEmail, &u)
		assert.Equal(t, w.Msg, u.Msg)
		assert.Equal(t, "Invalid credentials", w.Msg)
	})
}

func TestListAccounts(t *testing.T) {
	t.Parallel()

	accountStore := mocks.NewMockAccountStore()
	router := newAccountRouter(t, accountStore)
	seedAccount(t, accountStore, "Ann", "ann@x.com", "secret1")
	seedAccount(t, accountStore, "Bob", "bob@x.com", "secret2")

	rec := doJSONRequest(t, router, http.MethodGet, "/accounts", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AccountListResponse
	decodeBody(t, rec, &resp)
	assert.Len(t, resp.Users, 2)

	body := rec.Body.String()
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "$2a$")
}

func TestUpdateAccount(t *testing.T) {
	t.Parallel()

	strPtr := func(s string) *string { return &s }

	t.Run("updates provided fields only", func(t *testing.T) {
		t.Parallel()
		accountStore := mocks.NewMockAccountStore()
		router := newAccountRouter(t, accountStore)
		account := seedAccount(t, accountStore, "Ann", "ann@x.com", "secret1")

		rec := doJSONRequest(t, router, http.MethodPut, "/accounts/"+account.ID.String(),
			UpdateAccountRequest{Name: strPtr("Annette")})

		require.Equal(t, http.StatusOK, rec.Code)

		var resp AccountResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "Annette", resp.User.Name)
		assert.Equal(t, "ann@x.com", resp.User.Email, "omitted email stays unchanged")
	})

	t.Run("empty provided name is rejected", func(t *testing.T) {
		t.Parallel()
		accountStore := mocks.NewMockAccountStore()
		router := newAccountRouter(t, accountStore)
		account := seedAccount(t, accountStore, "Ann", "ann@x.com", "secret1")

		rec := doJSONRequest(t, router, http.MethodPut, "/accounts/"+account.ID.String(),
			UpdateAccountRequest{Name: strPtr("")})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed email is rejected", func(t *testing.T) {
		t.Parallel()
		accountStore := mocks.NewMockAccountStore()
		router := newAccountRouter(t, accountStore)
		account := seedAccount(t, accountStore, "Ann", "ann@x.com", "secret1")

		rec := doJSONRequest(t, router, http.MethodPut, "/accounts/"+account.ID.String(),
			UpdateAccountRequest{Email: strPtr("no-at-sign")})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("email held by another account conflicts", func(t *testing.T) {
		t.Parallel()
		accountStore := mocks.NewMockAccountStore()
		router := newAccountRouter(t, accountStore)
		account := seedAccount(t, accountStore, "Ann", "ann@x.com", "secret1")
		seedAccount(t, accountStore, "Bob", "bob@x.com", "secret2")

		rec := doJSONRequest(t, router, http.MethodPut, "/accounts/"+account.ID.String(),
			UpdateAccountRequest{Email: strPtr("bob@x.com")})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("keeping own email is not a conflict", func(t *testing.T) {
		t.Parallel()
		accountStore := mocks.NewMockAccountStore()
		router := newAccountRouter(t, accountStore)
		account := seedAccount(t, accountStore, "Ann", "ann@x.com", "secret1")

		rec := doJSONRequest(t, router, http.MethodPut, "/accounts/"+account.ID.String(),
			UpdateAccountRequest{Name: strPtr("Annette"), Email: strPtr("ann@x.com")})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		t.Parallel()
		accountStore := mocks.NewMockAccountStore()
		router := newAccountRouter(t, accountStore)

		rec := doJSONRequest(t, router, http.MethodPut, "/accounts/"+uuid.NewString(),
			UpdateAccountRequest{Name: strPtr("Annette")})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id returns 404", func(t *testing.T) {
		t.Parallel()
		accountStore := mocks.NewMockAccountStore()
		router := newAccountRouter(t, accountStore)

		rec := doJSONRequest(t, router, http.MethodPut, "/accounts/not-a-uuid",
			UpdateAccountRequest{Name: strPtr("Annette")})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteAccount(t *testing.T) {
	t.Parallel()

	t.Run("delete twice yields success then 404", func(t *testing.T) {
		t.Parallel()
		accountStore := mocks.NewMockAccountStore()
		router := newAccountRouter(t, accountStore)
		account := seedAccount(t, accountStore, "Ann", "ann@x.com", "secret1")

		first := doJSONRequest(t, router, http.MethodDelete, "/accounts/"+account.ID.String(), nil)
		assert.Equal(t, http.StatusOK, first.Code)

		second := doJSONRequest(t, router, http.MethodDelete, "/accounts/"+account.ID.String(), nil)
		assert.Equal(t, http.StatusNotFound, second.Code)
	})

	t.Run("unknown id returns 404 and leaves the store unchanged", func(t *testing.T) {
		t.Parallel()
		accountStore := mocks.NewMockAccountStore()
		router := newAccountRouter(t, accountStore)
		seedAccount(t, accountStore, "Ann", "ann@x.com", "secret1")

		rec := doJSONRequest(t, router, http.MethodDelete, "/accounts/"+uuid.NewString(), nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Len(t, accountStore.Accounts, 1)
	})

	t.Run("malformed id returns 404", func(t *testing.T) {
		t.Parallel()
		accountStore := mocks.NewMockAccountStore()
		router := newAccountRouter(t, accountStore)

		rec := doJSONRequest(t, router, http.MethodDelete, "/accounts/oid-12345", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRegisterThenLoginScenario(t *testing.T) {
	t.Parallel()

	accountStore := mocks.NewMockAccountStore()
	router := newAccountRouter(t, accountStore)

	register := doJSONRequest(t, router, http.MethodPost, "/accounts/register", map[string]string{
		"name":     "Ann",
		"email":    "ann@x.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, register.Code)

	var created AccountResponse
	decodeBody(t, register, &created)
	require.NotEqual(t, uuid.Nil, created.User.ID)

	login := doJSONRequest(t, router, http.MethodPost, "/accounts/login", map[string]string{
		"email":    "ann@x.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, login.Code)

	var authResp AuthResponse
	decodeBody(t, login, &authResp)
	assert.Equal(t, created.User.ID, authResp.User.ID)
	assert.True(t, strings.Count(authResp.Token, ".") == 2, "token should be a compact JWT")

	badLogin := doJSONRequest(t, router, http.MethodPost, "/accounts/login", map[string]string{
		"email":    "ann@x.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusBadRequest, badLogin.Code)
}
