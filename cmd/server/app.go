package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/shelfmark/shelfmark-api/internal/api"
	"github.com/shelfmark/shelfmark-api/internal/api/middleware"
	"github.com/shelfmark/shelfmark-api/internal/config"
	"github.com/shelfmark/shelfmark-api/internal/platform/postgres"
	"github.com/shelfmark/shelfmark-api/internal/service/auth"
	"github.com/shelfmark/shelfmark-api/internal/store"
)

// application holds the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (interfaces, so tests can substitute)
	accountStore store.AccountStore
	bookStore    store.BookStore

	// Services
	jwtService     auth.JWTService
	passwordHasher auth.PasswordHasher
}

// newApplication wires stores and services on top of an established
// database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	return &application{
		config:         cfg,
		logger:         logger,
		db:             db,
		accountStore:   postgres.NewPostgresAccountStore(db, logger),
		bookStore:      postgres.NewPostgresBookStore(db, logger),
		jwtService:     jwtService,
		passwordHasher: auth.NewBcryptHasher(),
	}, nil
}

// router builds the HTTP routing tree. When auth.require_token is enabled,
// the mutating routes sit behind the JWT middleware; read and credential
// routes are always open.
func (app *application) router() http.Handler {
	accountHandler := api.NewAccountHandler(app.accountStore, app.jwtService, app.passwordHasher)
	bookHandler := api.NewBookHandler(app.bookStore)
	healthHandler := api.NewHealthHandler(app.db)
	authMiddleware := middleware.NewAuthMiddleware(app.jwtService)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.TraceMiddleware)

	r.Get("/healthz", healthHandler.Check)

	r.Post("/accounts/register", accountHandler.Register)
	r.Post("/accounts/login", accountHandler.Login)
	r.Get("/accounts", accountHandler.List)
	r.Get("/books", bookHandler.List)

	mutating := func(r chi.Router) {
		if app.config.Auth.RequireToken {
			r.Use(authMiddleware.Authenticate)
		}
		r.Put("/accounts/{id}", accountHandler.Update)
		r.Delete("/accounts/{id}", accountHandler.Delete)
		r.Post("/books", bookHandler.Add)
		r.Delete("/books/{id}", bookHandler.Delete)
	}
	r.Group(mutating)

	return r
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
