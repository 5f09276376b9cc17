package domain

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Account validation errors
var (
	ErrEmptyAccountID      = errors.New("account ID cannot be empty")
	ErrEmptyName           = errors.New("name cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// Password length bounds. The upper bound is bcrypt's practical input limit.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

// emailPattern matches the basic local@domain.tld shape. It is intentionally
// loose; the store's unique constraint is the real gatekeeper for identity.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Account represents a registered user of the catalog.
// It contains display information and authentication details.
type Account struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext, held only between request parsing and hashing
	HashedPassword string    `json:"-"` // Never expose password material in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewAccount creates a new Account with the given name, email and password.
// It generates a new UUID for the account ID and sets the timestamps.
// Returns an error if validation fails.
//
// NOTE: This function only sets up the account structure with the plaintext
// password. The caller is responsible for hashing it before storage.
func NewAccount(name, email, password string) (*Account, error) {
	account := &Account{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Password:  password,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

// Validate checks if the Account has valid data.
// Returns an error if any field fails validation.
func (a *Account) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyAccountID
	}

	if a.Name == "" {
		return ErrEmptyName
	}

	if a.Email == "" {
		return ErrEmptyEmail
	}

	if !ValidEmail(a.Email) {
		return ErrInvalidEmail
	}

	if a.Password != "" {
		// A plaintext password is present during registration or a
		// password change; enforce length bounds on it.
		if len(a.Password) < MinPasswordLength {
			return ErrPasswordTooShort
		}
		if len(a.Password) > MaxPasswordLength {
			return ErrPasswordTooLong
		}
	} else if a.HashedPassword == "" {
		// Accounts loaded from the store carry only the hash.
		return ErrEmptyPassword
	}

	return nil
}

// ValidEmail reports whether the email has a basic local@domain.tld shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
