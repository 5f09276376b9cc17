package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/shelfmark/shelfmark-api/internal/domain"
	"github.com/shelfmark/shelfmark-api/internal/store"
)

// MockAccountStore implements store.AccountStore for testing.
// The default behavior is an in-memory map keyed by email; each method can
// be overridden through its function field.
type MockAccountStore struct {
	mu sync.Mutex

	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, account *domain.Account) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.Account, error)
	ListFn       func(ctx context.Context) ([]*domain.Account, error)
	UpdateFn     func(ctx context.Context, account *domain.Account) error
	DeleteFn     func(ctx context.Context, id uuid.UUID) error

	// Data for the default implementation
	Accounts map[string]*domain.Account
}

// Ensure MockAccountStore implements store.AccountStore
var _ store.AccountStore = (*MockAccountStore)(nil)

// NewMockAccountStore creates a new mock store with initialized defaults.
func NewMockAccountStore() *MockAccountStore {
	return &MockAccountStore{
		Accounts: make(map[string]*domain.Account),
	}
}

// Create implements the AccountStore interface.
func (m *MockAccountStore) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, account)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.Accounts[account.Email]; exists {
		return store.ErrEmailExists
	}

	m.Accounts[account.Email] = account
	return nil
}

// GetByID implements the AccountStore interface.
func (m *MockAccountStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, account := range m.Accounts {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, store.ErrAccountNotFound
}

// GetByEmail implements the AccountStore interface.
func (m *MockAccountStore) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	account, exists := m.Accounts[email]
	if !exists {
		return nil, store.ErrAccountNotFound
	}
	return account, nil
}

// List implements the AccountStore interface.
func (m *MockAccountStore) List(ctx context.Context) ([]*domain.Account, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	accounts := make([]*domain.Account, 0, len(m.Accounts))
	for _, account := range m.Accounts {
		accounts = append(accounts, account)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].CreatedAt.After(accounts[j].CreatedAt)
	})
	return accounts, nil
}

// Update implements the AccountStore interface.
func (m *MockAccountStore) Update(ctx context.Context, account *domain.Account) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, account)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for email, existing := range m.Accounts {
		if existing.ID == account.ID {
			if email != account.Email {
				if _, taken := m.Accounts[account.Email]; taken {
					return store.ErrEmailExists
				}
				delete(m.Accounts, email)
			}
			m.Accounts[account.Email] = account
			return nil
		}
	}
	return store.ErrAccountNotFound
}

// Delete implements the AccountStore interface.
func (m *MockAccountStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for email, account := range m.Accounts {
		if account.ID == id {
			delete(m.Accounts, email)
			return nil
		}
	}
	return store.ErrAccountNotFound
}
