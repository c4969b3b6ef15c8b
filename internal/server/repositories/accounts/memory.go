package accounts

import (
	"context"
	"slices"
	"sync"

	"github.com/mbaklanov/chatline/internal/common"
	"github.com/mbaklanov/chatline/internal/server/models"
)

// MemoryRepository keeps accounts in process memory. It is the default
// backend and the one used in tests.
type MemoryRepository struct {
	mu       sync.RWMutex
	accounts map[string]*models.Account
	order    []string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{accounts: make(map[string]*models.Account)}
}

func (r *MemoryRepository) Create(ctx context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.Username]; ok {
		return common.ErrUsernameTaken
	}

	stored := *account
	r.accounts[account.Username] = &stored
	r.order = append(r.order, account.Username)
	return nil
}

func (r *MemoryRepository) Get(ctx context.Context, username string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[username]
	if !ok {
		return nil, common.ErrUnknownUser
	}
	copied := *account
	return &copied, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[username]; !ok {
		return common.ErrUnknownUser
	}
	delete(r.accounts, username)
	r.order = slices.DeleteFunc(r.order, func(u string) bool { return u == username })
	return nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order), nil
}
