package repomanager

import (
	"context"

	"github.com/mbaklanov/chatline/internal/server/repositories/accounts"
	"github.com/mbaklanov/chatline/internal/server/repositories/messages"
	"github.com/mbaklanov/chatline/internal/server/repositories/refreshtokens"
)

type InMemoryRepositoryManager struct {
	accounts      *accounts.MemoryRepository
	messages      *messages.MemoryRepository
	refreshTokens *refreshtokens.MemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		accounts:      accounts.NewMemoryRepository(),
		messages:      messages.NewMemoryRepository(),
		refreshTokens: refreshtokens.NewMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error { return nil }

func (m *InMemoryRepositoryManager) Close() error { return nil }

func (m *InMemoryRepositoryManager) Accounts() accounts.Repository { return m.accounts }

func (m *InMemoryRepositoryManager) Messages() messages.Repository { return m.messages }

func (m *InMemoryRepositoryManager) RefreshTokens() refreshtokens.Repository {
	return m.refreshTokens
}
