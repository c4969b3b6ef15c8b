// Package repomanager wires the concrete repository set for a deployment:
// in-memory (the default) or Postgres when a DSN is configured.
package repomanager

import (
	"context"

	"github.com/mbaklanov/chatline/internal/server/repositories/accounts"
	"github.com/mbaklanov/chatline/internal/server/repositories/messages"
	"github.com/mbaklanov/chatline/internal/server/repositories/refreshtokens"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Close() error
	Accounts() accounts.Repository
	Messages() messages.Repository
	RefreshTokens() refreshtokens.Repository
}
