// Package accounts stores account records. The directory serializes all
// mutations per username, so implementations only need to guarantee
// uniqueness on create.
package accounts

import (
	"context"

	"github.com/mbaklanov/chatline/internal/server/models"
)

type Repository interface {
	// Create inserts a new account. Returns common.ErrUsernameTaken if the
	// username already exists.
	Create(ctx context.Context, account *models.Account) error

	// Get returns the account for username, or common.ErrUnknownUser.
	Get(ctx context.Context, username string) (*models.Account, error)

	// Delete removes the account, or returns common.ErrUnknownUser.
	Delete(ctx context.Context, username string) error

	// List returns all usernames in insertion order.
	List(ctx context.Context) ([]string, error)
}
