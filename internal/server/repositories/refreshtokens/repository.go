// Package refreshtokens persists opaque refresh tokens issued at login.
package refreshtokens

import (
	"context"
	"time"

	"github.com/mbaklanov/chatline/internal/server/models"
)

type Repository interface {
	// Create stores a token for username with the given validity window.
	Create(ctx context.Context, username, token string, validity time.Duration) error

	// Find returns the stored token record, or common.ErrInvalidToken.
	// Expiry is the caller's concern; Find returns expired records as-is.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete removes a single token. Unknown tokens are a no-op.
	Delete(ctx context.Context, token string) error

	// DeleteForUser removes every token issued to username; used on account
	// deletion.
	DeleteForUser(ctx context.Context, username string) error
}
