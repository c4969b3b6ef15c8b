// Package messages stores the offline mailboxes: messages queued for an
// account that was not online at routing time. Order within a mailbox is
// insertion order, and a drain atomically removes and returns everything
// queued since the previous drain.
package messages

import (
	"context"

	"github.com/mbaklanov/chatline/internal/server/models"
)

type Repository interface {
	// Append queues a message at the tail of the destination's mailbox.
	Append(ctx context.Context, message *models.Message) error

	// Drain removes and returns all queued messages for username in FIFO
	// order. An empty mailbox yields an empty slice, not an error.
	Drain(ctx context.Context, username string) ([]*models.Message, error)

	// Clear discards the mailbox; used when the account is deleted.
	Clear(ctx context.Context, username string) error
}
