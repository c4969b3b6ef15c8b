package messages

import (
	"context"
	"sync"

	"github.com/mbaklanov/chatline/internal/server/models"
)

type MemoryRepository struct {
	mu        sync.Mutex
	mailboxes map[string][]*models.Message
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{mailboxes: make(map[string][]*models.Message)}
}

func (r *MemoryRepository) Append(ctx context.Context, message *models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *message
	r.mailboxes[message.Destination] = append(r.mailboxes[message.Destination], &stored)
	return nil
}

func (r *MemoryRepository) Drain(ctx context.Context, username string) ([]*models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	queued := r.mailboxes[username]
	delete(r.mailboxes, username)
	if queued == nil {
		queued = []*models.Message{}
	}
	return queued, nil
}

func (r *MemoryRepository) Clear(ctx context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.mailboxes, username)
	return nil
}
