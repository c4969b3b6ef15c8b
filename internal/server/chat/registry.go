package chat

import (
	"context"
	"sync"

	"github.com/mbaklanov/chatline/internal/logging"
	"github.com/mbaklanov/chatline/internal/server/models"
)

// Registry tracks which usernames currently have a live delivery channel.
// It owns the username→Session mapping and nothing else; account records
// stay with the Directory.
type Registry struct {
	dir    *Directory
	buffer int
	logger logging.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry(dir *Directory, buffer int, logger logging.Logger) *Registry {
	return &Registry{
		dir:      dir,
		buffer:   buffer,
		logger:   logger.With("module", "registry"),
		sessions: make(map[string]*Session),
	}
}

// Bind registers a fresh session for username and returns it. A username
// that is already online is superseded: the prior session is force-closed
// and its undelivered buffer is requeued to the mailbox, so the one-session-
// per-username invariant holds without losing messages.
func (r *Registry) Bind(ctx context.Context, username string) (*Session, error) {
	lock := r.dir.lockFor(username)
	lock.Lock()
	defer lock.Unlock()

	if _, err := r.dir.accounts.Get(ctx, username); err != nil {
		return nil, err
	}

	sess := newSession(username, r.buffer)

	r.mu.Lock()
	prev := r.sessions[username]
	r.sessions[username] = sess
	r.mu.Unlock()

	if prev != nil {
		r.requeue(ctx, prev.close(true))
		r.logger.Info(ctx, "session superseded", "username", username, "prev", prev.ID)
	}

	r.logger.Info(ctx, "session bound", "username", username, "session", sess.ID)
	return sess, nil
}

// Unbind removes the online marker if sess is still the current binding.
// It is idempotent: unbinding an already-offline username or a superseded
// session is a no-op. Undelivered buffered messages go back to the mailbox
// for the next login.
func (r *Registry) Unbind(ctx context.Context, sess *Session) {
	lock := r.dir.lockFor(sess.Username)
	lock.Lock()
	defer lock.Unlock()

	r.unbindLocked(ctx, sess, true)
}

func (r *Registry) unbindLocked(ctx context.Context, sess *Session, keepBacklog bool) {
	r.mu.Lock()
	current := r.sessions[sess.Username]
	if current != sess {
		r.mu.Unlock()
		return
	}
	delete(r.sessions, sess.Username)
	r.mu.Unlock()

	backlog := sess.close(false)
	if keepBacklog {
		r.requeue(ctx, backlog)
	}
	r.logger.Info(ctx, "session unbound", "username", sess.Username, "session", sess.ID)
}

// kickLocked force-closes whatever session is bound to username, discarding
// its backlog. Caller holds the account lock; used on account deletion.
func (r *Registry) kickLocked(ctx context.Context, username string) {
	r.mu.Lock()
	sess := r.sessions[username]
	delete(r.sessions, username)
	r.mu.Unlock()

	if sess != nil {
		sess.close(false)
		r.logger.Info(ctx, "session kicked", "username", username, "session", sess.ID)
	}
}

// requeue puts messages that were pushed to a channel but never delivered
// back into the mailbox, oldest first. Caller holds the account lock.
func (r *Registry) requeue(ctx context.Context, backlog []*models.Message) {
	for _, m := range backlog {
		if err := r.dir.messages.Append(ctx, m); err != nil {
			r.logger.Error(ctx, "requeue failed", "destination", m.Destination, "error", err.Error())
		}
	}
}

// IsOnline reports whether username currently has a live session.
func (r *Registry) IsOnline(username string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.sessions[username]
	return ok
}

// sessionOf returns the current session for username, or nil. Callers that
// act on the answer must hold the account lock.
func (r *Registry) sessionOf(username string) *Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[username]
}
