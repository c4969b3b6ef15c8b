// Package chat implements the account/session/routing core: the account
// directory with per-account mailboxes, the session registry, the message
// router deciding live-delivery vs mailbox-enqueue, and the delivery stream
// that pushes queued and live messages to a connected client.
//
// Concurrency discipline: every per-account mutation (account creation and
// deletion, mailbox enqueue and drain, session bind and unbind, and the
// router's online-check-and-deliver step) runs under that account's mutex
// (Directory.lockFor). That single rule makes the router's check-and-act
// atomic against a concurrent login drain, so a message lands in exactly one
// of {live channel, mailbox drain}.
package chat

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/mbaklanov/chatline/internal/common"
	"github.com/mbaklanov/chatline/internal/cryptox"
	"github.com/mbaklanov/chatline/internal/logging"
	"github.com/mbaklanov/chatline/internal/server/models"
	"github.com/mbaklanov/chatline/internal/server/repositories/accounts"
	"github.com/mbaklanov/chatline/internal/server/repositories/messages"
)

// Directory is the authoritative username→account mapping. It owns the
// account records and their mailboxes; it knows nothing about transports.
type Directory struct {
	accounts accounts.Repository
	messages messages.Repository
	logger   logging.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewDirectory(accountRepo accounts.Repository, messageRepo messages.Repository, logger logging.Logger) *Directory {
	return &Directory{
		accounts: accountRepo,
		messages: messageRepo,
		logger:   logger.With("module", "directory"),
		locks:    make(map[string]*sync.Mutex),
	}
}

// lockFor returns the mutex serializing all per-account operations for
// username. Entries survive account deletion so an in-flight operation and
// a later re-creation always contend on the same lock.
func (d *Directory) lockFor(username string) *sync.Mutex {
	d.mu.Lock()
	defer d.mu.Unlock()

	lock, ok := d.locks[username]
	if !ok {
		lock = &sync.Mutex{}
		d.locks[username] = lock
	}
	return lock
}

// CreateAccount atomically checks-and-inserts a new account with an empty
// mailbox. Concurrent calls with the same username resolve deterministically:
// exactly one succeeds, the rest get common.ErrUsernameTaken.
func (d *Directory) CreateAccount(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return common.ErrValidation
	}

	lock := d.lockFor(username)
	lock.Lock()
	defer lock.Unlock()

	salt, err := cryptox.MakeSalt()
	if err != nil {
		return err
	}

	account := &models.Account{
		Username: username,
		Salt:     salt,
		Verifier: cryptox.DeriveVerifier([]byte(password), salt),
	}
	if err := d.accounts.Create(ctx, account); err != nil {
		return err
	}

	d.logger.Info(ctx, "account created", "username", username)
	return nil
}

// Authenticate verifies a username/password pair without mutating state.
// The two error kinds let the caller distinguish retry from reject.
func (d *Directory) Authenticate(ctx context.Context, username, password string) error {
	account, err := d.accounts.Get(ctx, username)
	if err != nil {
		return err
	}
	if !cryptox.CheckVerifier(account.Verifier, []byte(password), account.Salt) {
		return common.ErrWrongCredential
	}
	return nil
}

// Exists reports whether username currently has an account. Callers that
// need the answer to stay true for longer than the call must hold the
// account lock.
func (d *Directory) Exists(ctx context.Context, username string) (bool, error) {
	_, err := d.accounts.Get(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrUnknownUser) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// DeleteAccount removes the account and discards its mailbox. Unbinding any
// live session is the Service's job; it calls deleteLocked under the same
// account lock.
func (d *Directory) DeleteAccount(ctx context.Context, username string) error {
	lock := d.lockFor(username)
	lock.Lock()
	defer lock.Unlock()

	return d.deleteLocked(ctx, username)
}

func (d *Directory) deleteLocked(ctx context.Context, username string) error {
	if err := d.accounts.Delete(ctx, username); err != nil {
		return err
	}
	if err := d.messages.Clear(ctx, username); err != nil {
		return err
	}

	d.logger.Info(ctx, "account deleted", "username", username)
	return nil
}

// ListUsernames returns a point-in-time snapshot of all usernames in
// insertion order; never a half-mutated view.
func (d *Directory) ListUsernames(ctx context.Context) ([]string, error) {
	return d.accounts.List(ctx)
}

// Enqueue appends a message to the destination's mailbox. Used by the
// router when the recipient is offline.
func (d *Directory) Enqueue(ctx context.Context, message *models.Message) error {
	lock := d.lockFor(message.Destination)
	lock.Lock()
	defer lock.Unlock()

	return d.enqueueLocked(ctx, message)
}

func (d *Directory) enqueueLocked(ctx context.Context, message *models.Message) error {
	if _, err := d.accounts.Get(ctx, message.Destination); err != nil {
		return err
	}
	return d.messages.Append(ctx, message)
}

// DrainMailbox atomically removes and returns all queued messages for
// username in FIFO order. Each call returns only messages enqueued since
// the previous drain.
func (d *Directory) DrainMailbox(ctx context.Context, username string) ([]*models.Message, error) {
	lock := d.lockFor(username)
	lock.Lock()
	defer lock.Unlock()

	return d.messages.Drain(ctx, username)
}
