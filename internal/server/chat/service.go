package chat

import (
	"context"

	"github.com/mbaklanov/chatline/internal/logging"
)

// Service is the session-handler-facing façade over the directory,
// registry, and router. Transport handlers call it with already-decoded
// request values and get sentinel errors back.
type Service struct {
	dir    *Directory
	reg    *Registry
	router *Router
	logger logging.Logger
}

func NewService(dir *Directory, reg *Registry, router *Router, logger logging.Logger) *Service {
	return &Service{
		dir:    dir,
		reg:    reg,
		router: router,
		logger: logger.With("module", "chat_service"),
	}
}

func (s *Service) ListUsernames(ctx context.Context) ([]string, error) {
	return s.dir.ListUsernames(ctx)
}

// Send routes one message from source to destination.
func (s *Service) Send(ctx context.Context, source, destination, text string) (Outcome, error) {
	return s.router.Route(ctx, source, destination, text)
}

// DeleteAccount removes the account, its mailbox, and any live session, all
// under the account lock so no dangling session can point at a deleted
// account. In-flight routes to the username then resolve to
// common.ErrUnknownDestination.
func (s *Service) DeleteAccount(ctx context.Context, username string) error {
	lock := s.dir.lockFor(username)
	lock.Lock()
	defer lock.Unlock()

	s.reg.kickLocked(ctx, username)
	return s.dir.deleteLocked(ctx, username)
}

// OpenStream binds a session for username (superseding any prior one) and
// runs its delivery stream against sink until the session ends. It blocks
// for the lifetime of the stream and always releases the binding on return.
func (s *Service) OpenStream(ctx context.Context, username string, sink Sink) error {
	sess, err := s.reg.Bind(ctx, username)
	if err != nil {
		return err
	}
	return NewStream(s.dir, s.reg, sess, sink, s.logger).Run(ctx)
}
