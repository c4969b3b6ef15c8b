package chat

import (
	"context"

	"github.com/mbaklanov/chatline/internal/common"
	"github.com/mbaklanov/chatline/internal/logging"
	"github.com/mbaklanov/chatline/internal/server/models"
)

// Sink is the transport-facing half of a delivery stream: an opaque
// per-session output supporting "push one message". Send errors mean the
// client is gone.
type Sink interface {
	Send(m *models.Message) error
}

// Stream is the long-lived per-session process that first drains the
// mailbox and then forwards live-routed messages to the sink until the
// session ends.
//
// Every send runs under the account lock, so a supersede or unbind can only
// happen between sends, never while a message is in flight. A superseded
// session therefore has no in-flight message to lose: everything not yet
// sent is either still in its pending queue (captured and requeued by
// close) or back in the mailbox.
type Stream struct {
	dir    *Directory
	reg    *Registry
	sess   *Session
	sink   Sink
	logger logging.Logger
}

func NewStream(dir *Directory, reg *Registry, sess *Session, sink Sink, logger logging.Logger) *Stream {
	return &Stream{
		dir:    dir,
		reg:    reg,
		sess:   sess,
		sink:   sink,
		logger: logger.With("module", "stream", "username", sess.Username, "session", sess.ID),
	}
}

// Run blocks until the session ends. Exit paths:
//   - ctx canceled (client disconnected): returns ctx.Err()
//   - sink.Send fails (channel closed): returns common.ErrChannelClosed
//   - session superseded by a newer login: returns common.ErrSessionSuperseded
//   - session unbound any other way: returns nil
//
// On every exit the session is unbound and its undelivered pending queue
// goes back to the mailbox; mailbox content stays queued for the next
// login, never discarded.
func (s *Stream) Run(ctx context.Context) error {
	// The deferred unbind must run even when ctx is already canceled.
	defer s.reg.Unbind(context.WithoutCancel(ctx), s.sess)

	if err := s.replayMailbox(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.sess.Done():
			if s.sess.Superseded() {
				return common.ErrSessionSuperseded
			}
			return nil
		case <-s.sess.Ready():
			if err := s.deliverPending(ctx); err != nil {
				return err
			}
		}
	}
}

// replayMailbox sends everything queued while the account was offline, in
// FIFO order, before any live delivery. The drain and every send happen in
// one critical section on the account lock: a concurrent login either
// supersedes this session before the drain (and drains the mailbox itself)
// or finds the mailbox already replayed. A send failure puts the failed
// message and everything drained after it back, in order.
func (s *Stream) replayMailbox(ctx context.Context) error {
	lock := s.dir.lockFor(s.sess.Username)
	lock.Lock()
	defer lock.Unlock()

	if s.sess.Closed() {
		return nil
	}

	queued, err := s.dir.messages.Drain(ctx, s.sess.Username)
	if err != nil {
		return err
	}
	for i, m := range queued {
		if err := s.sink.Send(m); err != nil {
			s.logger.Warn(ctx, "send failed during replay, requeueing", "error", err.Error(), "requeued", len(queued)-i)
			s.requeueLocked(ctx, queued[i:])
			return common.ErrChannelClosed
		}
	}
	s.logger.Info(ctx, "mailbox drained", "count", len(queued))
	return nil
}

// deliverPending forwards queued live messages one at a time, taking the
// account lock per message so the session cannot be superseded mid-send. A
// send failure requeues the failed message and, atomically with it, the
// rest of the pending queue, keeping mailbox order intact.
func (s *Stream) deliverPending(ctx context.Context) error {
	lock := s.dir.lockFor(s.sess.Username)
	for {
		lock.Lock()
		m, ok := s.sess.take()
		if !ok {
			lock.Unlock()
			return nil
		}
		if err := s.sink.Send(m); err != nil {
			s.logger.Warn(ctx, "send failed, requeueing", "error", err.Error())
			s.requeueLocked(ctx, append([]*models.Message{m}, s.sess.takeAll()...))
			lock.Unlock()
			return common.ErrChannelClosed
		}
		lock.Unlock()
	}
}

// requeueLocked appends messages back to the mailbox, oldest first. Caller
// holds the account lock.
func (s *Stream) requeueLocked(ctx context.Context, backlog []*models.Message) {
	for _, m := range backlog {
		if err := s.dir.messages.Append(context.WithoutCancel(ctx), m); err != nil {
			s.logger.Error(ctx, "requeue failed", "error", err.Error())
		}
	}
}
