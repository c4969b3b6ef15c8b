package chat

import (
	"sync"

	"github.com/google/uuid"
	"github.com/mbaklanov/chatline/internal/common"
	"github.com/mbaklanov/chatline/internal/server/models"
)

// Session represents one authenticated, connected client: a username bound
// to a bounded live-delivery queue. At most one session per username is live
// at a time; a newer login supersedes the older session.
//
// The queue is a mutex-guarded slice rather than a channel so that close can
// atomically capture everything not yet handed to the stream. Every message
// is in exactly one place at any time: the pending queue, the mailbox, or
// delivered.
type Session struct {
	ID       string
	Username string

	buffer int
	ready  chan struct{}
	done   chan struct{}

	mu         sync.Mutex
	pending    []*models.Message
	closed     bool
	superseded bool
}

func newSession(username string, buffer int) *Session {
	return &Session{
		ID:       uuid.NewString(),
		Username: username,
		buffer:   buffer,
		ready:    make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

// push queues a message for live delivery and wakes the stream. It fails
// with common.ErrChannelClosed when the session is closed or its queue is
// full; the caller falls back to the mailbox in both cases.
func (s *Session) push(m *models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || len(s.pending) >= s.buffer {
		return common.ErrChannelClosed
	}
	s.pending = append(s.pending, m)
	select {
	case s.ready <- struct{}{}:
	default:
	}
	return nil
}

// take pops the oldest pending message. ok is false when the queue is empty
// or the session is closed; a closed session never hands out messages, they
// belong to whoever closed it.
func (s *Session) take() (m *models.Message, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || len(s.pending) == 0 {
		return nil, false
	}
	m = s.pending[0]
	s.pending = s.pending[1:]
	return m, true
}

// takeAll removes and returns every pending message in FIFO order.
func (s *Session) takeAll() []*models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := s.pending
	s.pending = nil
	return pending
}

// close marks the session dead and returns any messages still pending, in
// FIFO order, so the caller can requeue them. Closing twice returns nil the
// second time.
func (s *Session) close(superseded bool) []*models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.superseded = superseded
	close(s.done)

	pending := s.pending
	s.pending = nil
	return pending
}

// Ready signals that the pending queue may be non-empty. Wakeups coalesce;
// the consumer drains the whole queue per wakeup.
func (s *Session) Ready() <-chan struct{} { return s.ready }

// Done is closed when the session is unbound, superseded, or its account is
// deleted.
func (s *Session) Done() <-chan struct{} { return s.done }

// Closed reports whether the session has been closed.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Superseded reports whether the session was closed because a newer login
// replaced it.
func (s *Session) Superseded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.superseded
}
