package chat

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mbaklanov/chatline/internal/common"
	"github.com/mbaklanov/chatline/internal/logging"
	"github.com/mbaklanov/chatline/internal/server/models"
)

// Outcome reports where a routed message ended up.
type Outcome int

const (
	// DeliveredLive: pushed directly onto the destination's channel.
	DeliveredLive Outcome = iota + 1
	// QueuedOffline: appended to the destination's mailbox.
	QueuedOffline
)

func (o Outcome) String() string {
	switch o {
	case DeliveredLive:
		return "delivered_live"
	case QueuedOffline:
		return "queued_offline"
	default:
		return "unknown"
	}
}

// Router decides, per message, between immediate delivery and mailbox
// enqueue.
type Router struct {
	dir    *Directory
	reg    *Registry
	logger logging.Logger
}

func NewRouter(dir *Directory, reg *Registry, logger logging.Logger) *Router {
	return &Router{dir: dir, reg: reg, logger: logger.With("module", "router")}
}

// Route validates the destination, builds the message, and delivers it:
// live when the destination is online, to the mailbox otherwise. The whole
// check-and-act runs under the destination's account lock, so it cannot
// interleave with a concurrent login drain: the message ends up in exactly
// one place. An unknown or deleted destination yields
// common.ErrUnknownDestination.
func (rt *Router) Route(ctx context.Context, source, destination, text string) (Outcome, error) {
	lock := rt.dir.lockFor(destination)
	lock.Lock()
	defer lock.Unlock()

	exists, err := rt.dir.Exists(ctx, destination)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, common.ErrUnknownDestination
	}

	m := &models.Message{
		ID:          uuid.NewString(),
		Source:      source,
		Destination: destination,
		Text:        text,
		SentAt:      time.Now(),
	}

	if sess := rt.reg.sessionOf(destination); sess != nil {
		if err := sess.push(m); err == nil {
			rt.logger.Debug(ctx, "delivered live", "src", source, "dst", destination)
			return DeliveredLive, nil
		}
		// Dead or saturated channel: drop the binding, requeue whatever it
		// still buffered, and fall through to the mailbox. Never surfaced
		// to the sender.
		rt.reg.unbindLocked(ctx, sess, true)
		rt.logger.Warn(ctx, "channel closed during delivery", "dst", destination, "session", sess.ID)
	}

	if err := rt.dir.messages.Append(ctx, m); err != nil {
		return 0, err
	}
	rt.logger.Debug(ctx, "queued offline", "src", source, "dst", destination)
	return QueuedOffline, nil
}
