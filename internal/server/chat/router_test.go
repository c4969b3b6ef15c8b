package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/mbaklanov/chatline/internal/common"
	"github.com/mbaklanov/chatline/internal/logging"
)

func newTestRouter(t *testing.T) (*Directory, *Registry, *Router) {
	t.Helper()
	d, r := newTestRegistry(t)
	return d, r, NewRouter(d, r, logging.Nop{})
}

func TestRouterQueuedOffline(t *testing.T) {
	ctx := context.Background()
	d, _, rt := newTestRouter(t)
	mustCreate(t, d, "alice", "pw")
	mustCreate(t, d, "bob", "pw")

	outcome, err := rt.Route(ctx, "bob", "alice", "hello")
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if outcome != QueuedOffline {
		t.Errorf("expected QueuedOffline, got %v", outcome)
	}

	queued, err := d.DrainMailbox(ctx, "alice")
	if err != nil {
		t.Fatalf("DrainMailbox: %v", err)
	}
	if len(queued) != 1 {
		t.Fatalf("expected 1 queued message, got %d", len(queued))
	}
	if queued[0].Source != "bob" || queued[0].Text != "hello" {
		t.Errorf("unexpected message: %+v", queued[0])
	}
}

func TestRouterDeliveredLive(t *testing.T) {
	ctx := context.Background()
	d, r, rt := newTestRouter(t)
	mustCreate(t, d, "alice", "pw")
	mustCreate(t, d, "bob", "pw")

	sess, err := r.Bind(ctx, "alice")
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}

	outcome, err := rt.Route(ctx, "bob", "alice", "hi there")
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if outcome != DeliveredLive {
		t.Errorf("expected DeliveredLive, got %v", outcome)
	}

	m, ok := sess.take()
	if !ok {
		t.Fatal("expected message in the session queue")
	}
	if m.Source != "bob" || m.Text != "hi there" {
		t.Errorf("unexpected message: %+v", m)
	}

	// Live delivery must not also land in the mailbox.
	queued, err := d.DrainMailbox(ctx, "alice")
	if err != nil {
		t.Fatalf("DrainMailbox: %v", err)
	}
	if len(queued) != 0 {
		t.Errorf("expected empty mailbox after live delivery, got %d", len(queued))
	}
}

func TestRouterUnknownDestination(t *testing.T) {
	ctx := context.Background()
	d, _, rt := newTestRouter(t)
	mustCreate(t, d, "bob", "pw")

	if _, err := rt.Route(ctx, "bob", "ghost", "anyone?"); !errors.Is(err, common.ErrUnknownDestination) {
		t.Errorf("expected ErrUnknownDestination, got %v", err)
	}

	mustCreate(t, d, "alice", "pw")
	if err := d.DeleteAccount(ctx, "alice"); err != nil {
		t.Fatalf("DeleteAccount: %v", err)
	}
	if _, err := rt.Route(ctx, "bob", "alice", "too late"); !errors.Is(err, common.ErrUnknownDestination) {
		t.Errorf("deleted destination: expected ErrUnknownDestination, got %v", err)
	}
}

func TestRouterDeadChannelFallsBackToMailbox(t *testing.T) {
	ctx := context.Background()
	d, r, rt := newTestRouter(t)
	mustCreate(t, d, "alice", "pw")
	mustCreate(t, d, "bob", "pw")

	sess, err := r.Bind(ctx, "alice")
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	// Closed behind the registry's back, as if the consumer died.
	sess.close(false)

	outcome, err := rt.Route(ctx, "bob", "alice", "still there?")
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if outcome != QueuedOffline {
		t.Errorf("expected QueuedOffline fallback, got %v", outcome)
	}
	if r.IsOnline("alice") {
		t.Error("expected dead session evicted from the registry")
	}

	queued, err := d.DrainMailbox(ctx, "alice")
	if err != nil {
		t.Fatalf("DrainMailbox: %v", err)
	}
	if len(queued) != 1 || queued[0].Text != "still there?" {
		t.Fatalf("expected message queued in mailbox, got %v", queued)
	}
}

func TestRouterSaturatedBufferFallsBackToMailbox(t *testing.T) {
	ctx := context.Background()
	d := newTestDirectory()
	r := NewRegistry(d, 1, logging.Nop{})
	rt := NewRouter(d, r, logging.Nop{})
	mustCreate(t, d, "alice", "pw")
	mustCreate(t, d, "bob", "pw")

	if _, err := r.Bind(ctx, "alice"); err != nil {
		t.Fatalf("Bind: %v", err)
	}

	if outcome, err := rt.Route(ctx, "bob", "alice", "first"); err != nil || outcome != DeliveredLive {
		t.Fatalf("first Route: outcome=%v err=%v", outcome, err)
	}
	// Buffer of one is now full; the second message must not be dropped.
	outcome, err := rt.Route(ctx, "bob", "alice", "second")
	if err != nil {
		t.Fatalf("second Route: %v", err)
	}
	if outcome != QueuedOffline {
		t.Errorf("expected QueuedOffline on full buffer, got %v", outcome)
	}

	queued, err := d.DrainMailbox(ctx, "alice")
	if err != nil {
		t.Fatalf("DrainMailbox: %v", err)
	}
	// Eviction requeued the buffered "first" and the router queued "second".
	if len(queued) != 2 || queued[0].Text != "first" || queued[1].Text != "second" {
		t.Fatalf("expected [first second] in mailbox, got %v", queued)
	}
}
