package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"career-connector/internal/domain/job"
)

func newTestClient(h *Hub) *Client {
	return &Client{id: "test", hub: h, send: make(chan []byte, 1)}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met before deadline")
}

func TestHub_BroadcastReachesClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub(nil)
	go h.Run(ctx)

	a, b := newTestClient(h), newTestClient(h)
	h.Register(a)
	h.Register(b)
	waitFor(t, func() bool { return h.ClientCount() == 2 })

	h.Broadcast([]byte("hello"))
	for _, c := range []*Client{a, b} {
		select {
		case msg := <-c.send:
			if string(msg) != "hello" {
				t.Fatalf("unexpected message %q", msg)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("client did not receive broadcast")
		}
	}

	h.Unregister(a)
	waitFor(t, func() bool { return h.ClientCount() == 1 })
	if _, ok := <-a.send; ok {
		t.Fatalf("expected send channel closed after unregister")
	}
}

func TestHub_DropsSlowClient(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub(nil)
	go h.Run(ctx)

	slow := newTestClient(h)
	slow.send <- []byte("backlog")
	h.Register(slow)
	waitFor(t, func() bool { return h.ClientCount() == 1 })

	h.Broadcast([]byte("next"))
	waitFor(t, func() bool { return h.ClientCount() == 0 })
}

func TestHub_RunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := NewHub(nil)
	done := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(done)
	}()

	c := newTestClient(h)
	h.Register(c)
	waitFor(t, func() bool { return h.ClientCount() == 1 })

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
	if h.ClientCount() != 0 {
		t.Fatalf("expected clients released on shutdown")
	}
}

func TestJobNotifier_PublishesEvent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub(nil)
	go h.Run(ctx)
	c := newTestClient(h)
	h.Register(c)
	waitFor(t, func() bool { return h.ClientCount() == 1 })

	n := NewJobNotifier(h)
	n.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	n.NotifyJobPosted(job.Posting{ID: 7, Title: "Go Dev", Location: "Remote", Skills: "go"})

	select {
	case msg := <-c.send:
		var evt JobPostedEvent
		if err := json.Unmarshal(msg, &evt); err != nil {
			t.Fatalf("invalid event json: %v", err)
		}
		if evt.Type != EventJobPosted || evt.JobID != 7 || evt.Title != "Go Dev" || evt.Timestamp != "2026-03-01T12:00:00Z" {
			t.Fatalf("unexpected event: %+v", evt)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no event received")
	}
}

func TestJobNotifier_NilHub(t *testing.T) {
	NewJobNotifier(nil).NotifyJobPosted(job.Posting{ID: 1})
}
