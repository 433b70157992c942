package recommend

import (
	"context"
	"testing"
	"time"

	"backend-fitadvisor/internal/store"
	"backend-fitadvisor/internal/stream"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	return store.New(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestAppendAndHistory(t *testing.T) {
	svc := NewService(newTestStore(t), nil)
	ctx := context.Background()

	if n := svc.HistoryLen(ctx, "a@b.com"); n != 0 {
		t.Fatalf("expected empty history, got %d", n)
	}

	first, err := svc.Append(ctx, "a@b.com", "eat more protein", "fast", "muscle_gain")
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if first.ID == "" || first.CreatedAt.IsZero() {
		t.Fatalf("entry missing id or timestamp: %+v", first)
	}

	second, err := svc.Append(ctx, "a@b.com", "add a rest day", "", "general")
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	entries, err := svc.History(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != second.ID {
		t.Fatalf("expected newest entry first")
	}
	if svc.HistoryLen(ctx, "a@b.com") != 2 {
		t.Fatalf("history len mismatch")
	}
}

func TestAppendEmptyText(t *testing.T) {
	svc := NewService(newTestStore(t), nil)
	if _, err := svc.Append(context.Background(), "a@b.com", "", "", ""); err == nil {
		t.Fatalf("expected error for empty text")
	}
}

func TestAppendBroadcasts(t *testing.T) {
	hub := stream.NewHub(nil)
	client := hub.Register("a@b.com")
	defer hub.Unregister(client)

	svc := NewService(newTestStore(t), hub)
	if _, err := svc.Append(context.Background(), "a@b.com", "hydrate", "", ""); err != nil {
		t.Fatalf("append: %v", err)
	}

	select {
	case msg := <-client.Send:
		if len(msg) == 0 {
			t.Fatalf("empty broadcast payload")
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatalf("timeout waiting for broadcast")
	}
}

func TestHistoryMalformedDegrades(t *testing.T) {
	st := newTestStore(t)
	svc := NewService(st, nil)
	ctx := context.Background()

	if err := st.SetJSON(ctx, store.RecommendationHistoryKey("a@b.com"), "not-a-list"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	entries, err := svc.History(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("history should not fail: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty history for malformed value")
	}
}
