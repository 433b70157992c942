package store

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	return New(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestSetGetJSON(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	type rec struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}

	if err := st.SetJSON(ctx, "user:me@example.com", rec{Name: "Me", Age: 30}); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got rec
	if err := st.GetJSON(ctx, "user:me@example.com", &got); err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Me" || got.Age != 30 {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestGetJSONMissing(t *testing.T) {
	st := newTestStore(t)

	var dest map[string]any
	err := st.GetJSON(context.Background(), "nope", &dest)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetJSONMalformed(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	if err := st.redis.Set(ctx, "broken", "{not json", 0).Err(); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var dest map[string]any
	if err := st.GetJSON(ctx, "broken", &dest); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestScanKeys(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	for _, key := range []string{
		ExerciseLogKey("a@b.com", "2025-01-01"),
		ExerciseLogKey("a@b.com", "2025-01-02"),
		ExerciseLogKey("other@b.com", "2025-01-01"),
		UserProfileKey("a@b.com"),
	} {
		if err := st.SetJSON(ctx, key, []string{"squats"}); err != nil {
			t.Fatalf("seed %s: %v", key, err)
		}
	}

	keys, err := st.ScanKeys(ctx, ExerciseLogPrefix("a@b.com"))
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(keys) != 2 {
		t.Fatalf("expected 2 keys, got %d: %v", len(keys), keys)
	}
}

func TestDelete(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	if err := st.SetJSON(ctx, "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := st.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	var dest string
	if err := st.GetJSON(ctx, "k", &dest); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestExerciseLogDate(t *testing.T) {
	key := ExerciseLogKey("a@b.com", "2025-06-15")
	if got := ExerciseLogDate("a@b.com", key); got != "2025-06-15" {
		t.Fatalf("unexpected date: %q", got)
	}
	if got := ExerciseLogDate("a@b.com", "unrelated:key"); got != "" {
		t.Fatalf("expected empty date, got %q", got)
	}
}
