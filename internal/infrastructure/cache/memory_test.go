package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()
	defer ms.Close()

	now := time.Date(2024, 8, 15, 9, 0, 0, 0, time.UTC)
	ms.now = func() time.Time { return now }

	if err := ms.Set(ctx, "user:s1", "{}", time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := ms.Set(ctx, "forever", "x", 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if v, ok, _ := ms.Get(ctx, "user:s1"); !ok || v != "{}" {
		t.Fatalf("Get before expiry: got %q %v", v, ok)
	}

	now = now.Add(2 * time.Minute)
	if _, ok, _ := ms.Get(ctx, "user:s1"); ok {
		t.Fatalf("Get after expiry: expected miss")
	}
	if _, ok, _ := ms.Get(ctx, "forever"); !ok {
		t.Fatalf("zero expiration should never expire")
	}

	ms.evict()
	ms.mu.RLock()
	n := len(ms.items)
	ms.mu.RUnlock()
	if n != 1 {
		t.Fatalf("items after evict: got %d want 1", n)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()
	defer ms.Close()

	_ = ms.Set(ctx, "k", "v", time.Hour)
	if err := ms.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := ms.Get(ctx, "k"); ok {
		t.Fatalf("expected key to be gone")
	}
	if err := ms.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
