package otpstore

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStore_ConsumeIsSingleUse(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Set(ctx, "reset:+85512000001", "token-1", time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := store.Consume(ctx, "reset:+85512000001")
	if err != nil {
		t.Fatalf("Consume: %v", err)
	}
	if got != "token-1" {
		t.Errorf("got %q, want token-1", got)
	}

	got, err = store.Consume(ctx, "reset:+85512000001")
	if err != nil {
		t.Fatalf("second Consume: %v", err)
	}
	if got != "" {
		t.Errorf("second consume returned %q, want empty", got)
	}
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Set(ctx, "k", "v", -time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if got, _ := store.Consume(ctx, "k"); got != "" {
		t.Errorf("expired key consumed: %q", got)
	}
}

func TestMemoryStore_PeekDoesNotConsume(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok, err := store.Peek(ctx, "k")
	if err != nil || !ok || got != "v" {
		t.Fatalf("Peek = %q/%v/%v", got, ok, err)
	}

	if got, _ := store.Consume(ctx, "k"); got != "v" {
		t.Errorf("Peek consumed the key")
	}
}
