package session

import (
	"context"
	"testing"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	id, err := store.Create(ctx, 42)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if len(id) != 32 {
		t.Fatalf("expected 32 hex char session id, got %q", id)
	}

	uid, ok, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if !ok || uid != 42 {
		t.Fatalf("expected user 42 bound to session, got uid=%d ok=%v", uid, ok)
	}

	if err := store.Destroy(ctx, id); err != nil {
		t.Fatalf("destroy session: %v", err)
	}
	if _, ok, _ := store.Get(ctx, id); ok {
		t.Fatal("session still resolvable after destroy")
	}
}

func TestMemoryStoreUnknownID(t *testing.T) {
	store := NewMemoryStore()
	if _, ok, err := store.Get(context.Background(), "deadbeefdeadbeefdeadbeefdeadbeef"); ok || err != nil {
		t.Fatalf("unknown session should miss cleanly, got ok=%v err=%v", ok, err)
	}
	// Destroying an unknown session is a no-op
	if err := store.Destroy(context.Background(), "deadbeefdeadbeefdeadbeefdeadbeef"); err != nil {
		t.Fatalf("destroy of unknown session: %v", err)
	}
}

func TestSessionIDsAreUnique(t *testing.T) {
	store := NewMemoryStore()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := store.Create(context.Background(), uint(i))
		if err != nil {
			t.Fatalf("create session: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate session id %q", id)
		}
		seen[id] = true
	}
}
