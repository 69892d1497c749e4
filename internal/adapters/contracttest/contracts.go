// Package contracttest holds behavioral contracts that every kvstore.Store
// adapter must satisfy.
package contracttest

import (
	"context"
	"testing"

	kvstoreport "github.com/roamplan/travel-planner-api/internal/ports/out/kvstore"
)

type CleanupFunc = func()

type StoreFactory func(t *testing.T) (kvstoreport.Store, CleanupFunc)

func RunStore(t *testing.T, newStore StoreFactory) {
	t.Helper()
	ctx := context.Background()

	store, cleanup := newStore(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	// Missing key reads as absent, not as an error.
	if _, ok, err := store.Get(ctx, kvstoreport.ItineraryKey("nobody")); err != nil || ok {
		t.Fatalf("Get missing: ok=%v err=%v", ok, err)
	}

	// Set then Get.
	if err := store.Set(ctx, kvstoreport.CurrentUserKey, "alice"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := store.Get(ctx, kvstoreport.CurrentUserKey)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || v != "alice" {
		t.Fatalf("Get: ok=%v v=%q, want alice", ok, v)
	}

	// Overwrite semantics: last write wins.
	if err := store.Set(ctx, kvstoreport.CurrentUserKey, "bob"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	v, ok, err = store.Get(ctx, kvstoreport.CurrentUserKey)
	if err != nil || !ok || v != "bob" {
		t.Fatalf("Get after overwrite: ok=%v v=%q err=%v, want bob", ok, v, err)
	}

	// JSON payloads round-trip byte for byte.
	payload := `[{"id":"f1","type":"flight","data":{"airline":"Air France"},"date":"2024-01-01T00:00:00.000Z"}]`
	key := kvstoreport.ItineraryKey("alice")
	if err := store.Set(ctx, key, payload); err != nil {
		t.Fatalf("Set payload: %v", err)
	}
	v, ok, err = store.Get(ctx, key)
	if err != nil || !ok {
		t.Fatalf("Get payload: ok=%v err=%v", ok, err)
	}
	if v != payload {
		t.Fatalf("payload round-trip mismatch:\n got %q\nwant %q", v, payload)
	}

	// Keys are independent: the other key is untouched.
	v, ok, err = store.Get(ctx, kvstoreport.CurrentUserKey)
	if err != nil || !ok || v != "bob" {
		t.Fatalf("unrelated key changed: ok=%v v=%q err=%v", ok, v, err)
	}

	// Delete, then delete again (idempotent).
	if err := store.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, err := store.Get(ctx, key); err != nil || ok {
		t.Fatalf("Get after delete: ok=%v err=%v", ok, err)
	}
	if err := store.Delete(ctx, key); err != nil {
		t.Fatalf("Delete absent: %v", err)
	}
}
