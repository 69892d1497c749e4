package kvstore

import (
	"context"
	"os"
	"testing"

	"github.com/roamplan/travel-planner-api/internal/adapters/contracttest"
	"github.com/roamplan/travel-planner-api/internal/adapters/postgres"
	kvstoreport "github.com/roamplan/travel-planner-api/internal/ports/out/kvstore"
)

// Runs only when TEST_DATABASE_URL points at a disposable database.
func TestContract_PostgresKVStore(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolOptions{})
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	t.Cleanup(pool.Close)

	store := NewStore(pool)
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	contracttest.RunStore(t, func(t *testing.T) (kvstoreport.Store, func()) {
		t.Helper()
		// Start from a clean table per run.
		if _, err := pool.Exec(ctx, `TRUNCATE kv`); err != nil {
			t.Fatalf("truncate: %v", err)
		}
		return store, nil
	})
}
