package kvstore

import (
	"testing"

	"github.com/roamplan/travel-planner-api/internal/adapters/contracttest"
	kvstoreport "github.com/roamplan/travel-planner-api/internal/ports/out/kvstore"
)

func TestContract_MemoryKVStore(t *testing.T) {
	contracttest.RunStore(t, func(t *testing.T) (kvstoreport.Store, func()) {
		t.Helper()
		return NewStore(), nil
	})
}
