package testutil

import (
	"testing"

	"github.com/nhle/time-budget/internal/store"
)

// NewTestKV creates an in-memory SQLiteKV with all migrations applied.
// It automatically closes the store when the test completes.
func NewTestKV(t *testing.T) *store.SQLiteKV {
	t.Helper()

	kv, err := store.NewSQLiteKV(":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := kv.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return kv
}

// NewTestGateway creates a gateway over an in-memory store.
func NewTestGateway(t *testing.T) *store.Gateway {
	t.Helper()
	return store.NewGateway(NewTestKV(t))
}
