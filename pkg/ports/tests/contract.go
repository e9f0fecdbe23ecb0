// Package tests provides reusable contract suites for the driven ports.
package tests

import (
	"context"
	"testing"

	"github.com/lattice-dev/lattice/pkg/domain"
	"github.com/lattice-dev/lattice/pkg/ports"
)

// RunKeyValueStoreContract verifies that an adapter complies with
// ports.KeyValueStore semantics.
func RunKeyValueStoreContract(t *testing.T, store ports.KeyValueStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("Get_Missing", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		if err != domain.ErrKeyNotFound {
			t.Errorf("expected ErrKeyNotFound, got %v", err)
		}
	})

	t.Run("Set_Get", func(t *testing.T) {
		if err := store.Set(ctx, "team", "team-1"); err != nil {
			t.Fatalf("unexpected error setting key: %v", err)
		}
		got, err := store.Get(ctx, "team")
		if err != nil {
			t.Fatalf("unexpected error getting key: %v", err)
		}
		if got != "team-1" {
			t.Errorf("value mismatch. got %q, want %q", got, "team-1")
		}
	})

	t.Run("Set_Overwrite", func(t *testing.T) {
		if err := store.Set(ctx, "team", "team-2"); err != nil {
			t.Fatalf("unexpected error overwriting key: %v", err)
		}
		got, _ := store.Get(ctx, "team")
		if got != "team-2" {
			t.Errorf("overwrite failed. got %q, want %q", got, "team-2")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := store.Delete(ctx, "team"); err != nil {
			t.Fatalf("unexpected error deleting key: %v", err)
		}
		if _, err := store.Get(ctx, "team"); err != domain.ErrKeyNotFound {
			t.Errorf("expected ErrKeyNotFound after delete, got %v", err)
		}
	})

	t.Run("Delete_Missing", func(t *testing.T) {
		if err := store.Delete(ctx, "never-existed"); err != nil {
			t.Errorf("deleting a missing key must not fail, got %v", err)
		}
	})
}
