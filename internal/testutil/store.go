// Package testutil provides test helpers for setting up in-memory
// stores, creating fixtures, and making assertions.
package testutil

import (
	"testing"

	"advisor/internal/models"
	"advisor/internal/store"
)

// SetupTestStore creates a store over an in-memory backend, seeded with
// the fixed starter asset set and empty profile/recommendation collections.
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()

	st, err := store.New(store.NewMemoryBackend())
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	return st
}

// SetupTestStoreWithAssets creates a test store whose asset reference
// set is replaced with the given assets.
func SetupTestStoreWithAssets(t *testing.T, assets []models.Asset) *store.Store {
	t.Helper()

	st := SetupTestStore(t)
	if err := st.ReplaceAssets(assets); err != nil {
		t.Fatalf("failed to replace assets: %v", err)
	}
	return st
}
