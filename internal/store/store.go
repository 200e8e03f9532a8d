// Package store provides durable whole-collection persistence for the
// advisor's three record collections. Every mutation is a full
// load-modify-save cycle; the store serializes those cycles per
// collection so concurrent requests cannot lose updates.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"advisor/internal/models"
)

// Collection names a persisted record collection.
type Collection string

const (
	CollectionAssets          Collection = "assets"
	CollectionProfiles        Collection = "profiles"
	CollectionRecommendations Collection = "recommendations"
)

// ErrNotInitialized is returned by a Backend when a collection has never
// been written. The store reacts by seeding the collection.
var ErrNotInitialized = errors.New("collection not initialized")

// Backend persists each collection as a single JSON array document.
type Backend interface {
	Load(collection Collection) ([]byte, error)
	Save(collection Collection, data []byte) error
}

// SeedAssets returns the fixed starter asset set used to initialize the
// asset collection on first use.
func SeedAssets() []models.Asset {
	return []models.Asset{
		{ID: "tesouro_2029", Name: "Tesouro Prefixado 2029", Class: models.AssetClassFixedIncome},
		{ID: "cdb_liquidez", Name: "CDB Liquidez Diária", Class: models.AssetClassFixedIncome},
		{ID: "bova11", Name: "ETF BOVA11", Class: models.AssetClassVariableIncome},
		{ID: "itsa4", Name: "Itaúsa PN", Class: models.AssetClassVariableIncome},
	}
}

// Store owns the three collections exclusively. It guards each
// collection's load-modify-save cycle with its own mutex.
type Store struct {
	backend Backend
	mu      map[Collection]*sync.Mutex
}

// New creates a Store over the given backend and initializes any
// collection the backend has never seen: assets are seeded with the
// starter set, profiles and recommendations start empty.
func New(backend Backend) (*Store, error) {
	s := &Store{
		backend: backend,
		mu: map[Collection]*sync.Mutex{
			CollectionAssets:          {},
			CollectionProfiles:        {},
			CollectionRecommendations: {},
		},
	}

	if err := initCollection(s, CollectionAssets, SeedAssets()); err != nil {
		return nil, err
	}
	if err := initCollection(s, CollectionProfiles, []models.Profile{}); err != nil {
		return nil, err
	}
	if err := initCollection(s, CollectionRecommendations, []models.Recommendation{}); err != nil {
		return nil, err
	}

	return s, nil
}

// Assets returns the full asset collection in insertion order.
func (s *Store) Assets() ([]models.Asset, error) {
	return load[models.Asset](s, CollectionAssets)
}

// Profiles returns the full profile collection in insertion order.
func (s *Store) Profiles() ([]models.Profile, error) {
	return load[models.Profile](s, CollectionProfiles)
}

// Recommendations returns the full recommendation collection in insertion order.
func (s *Store) Recommendations() ([]models.Recommendation, error) {
	return load[models.Recommendation](s, CollectionRecommendations)
}

// AppendProfile appends a profile and persists the full collection.
func (s *Store) AppendProfile(profile models.Profile) error {
	return appendRecord(s, CollectionProfiles, profile)
}

// AppendRecommendation appends a recommendation and persists the full collection.
func (s *Store) AppendRecommendation(rec models.Recommendation) error {
	return appendRecord(s, CollectionRecommendations, rec)
}

// ReplaceAssets atomically replaces the asset reference set.
func (s *Store) ReplaceAssets(assets []models.Asset) error {
	return save(s, CollectionAssets, assets)
}

func initCollection[T any](s *Store, collection Collection, seed []T) error {
	_, err := s.backend.Load(collection)
	if errors.Is(err, ErrNotInitialized) {
		return save(s, collection, seed)
	}
	return err
}

func load[T any](s *Store, collection Collection) ([]T, error) {
	s.mu[collection].Lock()
	defer s.mu[collection].Unlock()
	return loadLocked[T](s, collection)
}

func loadLocked[T any](s *Store, collection Collection) ([]T, error) {
	data, err := s.backend.Load(collection)
	if err != nil {
		return nil, fmt.Errorf("load %s collection: %w", collection, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s collection: %w", collection, err)
	}
	return records, nil
}

func save[T any](s *Store, collection Collection, records []T) error {
	s.mu[collection].Lock()
	defer s.mu[collection].Unlock()
	return saveLocked(s, collection, records)
}

func saveLocked[T any](s *Store, collection Collection, records []T) error {
	// Indented output keeps the persisted documents human-readable.
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s collection: %w", collection, err)
	}
	if err := s.backend.Save(collection, data); err != nil {
		return fmt.Errorf("save %s collection: %w", collection, err)
	}
	return nil
}

func appendRecord[T any](s *Store, collection Collection, record T) error {
	// The whole read-modify-write cycle runs under the collection lock,
	// so two concurrent appends cannot overwrite each other.
	s.mu[collection].Lock()
	defer s.mu[collection].Unlock()

	records, err := loadLocked[T](s, collection)
	if err != nil {
		return err
	}
	return saveLocked(s, collection, append(records, record))
}
