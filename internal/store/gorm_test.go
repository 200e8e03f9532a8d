package store

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"advisor/internal/models"
)

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func setupGormDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:storetest%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&CollectionDocument{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func TestGormBackend_SeedAndAppend(t *testing.T) {
	db := setupGormDB(t)
	st, err := New(NewGormBackend(db))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	assets, err := st.Assets()
	if err != nil {
		t.Fatalf("Assets: %v", err)
	}
	if len(assets) != 4 {
		t.Fatalf("expected 4 seeded assets, got %d", len(assets))
	}

	profile := models.Profile{
		ID:            "p1",
		Suitability:   models.SuitabilityConservative,
		Objective:     models.ObjectiveShort,
		LiquidityNeed: models.LiquidityHigh,
	}
	if err := st.AppendProfile(profile); err != nil {
		t.Fatalf("AppendProfile: %v", err)
	}

	// A second store over the same database sees the persisted data.
	st2, err := New(NewGormBackend(db))
	if err != nil {
		t.Fatalf("New (reopen): %v", err)
	}
	profiles, err := st2.Profiles()
	if err != nil {
		t.Fatalf("Profiles: %v", err)
	}
	if len(profiles) != 1 || profiles[0].ID != "p1" {
		t.Fatalf("expected persisted profile p1, got %+v", profiles)
	}
}

func TestGormBackend_SaveReplacesDocument(t *testing.T) {
	db := setupGormDB(t)
	backend := NewGormBackend(db)
	st, err := New(backend)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := st.ReplaceAssets([]models.Asset{
		{ID: "only", Name: "Only Asset", Class: models.AssetClassFixedIncome},
	}); err != nil {
		t.Fatalf("ReplaceAssets: %v", err)
	}

	assets, err := st.Assets()
	if err != nil {
		t.Fatalf("Assets: %v", err)
	}
	if len(assets) != 1 || assets[0].ID != "only" {
		t.Fatalf("expected replaced asset set, got %+v", assets)
	}

	var count int64
	if err := db.Model(&CollectionDocument{}).Count(&count).Error; err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 3 {
		t.Errorf("expected one row per collection (3), got %d", count)
	}
}
