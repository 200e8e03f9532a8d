package store

import (
	"fmt"
	"sync"
	"testing"

	"advisor/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := New(NewMemoryBackend())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return st
}

func TestNew_SeedsCollections(t *testing.T) {
	st := newTestStore(t)

	assets, err := st.Assets()
	if err != nil {
		t.Fatalf("Assets: %v", err)
	}
	if len(assets) != 4 {
		t.Fatalf("expected 4 seeded assets, got %d", len(assets))
	}
	if assets[0].ID != "tesouro_2029" || assets[0].Class != models.AssetClassFixedIncome {
		t.Errorf("unexpected first seed asset: %+v", assets[0])
	}

	profiles, err := st.Profiles()
	if err != nil {
		t.Fatalf("Profiles: %v", err)
	}
	if len(profiles) != 0 {
		t.Errorf("expected empty profile collection, got %d records", len(profiles))
	}

	recs, err := st.Recommendations()
	if err != nil {
		t.Fatalf("Recommendations: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected empty recommendation collection, got %d records", len(recs))
	}
}

func TestNew_DoesNotReseedExistingCollections(t *testing.T) {
	backend := NewMemoryBackend()

	st, err := New(backend)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := st.AppendProfile(models.Profile{ID: "p1", Suitability: models.SuitabilityModerate}); err != nil {
		t.Fatalf("AppendProfile: %v", err)
	}

	// A second store over the same backend must see the existing data.
	st2, err := New(backend)
	if err != nil {
		t.Fatalf("New over existing backend: %v", err)
	}
	profiles, err := st2.Profiles()
	if err != nil {
		t.Fatalf("Profiles: %v", err)
	}
	if len(profiles) != 1 || profiles[0].ID != "p1" {
		t.Errorf("expected existing profile to survive, got %+v", profiles)
	}
}

func TestAppendProfile_PreservesInsertionOrder(t *testing.T) {
	st := newTestStore(t)

	for i := 0; i < 5; i++ {
		p := models.Profile{
			ID:            fmt.Sprintf("p%d", i),
			Suitability:   models.SuitabilityConservative,
			Objective:     models.ObjectiveShort,
			LiquidityNeed: models.LiquidityLow,
		}
		if err := st.AppendProfile(p); err != nil {
			t.Fatalf("AppendProfile: %v", err)
		}
	}

	profiles, err := st.Profiles()
	if err != nil {
		t.Fatalf("Profiles: %v", err)
	}
	if len(profiles) != 5 {
		t.Fatalf("expected 5 profiles, got %d", len(profiles))
	}
	for i, p := range profiles {
		if p.ID != fmt.Sprintf("p%d", i) {
			t.Errorf("position %d: expected p%d, got %s", i, i, p.ID)
		}
	}
}

func TestAppendProfile_ConcurrentAppendsLoseNothing(t *testing.T) {
	st := newTestStore(t)

	const n = 32
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := models.Profile{
				ID:            fmt.Sprintf("p%d", i),
				Suitability:   models.SuitabilityModerate,
				Objective:     models.ObjectiveMedium,
				LiquidityNeed: models.LiquidityMedium,
			}
			if err := st.AppendProfile(p); err != nil {
				t.Errorf("AppendProfile: %v", err)
			}
		}(i)
	}
	wg.Wait()

	profiles, err := st.Profiles()
	if err != nil {
		t.Fatalf("Profiles: %v", err)
	}
	if len(profiles) != n {
		t.Errorf("expected %d profiles after concurrent appends, got %d", n, len(profiles))
	}
}

func TestReplaceAssets(t *testing.T) {
	st := newTestStore(t)

	custom := []models.Asset{
		{ID: "tesouro_2029", Name: "Tesouro Prefixado 2029", Class: models.AssetClassFixedIncome},
		{ID: "bova11", Name: "ETF BOVA11", Class: models.AssetClassVariableIncome},
	}
	if err := st.ReplaceAssets(custom); err != nil {
		t.Fatalf("ReplaceAssets: %v", err)
	}

	assets, err := st.Assets()
	if err != nil {
		t.Fatalf("Assets: %v", err)
	}
	if len(assets) != 2 {
		t.Fatalf("expected 2 assets, got %d", len(assets))
	}
	if assets[1].ID != "bova11" {
		t.Errorf("expected bova11 second, got %s", assets[1].ID)
	}
}

func TestLoad_CorruptDocumentFails(t *testing.T) {
	backend := NewMemoryBackend()
	st, err := New(backend)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := backend.Save(CollectionProfiles, []byte("not json")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := st.Profiles(); err == nil {
		t.Error("expected error loading corrupt collection")
	}
}

func TestAppendRecommendation(t *testing.T) {
	st := newTestStore(t)

	rec := models.Recommendation{
		ID:        "r1",
		ProfileID: "p1",
		Items: []models.RecommendationItem{
			{AssetID: "tesouro_2029", Name: "Tesouro Prefixado 2029", Weight: 1.0, Rationale: "Consistent with conservative suitability"},
		},
		Summary: "Suitability conservative • Objective short • Liquidity low",
	}
	if err := st.AppendRecommendation(rec); err != nil {
		t.Fatalf("AppendRecommendation: %v", err)
	}

	recs, err := st.Recommendations()
	if err != nil {
		t.Fatalf("Recommendations: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	if recs[0].Items[0].Weight != 1.0 {
		t.Errorf("expected weight 1.0, got %v", recs[0].Items[0].Weight)
	}
}
