package testutil

import (
	"testing"

	"advisor/internal/models"
	"advisor/internal/store"
	"advisor/internal/uuid"
)

// CreateTestProfile appends a profile with the given suitability to the
// store and returns it. Objective and liquidity need get fixed values.
func CreateTestProfile(t *testing.T, st *store.Store, suitability models.Suitability) models.Profile {
	t.Helper()

	profile := models.Profile{
		ID:            uuid.New(),
		Suitability:   suitability,
		Objective:     models.ObjectiveMedium,
		LiquidityNeed: models.LiquidityMedium,
	}
	if err := st.AppendProfile(profile); err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}
	return profile
}
