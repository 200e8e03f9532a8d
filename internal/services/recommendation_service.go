package services

import (
	"fmt"

	apperrors "advisor/internal/errors"
	"advisor/internal/models"
	"advisor/internal/store"
	"advisor/internal/uuid"
)

// recommendationService maps a stored profile to a weighted asset
// allocation using a fixed rule table.
type recommendationService struct {
	store    *store.Store
	profiles ProfileServicer
}

// NewRecommendationService creates a new RecommendationServicer.
func NewRecommendationService(st *store.Store, profiles ProfileServicer) RecommendationServicer {
	return &recommendationService{store: st, profiles: profiles}
}

// GenerateRecommendation builds, appends, and persists a recommendation
// for the given profile id. If the profile does not exist, nothing is
// created and ErrProfileNotFound is returned.
func (s *recommendationService) GenerateRecommendation(profileID string) (*models.Recommendation, error) {
	profile, err := s.profiles.GetProfileByID(profileID)
	if err != nil {
		return nil, err
	}

	assets, err := s.store.Assets()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	rec := buildRecommendation(*profile, assets)
	if err := s.store.AppendRecommendation(rec); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &rec, nil
}

// buildRecommendation applies the rule table to a profile and the
// current asset reference set. It is deterministic: the same profile
// and asset set always produce the same items and weights.
func buildRecommendation(profile models.Profile, assets []models.Asset) models.Recommendation {
	selected := selectAssets(profile.Suitability, assets)

	// Uniform weight across the selection; an empty selection carries
	// no weight at all.
	weight := 0.0
	if len(selected) > 0 {
		weight = 1.0 / float64(len(selected))
	}

	items := make([]models.RecommendationItem, 0, len(selected))
	for _, asset := range selected {
		items = append(items, models.RecommendationItem{
			AssetID:   asset.ID,
			Name:      asset.Name,
			Weight:    weight,
			Rationale: fmt.Sprintf("Consistent with %s suitability", profile.Suitability),
		})
	}

	return models.Recommendation{
		ID:        uuid.New(),
		ProfileID: profile.ID,
		Items:     items,
		Summary: fmt.Sprintf("Suitability %s • Objective %s • Liquidity %s",
			profile.Suitability, profile.Objective, profile.LiquidityNeed),
	}
}

// selectAssets applies the fixed selection policy: class-filtered,
// insertion-order, count-capped. Conservative profiles take the first
// two fixed income assets, aggressive the first two variable income
// assets, and moderate one of each.
func selectAssets(suitability models.Suitability, assets []models.Asset) []models.Asset {
	switch suitability {
	case models.SuitabilityConservative:
		return firstOfClass(assets, models.AssetClassFixedIncome, 2)
	case models.SuitabilityAggressive:
		return firstOfClass(assets, models.AssetClassVariableIncome, 2)
	default:
		selected := firstOfClass(assets, models.AssetClassFixedIncome, 1)
		return append(selected, firstOfClass(assets, models.AssetClassVariableIncome, 1)...)
	}
}

// firstOfClass returns up to max assets of the given class, preserving
// the reference set's stored order.
func firstOfClass(assets []models.Asset, class models.AssetClass, max int) []models.Asset {
	selected := make([]models.Asset, 0, max)
	for _, asset := range assets {
		if asset.Class != class {
			continue
		}
		selected = append(selected, asset)
		if len(selected) == max {
			break
		}
	}
	return selected
}
