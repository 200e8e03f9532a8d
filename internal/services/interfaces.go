package services

import "advisor/internal/models"

// AssetServicer defines the contract for asset reference data.
type AssetServicer interface {
	ListAssets() ([]models.Asset, error)
}

// ProfileServicer defines the contract for profile-related business logic.
type ProfileServicer interface {
	CreateProfile(suitability, objective, liquidity string) (*models.Profile, error)
	ListProfiles() ([]models.Profile, error)
	GetProfileByID(id string) (*models.Profile, error)
}

// RecommendationServicer defines the contract for generating recommendations.
type RecommendationServicer interface {
	GenerateRecommendation(profileID string) (*models.Recommendation, error)
}
