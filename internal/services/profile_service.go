package services

import (
	apperrors "advisor/internal/errors"
	"advisor/internal/models"
	"advisor/internal/store"
	"advisor/internal/uuid"
)

// profileService handles profile creation and lookup.
type profileService struct {
	store *store.Store
}

// NewProfileService creates a new ProfileServicer.
func NewProfileService(st *store.Store) ProfileServicer {
	return &profileService{store: st}
}

// CreateProfile validates the candidate fields against their closed
// enumerations, then appends and persists a new profile. Validation
// reports the first invalid field and has no side effects.
func (s *profileService) CreateProfile(suitability, objective, liquidity string) (*models.Profile, error) {
	if suitability == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "suitability is required")
	}
	suit, err := models.ParseSuitability(suitability)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput,
			"suitability must be one of conservative, moderate, aggressive")
	}

	if objective == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "objective is required")
	}
	obj, err := models.ParseObjective(objective)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput,
			"objective must be one of short, medium, long")
	}

	if liquidity == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "liquidity is required")
	}
	liq, err := models.ParseLiquidityNeed(liquidity)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput,
			"liquidity must be one of low, medium, high")
	}

	profile := models.Profile{
		ID:            uuid.New(),
		Suitability:   suit,
		Objective:     obj,
		LiquidityNeed: liq,
	}

	if err := s.store.AppendProfile(profile); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &profile, nil
}

// ListProfiles returns the full profile collection in insertion order.
func (s *profileService) ListProfiles() ([]models.Profile, error) {
	profiles, err := s.store.Profiles()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return profiles, nil
}

// GetProfileByID retrieves a profile by id.
func (s *profileService) GetProfileByID(id string) (*models.Profile, error) {
	profiles, err := s.store.Profiles()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for i := range profiles {
		if profiles[i].ID == id {
			return &profiles[i], nil
		}
	}
	return nil, apperrors.ErrProfileNotFound
}
