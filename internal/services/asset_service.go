package services

import (
	apperrors "advisor/internal/errors"
	"advisor/internal/models"
	"advisor/internal/store"
)

// assetService serves the static asset reference set.
type assetService struct {
	store *store.Store
}

// NewAssetService creates a new AssetServicer.
func NewAssetService(st *store.Store) AssetServicer {
	return &assetService{store: st}
}

// ListAssets returns the full asset reference set in stored order.
func (s *assetService) ListAssets() ([]models.Asset, error) {
	assets, err := s.store.Assets()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return assets, nil
}
