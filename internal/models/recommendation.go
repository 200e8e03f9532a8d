package models

// RecommendationItem is a single weighted allocation within a
// recommendation. Weights across one recommendation's items sum to 1.0
// whenever the item list is non-empty.
type RecommendationItem struct {
	AssetID   string  `json:"asset_id"`
	Name      string  `json:"name"`
	Weight    float64 `json:"weight"`
	Rationale string  `json:"rationale"`
}

// Recommendation is a generated allocation for one profile. The
// recommendation collection is an append-only log; records are never
// mutated or deleted.
type Recommendation struct {
	ID        string               `json:"id"`
	ProfileID string               `json:"profile_id"`
	Items     []RecommendationItem `json:"items"`
	Summary   string               `json:"summary"`
}
