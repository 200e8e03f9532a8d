package models

import "fmt"

// AssetClass represents the class of an investable asset.
type AssetClass string

const (
	AssetClassFixedIncome    AssetClass = "fixed_income"
	AssetClassVariableIncome AssetClass = "variable_income"
)

// ParseAssetClass parses a wire string into an AssetClass.
func ParseAssetClass(s string) (AssetClass, error) {
	switch AssetClass(s) {
	case AssetClassFixedIncome, AssetClassVariableIncome:
		return AssetClass(s), nil
	}
	return "", fmt.Errorf("unknown asset class %q", s)
}

// Asset is a static reference instrument. The asset collection is seeded
// once on first store initialization and is read-only thereafter.
type Asset struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Class AssetClass `json:"class"`
}
