package models

import "fmt"

// Suitability is the investor's self-declared risk tolerance.
type Suitability string

const (
	SuitabilityConservative Suitability = "conservative"
	SuitabilityModerate     Suitability = "moderate"
	SuitabilityAggressive   Suitability = "aggressive"
)

// Objective is the investment time horizon.
type Objective string

const (
	ObjectiveShort  Objective = "short"
	ObjectiveMedium Objective = "medium"
	ObjectiveLong   Objective = "long"
)

// LiquidityNeed is the investor's need for quick access to invested funds.
type LiquidityNeed string

const (
	LiquidityLow    LiquidityNeed = "low"
	LiquidityMedium LiquidityNeed = "medium"
	LiquidityHigh   LiquidityNeed = "high"
)

// ParseSuitability parses a wire string into a Suitability.
func ParseSuitability(s string) (Suitability, error) {
	switch Suitability(s) {
	case SuitabilityConservative, SuitabilityModerate, SuitabilityAggressive:
		return Suitability(s), nil
	}
	return "", fmt.Errorf("unknown suitability %q", s)
}

// ParseObjective parses a wire string into an Objective.
func ParseObjective(s string) (Objective, error) {
	switch Objective(s) {
	case ObjectiveShort, ObjectiveMedium, ObjectiveLong:
		return Objective(s), nil
	}
	return "", fmt.Errorf("unknown objective %q", s)
}

// ParseLiquidityNeed parses a wire string into a LiquidityNeed.
func ParseLiquidityNeed(s string) (LiquidityNeed, error) {
	switch LiquidityNeed(s) {
	case LiquidityLow, LiquidityMedium, LiquidityHigh:
		return LiquidityNeed(s), nil
	}
	return "", fmt.Errorf("unknown liquidity need %q", s)
}

// Profile is an investor risk profile. Profiles are immutable once
// created; they are never updated or deleted.
type Profile struct {
	ID            string        `json:"id"`
	Suitability   Suitability   `json:"suitability"`
	Objective     Objective     `json:"objective"`
	LiquidityNeed LiquidityNeed `json:"liquidity_need"`
}
