// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("suitability", validateSuitability)
		_ = v.RegisterValidation("objective", validateObjective)
		_ = v.RegisterValidation("liquidity", validateLiquidity)
	}
}

func validateSuitability(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "conservative", "moderate", "aggressive":
		return true
	}
	return false
}

func validateObjective(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "short", "medium", "long":
		return true
	}
	return false
}

func validateLiquidity(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "low", "medium", "high":
		return true
	}
	return false
}
