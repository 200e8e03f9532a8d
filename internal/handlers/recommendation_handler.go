package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"advisor/internal/services"
)

// RecommendationHandler handles recommendation generation requests.
type RecommendationHandler struct {
	recommendationService services.RecommendationServicer
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(recommendationService services.RecommendationServicer) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

// CreateRecommendationRequest represents the request payload for generating a recommendation.
type CreateRecommendationRequest struct {
	ProfileID string `json:"profileId" binding:"required"`
}

// CreateRecommendation handles the generation of a recommendation for a profile
// @Summary     Generate a recommendation
// @Description Apply the rule table to a stored profile and persist the resulting allocation
// @Tags        recommendations
// @Accept      json
// @Produce     json
// @Param       request body CreateRecommendationRequest true "Profile reference"
// @Success     201 {object} models.Recommendation "Recommendation created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Profile not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recommendations [post]
func (h *RecommendationHandler) CreateRecommendation(c *gin.Context) {
	var req CreateRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	rec, err := h.recommendationService.GenerateRecommendation(req.ProfileID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rec)
}
