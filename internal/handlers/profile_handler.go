package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"advisor/internal/services"
)

// ProfileHandler handles investor profile requests.
type ProfileHandler struct {
	profileService services.ProfileServicer
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService services.ProfileServicer) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// CreateProfileRequest represents the request payload for creating a profile.
// Fields outside these three are ignored.
type CreateProfileRequest struct {
	Suitability string `json:"suitability" binding:"required,suitability"`
	Objective   string `json:"objective" binding:"required,objective"`
	Liquidity   string `json:"liquidity" binding:"required,liquidity"`
}

// CreateProfile handles the creation of a new investor profile
// @Summary     Create a profile
// @Description Create a new investor profile from suitability, objective, and liquidity need
// @Tags        profiles
// @Accept      json
// @Produce     json
// @Param       request body CreateProfileRequest true "Profile fields"
// @Success     201 {object} models.Profile "Profile created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles [post]
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	profile, err := h.profileService.CreateProfile(req.Suitability, req.Objective, req.Liquidity)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// ListProfiles handles the retrieval of all profiles
// @Summary     List profiles
// @Description Get the full profile collection in insertion order
// @Tags        profiles
// @Produce     json
// @Success     200 {array} models.Profile "List of profiles"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles [get]
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.profileService.ListProfiles()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}
