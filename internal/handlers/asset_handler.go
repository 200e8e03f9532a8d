package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"advisor/internal/services"
)

// AssetHandler handles asset reference data requests.
type AssetHandler struct {
	assetService services.AssetServicer
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetService services.AssetServicer) *AssetHandler {
	return &AssetHandler{assetService: assetService}
}

// ListAssets handles the retrieval of the full asset reference set
// @Summary     List assets
// @Description Get the full static asset reference set in stored order
// @Tags        assets
// @Produce     json
// @Success     200 {array} models.Asset "Asset reference set"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets [get]
func (h *AssetHandler) ListAssets(c *gin.Context) {
	assets, err := h.assetService.ListAssets()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, assets)
}
