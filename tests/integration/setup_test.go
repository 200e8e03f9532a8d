package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"advisor/internal/handlers"
	"advisor/internal/logger"
	"advisor/internal/middleware"
	"advisor/internal/services"
	"advisor/internal/store"
	"advisor/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// testApp wires the full HTTP stack over an in-memory backend,
// matching the production router in cmd/api.
type testApp struct {
	router *gin.Engine
	store  *store.Store
}

func setupApp(t *testing.T) *testApp {
	t.Helper()

	st, err := store.New(store.NewMemoryBackend())
	if err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}

	assetService := services.NewAssetService(st)
	profileService := services.NewProfileService(st)
	recommendationService := services.NewRecommendationService(st, profileService)

	assetHandler := handlers.NewAssetHandler(assetService)
	profileHandler := handlers.NewProfileHandler(profileService)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	router.GET("/assets", assetHandler.ListAssets)
	router.GET("/profiles", profileHandler.ListProfiles)
	router.POST("/profiles", profileHandler.CreateProfile)
	router.POST("/recommendations", recommendationHandler.CreateRecommendation)

	return &testApp{router: router, store: st}
}

func (app *testApp) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func parseJSONArray(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	var result []interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON array response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}
