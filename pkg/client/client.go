// Package client provides a typed HTTP client for the Advisor API.
//
// The client owns the retry policy for transient connectivity failures:
// a fixed budget of extra attempts with a constant wait, no backoff.
// HTTP error responses (400, 404, 500) are never retried; they are
// returned to the caller as *APIError values.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultTimeout = 10 * time.Second

	// retryBudget is the number of extra attempts after a failed
	// request. Only transport-level failures consume the budget.
	retryBudget = 2
	retryWait   = 250 * time.Millisecond
)

// Asset mirrors the API's asset reference record.
type Asset struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Class string `json:"class"`
}

// Profile mirrors the API's investor profile record.
type Profile struct {
	ID            string `json:"id"`
	Suitability   string `json:"suitability"`
	Objective     string `json:"objective"`
	LiquidityNeed string `json:"liquidity_need"`
}

// ProfileInput holds the fields for creating a profile.
type ProfileInput struct {
	Suitability string `json:"suitability"`
	Objective   string `json:"objective"`
	Liquidity   string `json:"liquidity"`
}

// RecommendationItem mirrors one weighted allocation item.
type RecommendationItem struct {
	AssetID   string  `json:"asset_id"`
	Name      string  `json:"name"`
	Weight    float64 `json:"weight"`
	Rationale string  `json:"rationale"`
}

// Recommendation mirrors the API's recommendation record.
type Recommendation struct {
	ID        string               `json:"id"`
	ProfileID string               `json:"profile_id"`
	Items     []RecommendationItem `json:"items"`
	Summary   string               `json:"summary"`
}

// APIError is a non-success response from the API. Connectivity
// failures are reported as plain wrapped errors instead, so callers can
// distinguish the two cases with errors.As.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// Client communicates with the Advisor API.
type Client struct {
	http *resty.Client
}

// New creates a Client for the API at baseURL.
func New(baseURL string) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(defaultTimeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(retryBudget).
		SetRetryWaitTime(retryWait).
		SetRetryMaxWaitTime(retryWait)

	return &Client{http: httpClient}
}

// Health checks the service health endpoint.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil, http.StatusOK)
}

// ListAssets fetches the full asset reference set.
func (c *Client) ListAssets(ctx context.Context) ([]Asset, error) {
	var assets []Asset
	if err := c.do(ctx, http.MethodGet, "/assets", nil, &assets, http.StatusOK); err != nil {
		return nil, err
	}
	return assets, nil
}

// ListProfiles fetches the full profile collection.
func (c *Client) ListProfiles(ctx context.Context) ([]Profile, error) {
	var profiles []Profile
	if err := c.do(ctx, http.MethodGet, "/profiles", nil, &profiles, http.StatusOK); err != nil {
		return nil, err
	}
	return profiles, nil
}

// CreateProfile creates a new investor profile.
func (c *Client) CreateProfile(ctx context.Context, input ProfileInput) (*Profile, error) {
	var profile Profile
	if err := c.do(ctx, http.MethodPost, "/profiles", input, &profile, http.StatusCreated); err != nil {
		return nil, err
	}
	return &profile, nil
}

// CreateRecommendation generates a recommendation for the given profile id.
func (c *Client) CreateRecommendation(ctx context.Context, profileID string) (*Recommendation, error) {
	body := struct {
		ProfileID string `json:"profileId"`
	}{ProfileID: profileID}

	var rec Recommendation
	if err := c.do(ctx, http.MethodPost, "/recommendations", body, &rec, http.StatusCreated); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, result interface{}, want int) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("requesting %s %s: %w", method, path, err)
	}
	if resp.StatusCode() != want {
		return apiErrorFrom(resp)
	}
	return nil
}

// apiErrorFrom decodes the API's error envelope. A body that is not the
// envelope still yields an APIError carrying the status code.
func apiErrorFrom(resp *resty.Response) error {
	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil || envelope.Error.Code == "" {
		return &APIError{
			StatusCode: resp.StatusCode(),
			Message:    http.StatusText(resp.StatusCode()),
		}
	}
	return &APIError{
		StatusCode: resp.StatusCode(),
		Code:       envelope.Error.Code,
		Message:    envelope.Error.Message,
	}
}
