package integration

import (
	"net/http"
	"testing"
)

func TestHealthEndpoint(t *testing.T) {
	app := setupApp(t)

	rec := app.do("GET", "/health", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	if result["ok"] != true {
		t.Errorf("expected ok true, got %v", result)
	}
}

func TestAssetsEndpointReturnsSeed(t *testing.T) {
	app := setupApp(t)

	rec := app.do("GET", "/assets", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	assets := parseJSONArray(t, rec)
	if len(assets) != 4 {
		t.Fatalf("expected 4 seeded assets, got %d", len(assets))
	}
	wantIDs := []string{"tesouro_2029", "cdb_liquidez", "bova11", "itsa4"}
	for i, want := range wantIDs {
		asset := assets[i].(map[string]interface{})
		if asset["id"] != want {
			t.Errorf("asset %d: expected id %q, got %v", i, want, asset["id"])
		}
	}
}

func TestProfileRoundTrip(t *testing.T) {
	app := setupApp(t)

	created := app.do("POST", "/profiles",
		`{"suitability":"aggressive","objective":"long","liquidity":"low"}`)
	if created.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", created.Code, created.Body.String())
	}
	profile := parseJSON(t, created)
	id, ok := profile["id"].(string)
	if !ok || id == "" {
		t.Fatalf("expected generated id, got %v", profile["id"])
	}
	if profile["suitability"] != "aggressive" || profile["liquidity_need"] != "low" {
		t.Errorf("unexpected created profile: %v", profile)
	}

	listed := app.do("GET", "/profiles", "")
	if listed.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", listed.Code)
	}
	profiles := parseJSONArray(t, listed)
	if len(profiles) != 1 {
		t.Fatalf("expected 1 profile, got %d", len(profiles))
	}
	stored := profiles[0].(map[string]interface{})
	if stored["id"] != id {
		t.Errorf("listed profile id %v does not match created %q", stored["id"], id)
	}
	if stored["objective"] != "long" {
		t.Errorf("expected objective long, got %v", stored["objective"])
	}
}

func TestInvalidProfileIsNotPersisted(t *testing.T) {
	app := setupApp(t)

	rec := app.do("POST", "/profiles",
		`{"suitability":"reckless","objective":"long","liquidity":"low"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error envelope, got %v", result)
	}
	if errObj["code"] != "INVALID_INPUT" {
		t.Errorf("expected INVALID_INPUT, got %v", errObj["code"])
	}

	listed := app.do("GET", "/profiles", "")
	if profiles := parseJSONArray(t, listed); len(profiles) != 0 {
		t.Errorf("rejected profile must not be persisted, found %d", len(profiles))
	}
}

func TestProfileListPreservesInsertionOrder(t *testing.T) {
	app := setupApp(t)

	for _, suitability := range []string{"conservative", "moderate", "aggressive"} {
		rec := app.do("POST", "/profiles",
			`{"suitability":"`+suitability+`","objective":"medium","liquidity":"medium"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201 for %s, got %d", suitability, rec.Code)
		}
	}

	profiles := parseJSONArray(t, app.do("GET", "/profiles", ""))
	if len(profiles) != 3 {
		t.Fatalf("expected 3 profiles, got %d", len(profiles))
	}
	want := []string{"conservative", "moderate", "aggressive"}
	for i, w := range want {
		profile := profiles[i].(map[string]interface{})
		if profile["suitability"] != w {
			t.Errorf("profile %d: expected suitability %q, got %v", i, w, profile["suitability"])
		}
	}
}
