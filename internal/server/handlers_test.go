package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecometric/footprint/internal/config"
	"github.com/ecometric/footprint/internal/estimate"
	"github.com/ecometric/footprint/internal/factors"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	registry, err := factors.NewRegistry(zerolog.Nop())
	require.NoError(t, err)
	return New(registry, config.Default(), zerolog.Nop())
}

func doRequest(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHandleEstimate_Global(t *testing.T) {
	s := newTestServer(t)

	body := `{
		"region": "global",
		"inputs": {
			"electricity_kwh_month": 200,
			"diet": "vegan"
		}
	}`
	rec := doRequest(t, s, http.MethodPost, "/api/v1/estimate", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp estimateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Result)
	assert.InDelta(t, 1200.0, resp.Result.Housing, 1e-9)
	assert.Zero(t, resp.Result.Transport)
	assert.InDelta(t, 438.0, resp.Result.Diet, 1e-9)
	assert.InDelta(t, resp.Result.Housing+resp.Result.Diet, resp.Result.Total, 1e-9)

	require.NotEmpty(t, resp.Recommendations)
	assert.Equal(t, estimate.BaselineUSAverage, resp.Comparison.Baseline)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestHandleEstimate_AfricaOverride(t *testing.T) {
	s := newTestServer(t)

	body := `{
		"region": "africa",
		"country": "ZA",
		"inputs": {
			"electricity_kwh_month": 100,
			"diet": "typical"
		}
	}`
	rec := doRequest(t, s, http.MethodPost, "/api/v1/estimate", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp estimateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	// South Africa's coal-heavy grid: 100 kWh * 0.9 * 12.
	assert.InDelta(t, 1080.0, resp.Result.Housing, 1e-9)
}

func TestHandleEstimate_BadRequests(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name:      "negative quantity",
			body:      `{"region":"global","inputs":{"electricity_kwh_month":-5,"diet":"vegan"}}`,
			wantField: "electricity_kwh_month",
		},
		{
			name:      "unknown diet",
			body:      `{"region":"global","inputs":{"diet":"carnivore"}}`,
			wantField: "diet",
		},
		{
			name:      "africa without country",
			body:      `{"region":"africa","inputs":{"diet":"vegan"}}`,
			wantField: "region",
		},
		{
			name:      "unknown scope",
			body:      `{"region":"mars","inputs":{"diet":"vegan"}}`,
			wantField: "region",
		},
		{
			name: "malformed json",
			body: `{"region":`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, s, http.MethodPost, "/api/v1/estimate", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var errBody errorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
			assert.Equal(t, tt.wantField, errBody.Field)
			assert.NotEmpty(t, errBody.Message)
		})
	}
}

func TestHandleFactors(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/v1/factors?region=africa&country=KE", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp factorsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "africa/KE", resp.Region)
	require.NotEmpty(t, resp.Factors)

	overrides := 0
	for _, f := range resp.Factors {
		if f.Key == factors.KeyElectricityKWh {
			assert.InDelta(t, 0.3, f.KgCO2e, 1e-9)
			assert.True(t, f.Override)
		}
		if f.Override {
			overrides++
		}
	}
	assert.Equal(t, 1, overrides, "Kenya overrides only the electricity factor")
}

func TestHandleFactors_Global(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/v1/factors", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp factorsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "global", resp.Region)
	for _, f := range resp.Factors {
		assert.False(t, f.Override)
	}
}

func TestHandleFactors_BadRegion(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/v1/factors?region=africa&country=FR", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/v1/estimate", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
