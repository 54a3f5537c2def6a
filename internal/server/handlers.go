package server

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/ecometric/footprint/internal/estimate"
	"github.com/ecometric/footprint/internal/factors"
)

// estimateRequest is the JSON body of POST /api/v1/estimate.
type estimateRequest struct {
	Region  string              `json:"region"`
	Country string              `json:"country,omitempty"`
	Inputs  estimate.UserInputs `json:"inputs"`
}

// estimateResponse is the JSON body of a successful estimate.
type estimateResponse struct {
	Result          *estimate.FootprintResult `json:"result"`
	Recommendations []estimate.Recommendation `json:"recommendations"`
	Comparison      estimate.Comparison       `json:"comparison"`
}

// handleEstimate serves POST /api/v1/estimate.
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var req estimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "malformed JSON body: "+err.Error())
		return
	}
	defer r.Body.Close()

	region, err := factors.ParseRegion(req.Region, req.Country)
	if err != nil {
		fieldErrorResponse(w, http.StatusBadRequest, "region", err.Error())
		return
	}

	result, err := s.estimator.Estimate(req.Inputs, region)
	if err != nil {
		var invalid *estimate.InvalidInputError
		if errors.As(err, &invalid) {
			fieldErrorResponse(w, http.StatusBadRequest, invalid.Field, invalid.Reason)
			return
		}
		// A missing factor key is a configuration defect; surface it to
		// the operator, not the form user.
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("estimation failed")
		errorResponse(w, http.StatusInternalServerError, "estimation failed")
		return
	}

	jsonResponse(w, http.StatusOK, estimateResponse{
		Result:          result,
		Recommendations: estimate.Recommend(result, req.Inputs, region, s.rules),
		Comparison:      estimate.Compare(result, region, s.averages),
	})
}

// factorEntry is one resolved factor in the factors listing.
type factorEntry struct {
	Key      factors.Key `json:"key"`
	KgCO2e   float64     `json:"kg_co2e_per_unit"`
	Override bool        `json:"regional_override,omitempty"`
}

// factorsResponse is the JSON body of GET /api/v1/factors.
type factorsResponse struct {
	Region  string        `json:"region"`
	Version string        `json:"version"`
	Factors []factorEntry `json:"factors"`
}

// handleFactors serves GET /api/v1/factors?region=&country=. It returns
// the factor table as resolved for the requested region, marking
// regional overrides.
func (s *Server) handleFactors(w http.ResponseWriter, r *http.Request) {
	region, err := factors.ParseRegion(r.URL.Query().Get("region"), r.URL.Query().Get("country"))
	if err != nil {
		fieldErrorResponse(w, http.StatusBadRequest, "region", err.Error())
		return
	}

	resp := factorsResponse{
		Region:  region.String(),
		Version: s.registry.Version(),
	}
	for _, key := range s.registry.Keys() {
		resolved, err := s.registry.Resolve(region, key)
		if err != nil {
			zerolog.Ctx(r.Context()).Error().Err(err).Msg("factor listing failed")
			errorResponse(w, http.StatusInternalServerError, "factor listing failed")
			return
		}
		global, _ := s.registry.Resolve(factors.GlobalRegion(), key)
		resp.Factors = append(resp.Factors, factorEntry{
			Key:      key,
			KgCO2e:   resolved,
			Override: resolved != global,
		})
	}

	jsonResponse(w, http.StatusOK, resp)
}

// handleHealth serves GET /healthz.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
