package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"credit-estimator/domain"
	"credit-estimator/repository"
	"credit-estimator/service"
)

func newTestHandler() *EstimateHandler {
	repo := repository.NewEstimateRepositoryMemory()
	cache := repository.NewMockCache()
	estimator := service.NewEstimatorService(repo, cache, nil)
	return NewEstimateHandler(estimator)
}

func estimateRequest(body []byte) *http.Request {
	req := httptest.NewRequest(
		http.MethodPost,
		"/tax-credits/estimate",
		bytes.NewBuffer(body),
	)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestEstimateHandler_OK(t *testing.T) {
	handler := newTestHandler()

	body := []byte(`{
		"filingStatus": "single",
		"coloradoResidency": "full-year",
		"hasEarnedIncome": true,
		"annualIncome": 50000,
		"children": [
			{"age": 4, "livesWithYou": "yes", "relationship": "biological", "hasValidID": "yes"}
		]
	}`)

	w := httptest.NewRecorder()
	handler.Estimate(w, estimateRequest(body))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var response domain.EstimateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if response.ID == "" {
		t.Errorf("expected an estimate id")
	}
	if response.Results.ColoradoCTC.Status != domain.StatusEligible {
		t.Errorf("expected eligible Colorado CTC, got %s", response.Results.ColoradoCTC.Status)
	}
	if response.Results.ColoradoCTC.EstimatedBenefit != 2000 {
		t.Errorf("expected 2000, got %.2f", response.Results.ColoradoCTC.EstimatedBenefit)
	}
}

func TestEstimateHandler_MethodNotAllowed(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/tax-credits/estimate", nil)
	w := httptest.NewRecorder()

	handler.Estimate(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestEstimateHandler_UnsupportedMediaType(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(
		http.MethodPost,
		"/tax-credits/estimate",
		bytes.NewBuffer([]byte(`{}`)),
	)
	req.Header.Set("Content-Type", "text/plain")

	w := httptest.NewRecorder()
	handler.Estimate(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415, got %d", w.Code)
	}
}

func TestEstimateHandler_BadJSON(t *testing.T) {
	handler := newTestHandler()

	w := httptest.NewRecorder()
	handler.Estimate(w, estimateRequest([]byte(`{invalid-json}`)))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestEstimateHandler_ValidationError(t *testing.T) {
	handler := newTestHandler()

	body := []byte(`{
		"filingStatus": "widowed",
		"coloradoResidency": "full-year",
		"annualIncome": 50000
	}`)

	w := httptest.NewRecorder()
	handler.Estimate(w, estimateRequest(body))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
