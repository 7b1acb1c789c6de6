package http

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"credit-estimator/domain"
	"credit-estimator/service"
)

type EstimateHandler struct {
	service *service.EstimatorService
}

func NewEstimateHandler(service *service.EstimatorService) *EstimateHandler {
	return &EstimateHandler{service: service}
}

// Estimate handles POST /tax-credits/estimate: decodes a TaxCreditInput,
// runs the estimator and returns the results with the stored id.
func (h *EstimateHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.TaxCreditInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Printf("Error decoding estimate request: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	response, err := h.service.Estimate(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Encode into a buffer first so a marshalling failure never writes
	// a partial 200 response.
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(response); err != nil {
		log.Printf("Error encoding estimate response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing estimate response: %v", err)
	}
}
