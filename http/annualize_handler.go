package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"credit-estimator/domain"
	"credit-estimator/service"
)

// AnnualizeRequest carries the wizard's income question answers. Amount
// arrives as free text; anything unparseable or negative is normalized
// to 0 before it reaches the engine.
type AnnualizeRequest struct {
	PayFrequency domain.PayFrequency `json:"payFrequency"`
	Amount       string              `json:"amount"`
}

type AnnualizeResponse struct {
	AnnualIncome float64 `json:"annualIncome"`
}

type AnnualizeHandler struct{}

func NewAnnualizeHandler() *AnnualizeHandler {
	return &AnnualizeHandler{}
}

// Annualize handles POST /income/annualize.
func (h *AnnualizeHandler) Annualize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req AnnualizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	amount, err := strconv.ParseFloat(req.Amount, 64)
	if err != nil || amount < 0 {
		amount = 0
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AnnualizeResponse{
		AnnualIncome: service.AnnualizeIncome(req.PayFrequency, amount),
	})
}
