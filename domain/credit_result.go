package domain

// EligibilityStatus is the tri-state outcome of a credit calculation.
// "maybe" means some answers need follow-up before the credit can be
// confirmed, not a partial benefit.
type EligibilityStatus string

const (
	StatusEligible   EligibilityStatus = "eligible"
	StatusIneligible EligibilityStatus = "ineligible"
	StatusMaybe      EligibilityStatus = "maybe"
)

// CreditResult is the outcome for a single credit. EstimatedBenefit is
// always >= 0 and may be non-zero for a "maybe" result (the amount the
// filer would get if the uncertain answers resolve favorably).
type CreditResult struct {
	Status           EligibilityStatus `json:"status"`
	EstimatedBenefit float64           `json:"estimatedBenefit"`
	Explanation      string            `json:"explanation"`
	Reasons          []string          `json:"reasons"`
}

// TaxCreditResults bundles the six credit outcomes. TotalEstimatedBenefit
// sums EstimatedBenefit over results whose status is exactly eligible;
// "maybe" and "ineligible" results contribute zero.
type TaxCreditResults struct {
	ColoradoCTC           CreditResult `json:"coloradoCTC"`
	ColoradoFATC          CreditResult `json:"coloradoFATC"`
	ColoradoEITC          CreditResult `json:"coloradoEITC"`
	ColoradoCareWorker    CreditResult `json:"coloradoCareWorker"`
	FederalCTC            CreditResult `json:"federalCTC"`
	FederalEITC           CreditResult `json:"federalEITC"`
	TotalEstimatedBenefit float64      `json:"totalEstimatedBenefit"`
}

// EstimateResponse is what the estimate endpoint returns: the engine
// results plus the stored estimate id and an optional advisor note.
type EstimateResponse struct {
	ID          string           `json:"id,omitempty"`
	Results     TaxCreditResults `json:"results"`
	AdvisorNote string           `json:"advisorNote,omitempty"`
}
