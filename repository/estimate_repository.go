package repository

import "credit-estimator/domain"

// EstimateRepository stores completed estimates and returns the id
// assigned to each one.
type EstimateRepository interface {
	Save(input domain.TaxCreditInput, results domain.TaxCreditResults) (string, error)
}
