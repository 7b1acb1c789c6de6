package service

import "credit-estimator/domain"

// AnnualizeIncome converts a per-period pay amount to a yearly income
// using a fixed multiplier per pay frequency. Negative or unparseable
// amounts are the caller's responsibility to normalize to 0 before
// calling; unknown frequencies fall back to the monthly multiplier.
func AnnualizeIncome(frequency domain.PayFrequency, amount float64) float64 {
	multiplier, ok := annualMultipliers[frequency]
	if !ok {
		multiplier = annualMultipliers[domain.PayMonthly]
	}
	return amount * multiplier
}
