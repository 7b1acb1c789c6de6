package service

import "credit-estimator/domain"

// CalculateAll runs every credit calculator against one input and sums
// the total. The Federal EITC runs before the Colorado EITC, which is
// derived from it; every other calculator is independent. The whole
// computation is pure: same input, same output.
func CalculateAll(input domain.TaxCreditInput) domain.TaxCreditResults {
	results := domain.TaxCreditResults{
		ColoradoCTC:        CalculateColoradoCTC(input),
		ColoradoFATC:       CalculateFATC(input),
		FederalEITC:        CalculateFederalEITC(input),
		ColoradoCareWorker: CalculateCareWorkerCredit(input),
		FederalCTC:         CalculateFederalCTC(input),
	}
	results.ColoradoEITC = CalculateColoradoEITC(input, results.FederalEITC)

	for _, result := range []domain.CreditResult{
		results.ColoradoCTC,
		results.ColoradoFATC,
		results.ColoradoEITC,
		results.ColoradoCareWorker,
		results.FederalCTC,
		results.FederalEITC,
	} {
		if result.Status == domain.StatusEligible {
			results.TotalEstimatedBenefit += result.EstimatedBenefit
		}
	}

	return results
}
