package service

import (
	"fmt"
	"math"

	"credit-estimator/domain"
)

// roundToDollar rounds an estimated benefit to the nearest whole dollar.
func roundToDollar(value float64) float64 {
	return math.Round(value)
}

const partYearReason = "Part-year Colorado residents may qualify for a reduced amount; confirm your residency dates before filing."

// ineligibleResult builds the terminal result for a credit the filer
// cannot claim: status ineligible, benefit 0, one reason.
func ineligibleResult(explanation, reason string) domain.CreditResult {
	return domain.CreditResult{
		Status:           domain.StatusIneligible,
		EstimatedBenefit: 0,
		Explanation:      explanation,
		Reasons:          []string{reason},
	}
}

// CalculateColoradoCTC estimates the Colorado Child Tax Credit, which
// covers qualifying children under 6 for residents under the income
// limit for their filing status.
func CalculateColoradoCTC(input domain.TaxCreditInput) domain.CreditResult {
	const name = "Colorado Child Tax Credit"

	if input.ColoradoResidency == domain.ResidencyNo {
		return ineligibleResult(
			"You do not appear to qualify for the "+name+".",
			"You must be a Colorado resident to claim this credit.",
		)
	}

	if !anyChildUnder(input.Children, ColoradoCTCMaxAge) {
		return ineligibleResult(
			"You do not appear to qualify for the "+name+".",
			fmt.Sprintf("This credit only covers children under %d, and none of your children are in that range.", ColoradoCTCMaxAge),
		)
	}

	limit := ColoradoCTCIncomeLimit
	if input.FilingStatus == domain.FilingMarriedJoint {
		limit = ColoradoCTCIncomeLimitJoint
	}
	if input.AnnualIncome > limit {
		return ineligibleResult(
			"You do not appear to qualify for the "+name+".",
			fmt.Sprintf("Your annual income is above the $%.0f limit for your filing status.", limit),
		)
	}

	tally := softenIfAnyQualify(tallyChildren(input.Children, func(age int) bool {
		return age < ColoradoCTCMaxAge
	}))

	status := tally.Status
	reasons := tally.Issues
	benefit := roundToDollar(float64(tally.QualifyingCount) * ColoradoCTCPerChild)

	if input.ColoradoResidency == domain.ResidencyPartYear {
		if status != domain.StatusIneligible {
			status = domain.StatusMaybe
		}
		reasons = append(reasons, partYearReason)
	}

	return domain.CreditResult{
		Status:           status,
		EstimatedBenefit: benefit,
		Explanation:      creditExplanation(name, status, benefit, tally.QualifyingCount),
		Reasons:          reasons,
	}
}

// CalculateFATC estimates the Colorado Family Affordability Tax Credit:
// a per-child benefit with a higher amount for children under 6, phased
// out linearly across an income band keyed by filing status.
func CalculateFATC(input domain.TaxCreditInput) domain.CreditResult {
	const name = "Colorado Family Affordability Tax Credit"

	if input.ColoradoResidency == domain.ResidencyNo {
		return ineligibleResult(
			"You do not appear to qualify for the "+name+".",
			"You must be a Colorado resident to claim this credit.",
		)
	}

	if !anyChildUnder(input.Children, FederalCTCMaxAge) {
		return ineligibleResult(
			"You do not appear to qualify for the "+name+".",
			fmt.Sprintf("This credit only covers children under %d, and none of your children are in that range.", FederalCTCMaxAge),
		)
	}

	under6 := tallyChildren(input.Children, func(age int) bool {
		return age < ColoradoCTCMaxAge
	})
	older := tallyChildren(input.Children, func(age int) bool {
		return age >= ColoradoCTCMaxAge && age < FederalCTCMaxAge
	})

	combined := childTally{
		QualifyingCount: under6.QualifyingCount + older.QualifyingCount,
		Status:          worseStatus(under6.Status, older.Status),
		Issues:          append(append([]string{}, under6.Issues...), older.Issues...),
	}
	combined = softenIfAnyQualify(combined)

	status := combined.Status
	reasons := combined.Issues
	base := float64(under6.QualifyingCount)*FATCUnder6Benefit + float64(older.QualifyingCount)*FATCOlderBenefit

	band := fatcPhaseOut[input.FilingStatus]
	benefit := base
	switch {
	case input.AnnualIncome >= band.End:
		// Fully phased out: a hard disqualification that is not
		// overridden by anything computed above.
		return ineligibleResult(
			"You do not appear to qualify for the "+name+".",
			fmt.Sprintf("Your annual income is at or above the $%.0f limit where this credit is fully phased out.", band.End),
		)
	case input.AnnualIncome > band.Start:
		fraction := (input.AnnualIncome - band.Start) / (band.End - band.Start)
		benefit = roundToDollar(base * (1 - fraction))
		reasons = append(reasons, fmt.Sprintf("Your income is above $%.0f, so the credit is reduced.", band.Start))
	}

	if input.ColoradoResidency == domain.ResidencyPartYear {
		if status != domain.StatusIneligible {
			status = domain.StatusMaybe
		}
		reasons = append(reasons, partYearReason)
	}

	return domain.CreditResult{
		Status:           status,
		EstimatedBenefit: benefit,
		Explanation:      creditExplanation(name, status, benefit, combined.QualifyingCount),
		Reasons:          reasons,
	}
}

// CalculateColoradoEITC derives the state EITC from the federal result:
// residents get half of the federal credit and mirror its status.
func CalculateColoradoEITC(input domain.TaxCreditInput, federal domain.CreditResult) domain.CreditResult {
	const name = "Colorado Earned Income Tax Credit"

	if input.ColoradoResidency == domain.ResidencyNo {
		return ineligibleResult(
			"You do not appear to qualify for the "+name+".",
			"You must be a Colorado resident to claim this credit.",
		)
	}

	if federal.Status == domain.StatusIneligible {
		return ineligibleResult(
			"You do not appear to qualify for the "+name+".",
			"You must qualify for the Federal Earned Income Tax Credit to claim the Colorado match.",
		)
	}

	benefit := roundToDollar(federal.EstimatedBenefit * ColoradoEITCRate)
	reasons := []string{
		fmt.Sprintf("Based on an estimated Federal Earned Income Tax Credit of $%.0f.", federal.EstimatedBenefit),
	}
	if input.ColoradoResidency == domain.ResidencyPartYear {
		reasons = append(reasons, partYearReason)
	}

	explanation := fmt.Sprintf("You appear to qualify for the %s, worth an estimated $%.0f.", name, benefit)
	if federal.Status == domain.StatusMaybe {
		explanation = fmt.Sprintf("You may qualify for the %s, worth up to $%.0f, depending on your federal EITC follow-ups.", name, benefit)
	}

	return domain.CreditResult{
		Status:           federal.Status,
		EstimatedBenefit: benefit,
		Explanation:      explanation,
		Reasons:          reasons,
	}
}

// CalculateCareWorkerCredit estimates the flat Colorado credit for
// residents who did enough paid care work during the year.
func CalculateCareWorkerCredit(input domain.TaxCreditInput) domain.CreditResult {
	const name = "Colorado Care Worker Credit"

	if !input.IsCareWorker || input.CareWorkerType == "" || input.CareWorkerType == domain.CareWorkerNone {
		return ineligibleResult(
			"You do not appear to qualify for the "+name+".",
			"You did not report qualifying care work.",
		)
	}

	if input.ColoradoResidency == domain.ResidencyNo {
		return ineligibleResult(
			"You do not appear to qualify for the "+name+".",
			"You must be a Colorado resident to claim this credit.",
		)
	}

	if input.CareWorkerHours < CareWorkerMinHours {
		return ineligibleResult(
			"You do not appear to qualify for the "+name+".",
			fmt.Sprintf("You must have worked at least %.0f care hours during the year.", CareWorkerMinHours),
		)
	}

	limit := CareWorkerIncomeLimit
	if input.FilingStatus == domain.FilingMarriedJoint {
		limit = CareWorkerIncomeLimitJoint
	}
	if input.AnnualIncome > limit {
		return ineligibleResult(
			"You do not appear to qualify for the "+name+".",
			fmt.Sprintf("Your annual income is above the $%.0f limit for your filing status.", limit),
		)
	}

	status := domain.StatusEligible
	reasons := []string{}
	if input.ColoradoResidency == domain.ResidencyPartYear {
		status = domain.StatusMaybe
		reasons = append(reasons, partYearReason)
	}

	explanation := fmt.Sprintf("You appear to qualify for the %s, worth $%.0f.", name, CareWorkerBenefit)
	if status == domain.StatusMaybe {
		explanation = fmt.Sprintf("You may qualify for the %s, worth up to $%.0f.", name, CareWorkerBenefit)
	}

	return domain.CreditResult{
		Status:           status,
		EstimatedBenefit: CareWorkerBenefit,
		Explanation:      explanation,
		Reasons:          reasons,
	}
}

// anyChildUnder reports whether at least one child is strictly under
// the given age.
func anyChildUnder(children []domain.ChildInfo, age int) bool {
	for _, child := range children {
		if child.Age < age {
			return true
		}
	}
	return false
}

// creditExplanation builds the one-line summary for a child-count based
// credit.
func creditExplanation(name string, status domain.EligibilityStatus, benefit float64, qualifying int) string {
	switch status {
	case domain.StatusEligible:
		return fmt.Sprintf("You appear to qualify for the %s, worth an estimated $%.0f for %d qualifying child(ren).", name, benefit, qualifying)
	case domain.StatusMaybe:
		return fmt.Sprintf("You may qualify for the %s, worth up to $%.0f, but some of your answers need follow-up.", name, benefit)
	default:
		return fmt.Sprintf("You do not appear to qualify for the %s.", name)
	}
}
