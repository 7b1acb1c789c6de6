package service

import (
	"fmt"
	"math"

	"credit-estimator/domain"
)

// CalculateFederalCTC estimates the Federal Child Tax Credit for
// qualifying children under 17, with a stepped reduction above the
// income threshold for the filing status.
func CalculateFederalCTC(input domain.TaxCreditInput) domain.CreditResult {
	const name = "Federal Child Tax Credit"

	if !anyChildUnder(input.Children, FederalCTCMaxAge) {
		return ineligibleResult(
			"You do not appear to qualify for the "+name+".",
			fmt.Sprintf("This credit only covers children under %d, and none of your children are in that range.", FederalCTCMaxAge),
		)
	}

	if !input.HasEarnedIncome {
		return ineligibleResult(
			"You do not appear to qualify for the "+name+".",
			"You must have earned income from work to claim this credit.",
		)
	}

	tally := softenIfAnyQualify(tallyChildren(input.Children, func(age int) bool {
		return age < FederalCTCMaxAge
	}))

	reasons := tally.Issues
	base := float64(tally.QualifyingCount) * FederalCTCPerChild

	threshold := FederalCTCThreshold
	if input.FilingStatus == domain.FilingMarriedJoint {
		threshold = FederalCTCThresholdJoint
	}

	benefit := base
	if input.AnnualIncome > threshold {
		// The phase-out reduces the benefit, possibly to zero, but
		// never disqualifies on its own.
		steps := math.Ceil((input.AnnualIncome - threshold) / FederalCTCReductionStep)
		reduction := steps * FederalCTCReductionPerStep
		benefit = math.Max(0, base-reduction)
		reasons = append(reasons, fmt.Sprintf("Your income is above $%.0f, which reduces this credit by $%.0f.", threshold, math.Min(reduction, base)))
	}
	benefit = roundToDollar(benefit)

	return domain.CreditResult{
		Status:           tally.Status,
		EstimatedBenefit: benefit,
		Explanation:      creditExplanation(name, tally.Status, benefit, tally.QualifyingCount),
		Reasons:          reasons,
	}
}

// CalculateFederalEITC estimates the Federal Earned Income Tax Credit
// from the fixed income-limit and max-credit tables, applying a linear
// phase-in below 20% of the limit and a linear phase-out above 50%.
//
// Children who fully fail the qualifying-child checks are dropped from
// the count without disqualifying the filer; only the earned-income and
// zero-income checks produce a hard ineligible here.
func CalculateFederalEITC(input domain.TaxCreditInput) domain.CreditResult {
	const name = "Federal Earned Income Tax Credit"

	if !input.HasEarnedIncome || input.AnnualIncome == 0 {
		return ineligibleResult(
			"You do not appear to qualify for the "+name+".",
			"You must have earned income from work to claim this credit.",
		)
	}

	status := domain.StatusEligible
	reasons := []string{}
	qualifying := 0

	for i, child := range input.Children {
		q := CheckChildQualification(child)
		switch {
		case q.IsQualifying:
			qualifying++
		case q.Verdict == domain.StatusMaybe:
			status = domain.StatusMaybe
			for _, issue := range q.Issues {
				reasons = append(reasons, fmt.Sprintf("Child %d: %s", i+1, issue))
			}
		}
	}

	capped := qualifying
	if capped > FederalEITCMaxCountedChildren {
		capped = FederalEITCMaxCountedChildren
	}

	limits := federalEITCIncomeLimits
	if input.FilingStatus == domain.FilingMarriedJoint {
		limits = federalEITCIncomeLimitsJoint
	}
	limit := limits[capped]

	if input.AnnualIncome > limit {
		return ineligibleResult(
			"You do not appear to qualify for the "+name+".",
			fmt.Sprintf("Your annual income is above the $%.0f limit for your filing status and number of qualifying children.", limit),
		)
	}

	maxCredit := federalEITCMaxCredit[capped]
	phaseInEnd := limit * FederalEITCPhaseInFraction
	phaseOutStart := limit * FederalEITCPhaseOutFraction

	credit := maxCredit
	switch {
	case input.AnnualIncome < phaseInEnd:
		credit = maxCredit * (input.AnnualIncome / phaseInEnd)
	case input.AnnualIncome > phaseOutStart:
		credit = maxCredit * (1 - (input.AnnualIncome-phaseOutStart)/(limit-phaseOutStart))
	}
	benefit := roundToDollar(credit)

	explanation := fmt.Sprintf("You appear to qualify for the %s, worth an estimated $%.0f with %d qualifying child(ren).", name, benefit, qualifying)
	if status == domain.StatusMaybe {
		explanation = fmt.Sprintf("You may qualify for the %s, worth up to $%.0f, but some of your answers need follow-up.", name, benefit)
	}

	return domain.CreditResult{
		Status:           status,
		EstimatedBenefit: benefit,
		Explanation:      explanation,
		Reasons:          reasons,
	}
}
