package service

import "credit-estimator/domain"

// Amounts and thresholds are simplified placeholders for screening
// purposes. They are not a statement of current tax law.
const (
	// Colorado Child Tax Credit (children under 6)
	ColoradoCTCPerChild         = 2000.0
	ColoradoCTCMaxAge           = 6 // strictly under
	ColoradoCTCIncomeLimitJoint = 85000.0
	ColoradoCTCIncomeLimit      = 75000.0

	// Colorado Family Affordability Tax Credit
	FATCUnder6Benefit = 3200.0
	FATCOlderBenefit  = 2400.0 // ages 6 through 16

	// Colorado EITC is a fixed share of the federal credit
	ColoradoEITCRate = 0.5

	// Colorado Care Worker Credit
	CareWorkerBenefit          = 1200.0
	CareWorkerMinHours         = 720.0
	CareWorkerIncomeLimitJoint = 100000.0
	CareWorkerIncomeLimit      = 75000.0

	// Federal Child Tax Credit
	FederalCTCPerChild         = 2000.0
	FederalCTCMaxAge           = 17 // strictly under
	FederalCTCThresholdJoint   = 400000.0
	FederalCTCThreshold        = 200000.0
	FederalCTCReductionStep    = 1000.0
	FederalCTCReductionPerStep = 50.0

	// Federal EITC
	FederalEITCMaxCountedChildren = 3
	// Phase boundaries as fractions of the income limit
	FederalEITCPhaseInFraction  = 0.2
	FederalEITCPhaseOutFraction = 0.5

	// Input validation limits
	MaxChildrenPerRequest = 12
	MaxChildAge           = 18
	MaxAnnualIncome       = 100_000_000.0
)

// fatcPhaseOutBand is the linear phase-out band for the FATC, keyed by
// filing status. At or above End the credit is fully phased out.
type fatcPhaseOutBand struct {
	Start float64
	End   float64
}

var fatcPhaseOut = map[domain.FilingStatus]fatcPhaseOutBand{
	domain.FilingSingle:          {Start: 75000, End: 100000},
	domain.FilingHeadOfHousehold: {Start: 85000, End: 110000},
	domain.FilingMarriedJoint:    {Start: 85000, End: 110000},
	domain.FilingMarriedSeparate: {Start: 75000, End: 100000},
}

// Federal EITC lookup tables, keyed by qualifying-child count capped at
// FederalEITCMaxCountedChildren. Single, head-of-household and
// married-separate share one limit table; married-joint has its own.
var (
	federalEITCIncomeLimits = map[int]float64{
		0: 18591,
		1: 49084,
		2: 55768,
		3: 59899,
	}

	federalEITCIncomeLimitsJoint = map[int]float64{
		0: 25511,
		1: 56004,
		2: 62688,
		3: 66819,
	}

	federalEITCMaxCredit = map[int]float64{
		0: 632,
		1: 4213,
		2: 6960,
		3: 7830,
	}
)

// annualMultipliers converts a per-period pay amount to a yearly figure.
// "other" is treated the same as monthly.
var annualMultipliers = map[domain.PayFrequency]float64{
	domain.PayWeekly:      52,
	domain.PayBiweekly:    26,
	domain.PaySemiMonthly: 24,
	domain.PayMonthly:     12,
	domain.PayOther:       12,
}
