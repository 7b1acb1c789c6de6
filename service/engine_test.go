package service

import (
	"reflect"
	"testing"

	"credit-estimator/domain"
)

func TestCalculateAll_TotalSumsOnlyEligibleBenefits(t *testing.T) {
	input := singleResidentInput()
	input.AnnualIncome = 20000

	results := CalculateAll(input)

	var expected float64
	for _, result := range []domain.CreditResult{
		results.ColoradoCTC,
		results.ColoradoFATC,
		results.ColoradoEITC,
		results.ColoradoCareWorker,
		results.FederalCTC,
		results.FederalEITC,
	} {
		if result.EstimatedBenefit < 0 {
			t.Errorf("estimated benefit must never be negative, got %.2f", result.EstimatedBenefit)
		}
		if result.Status == domain.StatusEligible {
			expected += result.EstimatedBenefit
		}
	}

	if results.TotalEstimatedBenefit != expected {
		t.Errorf("expected total %.2f, got %.2f", expected, results.TotalEstimatedBenefit)
	}
	if results.TotalEstimatedBenefit < 0 {
		t.Errorf("total must never be negative")
	}
}

func TestCalculateAll_MaybeContributesNothingToTotal(t *testing.T) {
	input := singleResidentInput()
	input.AnnualIncome = 20000
	input.ColoradoResidency = domain.ResidencyPartYear

	results := CalculateAll(input)

	// Part-year residency turns the Colorado child credits into maybe;
	// their non-zero estimates must not be in the total.
	if results.ColoradoCTC.Status != domain.StatusMaybe {
		t.Fatalf("expected maybe Colorado CTC, got %s", results.ColoradoCTC.Status)
	}
	if results.ColoradoCTC.EstimatedBenefit == 0 {
		t.Fatalf("maybe result should still carry its estimate")
	}

	var eligibleSum float64
	for _, result := range []domain.CreditResult{
		results.ColoradoCTC,
		results.ColoradoFATC,
		results.ColoradoEITC,
		results.ColoradoCareWorker,
		results.FederalCTC,
		results.FederalEITC,
	} {
		if result.Status == domain.StatusEligible {
			eligibleSum += result.EstimatedBenefit
		}
	}
	if results.TotalEstimatedBenefit != eligibleSum {
		t.Errorf("expected total %.2f, got %.2f", eligibleSum, results.TotalEstimatedBenefit)
	}
}

func TestCalculateAll_ColoradoEITCIsHalfFederal(t *testing.T) {
	input := singleResidentInput()
	input.AnnualIncome = 20000

	results := CalculateAll(input)

	if results.FederalEITC.Status != domain.StatusEligible {
		t.Fatalf("expected eligible federal EITC, got %s", results.FederalEITC.Status)
	}
	expected := roundToDollar(results.FederalEITC.EstimatedBenefit * ColoradoEITCRate)
	if results.ColoradoEITC.EstimatedBenefit != expected {
		t.Errorf("expected %.2f, got %.2f", expected, results.ColoradoEITC.EstimatedBenefit)
	}
}

func TestCalculateAll_Idempotent(t *testing.T) {
	input := domain.TaxCreditInput{
		FilingStatus:      domain.FilingHeadOfHousehold,
		ColoradoResidency: domain.ResidencyPartYear,
		HasEarnedIncome:   true,
		AnnualIncome:      43000,
		Children: []domain.ChildInfo{
			{Age: 2, LivesWithYou: domain.AnswerYes, Relationship: domain.RelationshipBiological, HasValidID: domain.AnswerNotSure},
			{Age: 9, LivesWithYou: domain.AnswerNotSure, Relationship: domain.RelationshipOther, HasValidID: domain.AnswerYes},
			{Age: 16, LivesWithYou: domain.AnswerYes, Relationship: domain.RelationshipFoster, HasValidID: domain.AnswerYes},
		},
		IsCareWorker:    true,
		CareWorkerType:  domain.CareWorkerChildCare,
		CareWorkerHours: 900,
	}

	first := CalculateAll(input)
	second := CalculateAll(input)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical input must produce identical output:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestCalculateAll_ChildCareExpensesAreUnused(t *testing.T) {
	base := singleResidentInput()

	withExpenses := base
	withExpenses.HasChildCareExpenses = true
	withExpenses.ChildCareExpenses = 6000

	if !reflect.DeepEqual(CalculateAll(base), CalculateAll(withExpenses)) {
		t.Errorf("childcare expense fields are reserved and must not change any result")
	}
}
