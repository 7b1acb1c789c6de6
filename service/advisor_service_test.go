package service

import (
	"strings"
	"testing"

	"credit-estimator/domain"
)

func TestAdvisorFallbackNote_EligibleCredits(t *testing.T) {
	results := CalculateAll(singleResidentInput())
	eligible, followUps := summarizeStatuses(results)

	if len(eligible) == 0 {
		t.Fatalf("expected eligible credits in the fixture")
	}

	note := fallbackNote(results, eligible, followUps)
	if !strings.Contains(note, "appear to qualify") {
		t.Errorf("note should mention qualification: %q", note)
	}
	if !strings.Contains(note, "not tax advice") {
		t.Errorf("note should carry the disclaimer: %q", note)
	}
}

func TestAdvisorFallbackNote_NothingQualifies(t *testing.T) {
	input := domain.TaxCreditInput{
		FilingStatus:      domain.FilingSingle,
		ColoradoResidency: domain.ResidencyNo,
		HasEarnedIncome:   false,
	}
	results := CalculateAll(input)
	eligible, followUps := summarizeStatuses(results)

	if len(eligible) != 0 || len(followUps) != 0 {
		t.Fatalf("fixture should have no qualifying credits, got %v / %v", eligible, followUps)
	}

	note := fallbackNote(results, eligible, followUps)
	if !strings.Contains(note, "do not appear to qualify") {
		t.Errorf("unexpected note: %q", note)
	}
}

func TestSummarizeStatuses_SplitsByStatus(t *testing.T) {
	input := singleResidentInput()
	input.ColoradoResidency = domain.ResidencyPartYear
	results := CalculateAll(input)

	eligible, followUps := summarizeStatuses(results)

	// Part-year turns the Colorado child credits into follow-ups while
	// the federal credits stay eligible.
	for _, name := range followUps {
		if strings.HasPrefix(name, "Federal") {
			t.Errorf("federal credit %q should not be a follow-up here", name)
		}
	}
	if len(eligible) == 0 {
		t.Errorf("expected at least one eligible federal credit")
	}
}

// The advisor must never be consulted without a key; the note comes
// from the deterministic fallback.
func TestGenerateEstimateNote_DisabledUsesFallback(t *testing.T) {
	advisor := &AdvisorService{enabled: false}
	input := singleResidentInput()
	results := CalculateAll(input)

	note := advisor.GenerateEstimateNote(input, results)
	if note == "" {
		t.Errorf("expected a fallback note")
	}
}
