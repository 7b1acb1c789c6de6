package repository

import (
	"testing"

	"credit-estimator/domain"
)

func TestEstimateRepositoryMemory_SaveAssignsUniqueIDs(t *testing.T) {
	repo := NewEstimateRepositoryMemory()

	first, err := repo.Save(domain.TaxCreditInput{}, domain.TaxCreditResults{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := repo.Save(domain.TaxCreditInput{}, domain.TaxCreditResults{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == "" || second == "" {
		t.Errorf("expected non-empty ids")
	}
	if first == second {
		t.Errorf("expected unique ids, got %q twice", first)
	}
	if repo.Count() != 2 {
		t.Errorf("expected 2 stored estimates, got %d", repo.Count())
	}
}

func TestMockCache_RoundTrip(t *testing.T) {
	cache := NewMockCache()

	if _, ok := cache.Get("missing"); ok {
		t.Errorf("expected miss for unknown key")
	}

	if err := cache.Set("k", "v"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val, ok := cache.Get("k"); !ok || val != "v" {
		t.Errorf("expected cached value, got %q (%v)", val, ok)
	}
}
