package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/cespare/xxhash/v2"

	"credit-estimator/domain"
	"credit-estimator/repository"
)

// EstimatorService wraps the pure rules engine with persistence,
// caching and the advisor note.
type EstimatorService struct {
	repo    repository.EstimateRepository
	cache   repository.CacheRepository
	advisor *AdvisorService
}

// NewEstimatorService creates an EstimatorService. The advisor may be
// nil, in which case no note is attached to the response.
func NewEstimatorService(
	repo repository.EstimateRepository,
	cache repository.CacheRepository,
	advisor *AdvisorService,
) *EstimatorService {
	return &EstimatorService{repo: repo, cache: cache, advisor: advisor}
}

// Estimate validates the input, runs the six credit calculators and
// returns the results together with the stored estimate id. The engine
// is deterministic, so results are cached keyed by a hash of the input.
func (s *EstimatorService) Estimate(input domain.TaxCreditInput) (domain.EstimateResponse, error) {
	if err := validateInput(input); err != nil {
		return domain.EstimateResponse{}, err
	}

	key := cacheKey(input)
	results, hit := s.cachedResults(key)
	if !hit {
		results = CalculateAll(input)
		if data, err := json.Marshal(results); err == nil {
			if err := s.cache.Set(key, string(data)); err != nil {
				log.Printf("Warning: failed to cache estimate: %v", err)
			}
		}
	}

	// Persisting the estimate is not critical; the filer still gets
	// their results if it fails.
	id, err := s.repo.Save(input, results)
	if err != nil {
		log.Printf("Warning: failed to save estimate: %v", err)
		id = ""
	}

	response := domain.EstimateResponse{ID: id, Results: results}
	if s.advisor != nil {
		response.AdvisorNote = s.advisor.GenerateEstimateNote(input, results)
	}

	return response, nil
}

func (s *EstimatorService) cachedResults(key string) (domain.TaxCreditResults, bool) {
	raw, ok := s.cache.Get(key)
	if !ok {
		return domain.TaxCreditResults{}, false
	}

	var results domain.TaxCreditResults
	if err := json.Unmarshal([]byte(raw), &results); err != nil {
		log.Printf("Warning: discarding malformed cached estimate: %v", err)
		return domain.TaxCreditResults{}, false
	}
	return results, true
}

// cacheKey derives a deterministic key from the marshalled input.
func cacheKey(input domain.TaxCreditInput) string {
	data, err := json.Marshal(input)
	if err != nil {
		return "estimate:unkeyed"
	}
	return fmt.Sprintf("estimate:%016x", xxhash.Sum64(data))
}

func validateInput(input domain.TaxCreditInput) error {
	if !input.FilingStatus.IsValid() {
		return errors.New("invalid filing status")
	}
	if !input.ColoradoResidency.IsValid() {
		return errors.New("invalid Colorado residency")
	}
	if input.AnnualIncome < 0 {
		return errors.New("annual income cannot be negative")
	}
	if input.AnnualIncome > MaxAnnualIncome {
		return fmt.Errorf("annual income exceeds the maximum of $%.0f", MaxAnnualIncome)
	}
	if len(input.Children) > MaxChildrenPerRequest {
		return fmt.Errorf("number of children exceeds the maximum of %d", MaxChildrenPerRequest)
	}
	if input.CareWorkerHours < 0 {
		return errors.New("care worker hours cannot be negative")
	}

	for i, child := range input.Children {
		if child.Age < 0 || child.Age > MaxChildAge {
			return fmt.Errorf("child %d: age must be between 0 and %d", i+1, MaxChildAge)
		}
		if !child.LivesWithYou.IsValid() {
			return fmt.Errorf("child %d: invalid residency answer", i+1)
		}
		if !child.Relationship.IsValid() {
			return fmt.Errorf("child %d: invalid relationship", i+1)
		}
		if !child.HasValidID.IsValid() {
			return fmt.Errorf("child %d: invalid ID answer", i+1)
		}
	}

	return nil
}
