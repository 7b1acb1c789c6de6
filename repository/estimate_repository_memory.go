package repository

import (
	"sync"

	"github.com/google/uuid"

	"credit-estimator/domain"
)

// StoredEstimate is one saved estimate.
type StoredEstimate struct {
	ID      string
	Input   domain.TaxCreditInput
	Results domain.TaxCreditResults
}

// EstimateRepositoryMemory is an in-memory implementation of
// EstimateRepository.
type EstimateRepositoryMemory struct {
	mu   sync.Mutex
	data []StoredEstimate
}

// NewEstimateRepositoryMemory creates a new in-memory estimate
// repository.
func NewEstimateRepositoryMemory() *EstimateRepositoryMemory {
	return &EstimateRepositoryMemory{
		data: []StoredEstimate{},
	}
}

// Save stores the estimate in memory and returns its generated id.
func (r *EstimateRepositoryMemory) Save(
	input domain.TaxCreditInput,
	results domain.TaxCreditResults,
) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.NewString()
	r.data = append(r.data, StoredEstimate{
		ID:      id,
		Input:   input,
		Results: results,
	})
	return id, nil
}

// Count returns how many estimates have been saved.
func (r *EstimateRepositoryMemory) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.data)
}
