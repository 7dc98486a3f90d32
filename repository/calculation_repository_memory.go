package repository

import (
	"context"
	"sync"

	"finance-engine/domain"
)

// CalculationRepositoryMemory is an in-memory implementation of CalculationRepository.
// It keeps at most capacity records, dropping the oldest.
type CalculationRepositoryMemory struct {
	mu       sync.RWMutex
	capacity int
	data     []domain.Calculation
}

// NewCalculationRepositoryMemory creates a new in-memory calculation repository.
func NewCalculationRepositoryMemory(capacity int) *CalculationRepositoryMemory {
	return &CalculationRepositoryMemory{
		capacity: capacity,
		data:     []domain.Calculation{},
	}
}

// Save stores the calculation in memory.
func (r *CalculationRepositoryMemory) Save(_ context.Context, calc domain.Calculation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, calc)
	if r.capacity > 0 && len(r.data) > r.capacity {
		r.data = append([]domain.Calculation(nil), r.data[len(r.data)-r.capacity:]...)
	}
	return nil
}

func (r *CalculationRepositoryMemory) Recent(_ context.Context, limit int) ([]domain.Calculation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.Calculation{}
	for i := len(r.data) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.data[i])
	}
	return out, nil
}
