package rates

import (
	"context"
	"sync"

	"github.com/shipfare/shipfare/internal/pricing"
)

// InMemoryRepository is an in-memory implementation of Repository.
// This is intended for testing. Production should use PostgresRepository.
type InMemoryRepository struct {
	mu    sync.RWMutex
	rates []pricing.ZoneRate
}

// NewInMemoryRepository creates a new in-memory zone rate repository.
func NewInMemoryRepository(zoneRates []pricing.ZoneRate) *InMemoryRepository {
	return &InMemoryRepository{rates: append([]pricing.ZoneRate(nil), zoneRates...)}
}

// ListZoneRates returns every stored zone pair rate.
func (r *InMemoryRepository) ListZoneRates(_ context.Context) ([]pricing.ZoneRate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.rates) == 0 {
		return nil, ErrNoRates
	}

	return append([]pricing.ZoneRate(nil), r.rates...), nil
}

// SetZoneRates replaces the stored rates.
func (r *InMemoryRepository) SetZoneRates(zoneRates []pricing.ZoneRate) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rates = append([]pricing.ZoneRate(nil), zoneRates...)
}

// Ensure InMemoryRepository implements Repository interface.
var _ Repository = (*InMemoryRepository)(nil)
