package booking

import (
	"context"
	"sync"
	"time"

	"github.com/shipfare/shipfare/internal/pricing"
)

// InMemoryRepository is an in-memory implementation of Repository.
// This is intended for testing. Production should use PostgresRepository.
type InMemoryRepository struct {
	mu       sync.RWMutex
	bookings map[string]*BookingCharge
}

// NewInMemoryRepository creates a new in-memory booking repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		bookings: make(map[string]*BookingCharge),
	}
}

// Create inserts a new booking charge.
func (r *InMemoryRepository) Create(_ context.Context, bc *BookingCharge) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bookings[bc.TrackingID]; exists {
		return ErrDuplicateTrackingID
	}

	cpy := *bc
	r.bookings[bc.TrackingID] = &cpy
	return nil
}

// Get retrieves a booking charge by tracking id.
func (r *InMemoryRepository) Get(_ context.Context, trackingID string) (*BookingCharge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bc, ok := r.bookings[trackingID]
	if !ok {
		return nil, ErrBookingNotFound
	}

	cpy := *bc
	return &cpy, nil
}

// Finalize replaces an estimated charge with the final one.
func (r *InMemoryRepository) Finalize(_ context.Context, trackingID string, charge pricing.Charge) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bc, ok := r.bookings[trackingID]
	if !ok {
		return ErrBookingNotFound
	}
	if bc.Status == StatusFinalized {
		return ErrAlreadyFinalized
	}

	now := time.Now()
	bc.Charge = charge
	bc.Status = StatusFinalized
	bc.FinalizedAt = &now
	return nil
}

// Ensure InMemoryRepository implements Repository interface.
var _ Repository = (*InMemoryRepository)(nil)
