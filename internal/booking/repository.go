package booking

import (
	"context"

	"github.com/shipfare/shipfare/internal/pricing"
)

// Repository defines the interface for booking charge persistence.
// The store's unique constraint on tracking_id is the authority on
// collisions; Create maps a constraint violation to
// ErrDuplicateTrackingID so the caller can regenerate.
type Repository interface {
	// Create inserts a new booking charge.
	// Returns ErrDuplicateTrackingID when the tracking id is taken.
	Create(ctx context.Context, bc *BookingCharge) error

	// Get retrieves a booking charge by tracking id.
	// Returns ErrBookingNotFound if no booking exists.
	Get(ctx context.Context, trackingID string) (*BookingCharge, error)

	// Finalize replaces an estimated charge with the final one and
	// stamps finalized_at. Returns ErrBookingNotFound if no booking
	// exists and ErrAlreadyFinalized if the charge was finalized
	// before.
	Finalize(ctx context.Context, trackingID string, charge pricing.Charge) error
}
