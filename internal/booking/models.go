// Package booking issues tracking identifiers and persists booking
// charges.
package booking

import (
	"errors"
	"time"

	"github.com/shipfare/shipfare/internal/pricing"
)

// Repository and service errors.
var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrDuplicateTrackingID = errors.New("tracking id already exists")
	ErrAlreadyFinalized    = errors.New("booking charge already finalized")
	ErrIDSpaceExhausted    = errors.New("tracking id attempts exhausted")
)

// ChargeStatus is the lifecycle state of a booking's charge.
type ChargeStatus string

// Charge statuses. A charge starts Estimated and moves one way to
// Finalized after physical pickup.
const (
	StatusEstimated ChargeStatus = "ESTIMATED"
	StatusFinalized ChargeStatus = "FINALIZED"
)

// Party identifies a sender or receiver.
type Party struct {
	Name       string
	Phone      string
	Address    string
	PostalCode string
}

// Product describes what is being shipped.
type Product struct {
	Description string
	WeightKg    float64
}

// BookingCharge binds a computed charge to a tracking id.
type BookingCharge struct {
	TrackingID  string
	Sender      Party
	Receiver    Party
	Product     Product
	Charge      pricing.Charge
	Status      ChargeStatus
	CreatedAt   time.Time
	FinalizedAt *time.Time
}
