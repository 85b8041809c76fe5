package pricing

import "errors"

// Sentinel errors for fare computation.
var (
	// ErrUnknownClass indicates a service class the rate config does not cover.
	ErrUnknownClass = errors.New("unknown service class")
	// ErrInvalidWeight indicates a zero or negative shipment weight.
	ErrInvalidWeight = errors.New("weight must be greater than zero")
	// ErrUnsupportedRoute indicates the zone pair has no rate entry. This is
	// an expected outcome, not a failure: the shipment must go to an
	// alternate carrier rather than being priced at zero.
	ErrUnsupportedRoute = errors.New("no rate for zone pair")
	// ErrInvalidCharge indicates a negative base fare or surcharge component.
	// Negative amounts are an upstream defect, never a discount.
	ErrInvalidCharge = errors.New("charge components must not be negative")
)

// ServiceClass selects the fare curve for a booking. A booking is priced
// either point-to-point by distance (two-wheeler, light vehicle) or
// zone-to-zone by weight (cargo standard, cargo express), never both.
type ServiceClass string

const (
	// ClassTwoWheeler is a live-routed bike/scooter trip.
	ClassTwoWheeler ServiceClass = "TWO_WHEELER"
	// ClassLightVehicle is a live-routed van/tempo trip.
	ClassLightVehicle ServiceClass = "LIGHT_VEHICLE"
	// ClassCargoStandard is a fixed-rate cross-region shipment.
	ClassCargoStandard ServiceClass = "CARGO_STANDARD"
	// ClassCargoExpress is a cross-region shipment at the express multiplier.
	ClassCargoExpress ServiceClass = "CARGO_EXPRESS"
)

// IsPointToPoint reports whether the class is priced by routed distance.
func (c ServiceClass) IsPointToPoint() bool {
	return c == ClassTwoWheeler || c == ClassLightVehicle
}

// IsCargo reports whether the class is priced by weight over a zone pair.
func (c ServiceClass) IsCargo() bool {
	return c == ClassCargoStandard || c == ClassCargoExpress
}

// WeightTier is one of the three weight bands of the zone rate table.
type WeightTier int

const (
	// TierUpTo1kg covers weights up to and including 1kg.
	TierUpTo1kg WeightTier = iota
	// TierUpTo5kg covers weights above 1kg up to and including 5kg.
	TierUpTo5kg
	// TierAbove5kg covers everything heavier.
	TierAbove5kg
)

func (t WeightTier) String() string {
	switch t {
	case TierUpTo1kg:
		return "upto_1kg"
	case TierUpTo5kg:
		return "upto_5kg"
	case TierAbove5kg:
		return "above_5kg"
	default:
		return "unknown"
	}
}

// DeriveTier maps a positive weight in kilograms to its tier using inclusive
// upper bounds. Weight validation happens before tier derivation.
func DeriveTier(weightKg float64) (WeightTier, error) {
	if weightKg <= 0 {
		return 0, ErrInvalidWeight
	}
	switch {
	case weightKg <= 1:
		return TierUpTo1kg, nil
	case weightKg <= 5:
		return TierUpTo5kg, nil
	default:
		return TierAbove5kg, nil
	}
}
