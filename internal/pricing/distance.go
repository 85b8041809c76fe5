package pricing

import "math"

// DistanceRate is the fare curve for one point-to-point service class.
// The curve is flat up to IncludedKm, then linear in distance. It is
// monotonically non-decreasing by construction.
type DistanceRate struct {
	// MinimumFare is the floor for any trip, including degenerate
	// zero-distance requests. Never zero.
	MinimumFare Money
	// BaseFare covers the first IncludedKm kilometers.
	BaseFare Money
	// IncludedKm is the distance covered by BaseFare.
	IncludedKm float64
	// PerKm is charged for every kilometer beyond IncludedKm.
	PerKm Money
}

// DistanceRateConfig maps each point-to-point class to its fare curve.
// Loaded once at process start and treated as immutable.
type DistanceRateConfig map[ServiceClass]DistanceRate

// DefaultDistanceRates returns the operator's standard point-to-point curves.
func DefaultDistanceRates() DistanceRateConfig {
	return DistanceRateConfig{
		ClassTwoWheeler: {
			MinimumFare: 3000, // 30.00
			BaseFare:    3000,
			IncludedKm:  3,
			PerKm:       1000, // 10.00/km
		},
		ClassLightVehicle: {
			MinimumFare: 12000, // 120.00
			BaseFare:    12000,
			IncludedKm:  4,
			PerKm:       2500, // 25.00/km
		},
	}
}

// FareFromDistance converts a routed distance into a base fare for the given
// service class. Distances at or below zero price at the class minimum.
// The result is rounded half-up to the paisa.
func FareFromDistance(distanceMeters float64, class ServiceClass, rates DistanceRateConfig) (Money, error) {
	rate, ok := rates[class]
	if !ok {
		return 0, ErrUnknownClass
	}

	km := distanceMeters / 1000
	if km <= 0 {
		return rate.MinimumFare, nil
	}

	fare := rate.BaseFare
	if km > rate.IncludedKm {
		extra := float64(rate.PerKm) * (km - rate.IncludedKm)
		fare += Money(math.Floor(extra + 0.5))
	}

	if fare < rate.MinimumFare {
		fare = rate.MinimumFare
	}
	return fare, nil
}
