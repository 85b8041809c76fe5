// Package routing computes point-to-point route metrics through an external
// routing provider. It is the single place where network non-determinism
// enters the pricing engine: everything downstream consumes a resolved
// RouteMetrics value.
package routing

import (
	"context"
	"errors"
	"time"

	"github.com/shipfare/shipfare/internal/pricing"
)

// Sentinel errors for routing operations.
var (
	// ErrRouteNotFound indicates no route exists between the given points.
	// Never retried.
	ErrRouteNotFound = errors.New("no route found between the given points")
	// ErrProviderUnavailable indicates the provider is down, timed out, or
	// the circuit breaker is open. Eligible for one bounded retry.
	ErrProviderUnavailable = errors.New("routing provider unavailable")
	// ErrRateLimited indicates the provider quota has been exceeded.
	ErrRateLimited = errors.New("routing provider rate limit exceeded")
	// ErrMalformedResponse indicates the provider returned a payload that
	// could not be interpreted.
	ErrMalformedResponse = errors.New("malformed routing provider response")
	// ErrInvalidCoordinates indicates coordinates outside valid ranges.
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)

// Provider is a routing data source.
type Provider interface {
	// ComputeRoute resolves distance, duration and path geometry for a
	// single origin/destination pair.
	ComputeRoute(ctx context.Context, req RouteRequest) (*RouteMetrics, error)
	// Name returns the provider identifier for logging and metrics.
	Name() string
}

// RouteProfile is the provider-side vehicle profile used for routing.
type RouteProfile string

const (
	// ProfileTwoWheeler routes motorbike couriers. Nearest supported
	// provider profile; there is no dedicated motorcycle profile.
	ProfileTwoWheeler RouteProfile = "driving-car"
	// ProfileLightVehicle routes vans and tempos.
	ProfileLightVehicle RouteProfile = "driving-hgv"
)

// ProfileForClass maps a point-to-point service class to a routing profile.
func ProfileForClass(class pricing.ServiceClass) (RouteProfile, error) {
	switch class {
	case pricing.ClassTwoWheeler:
		return ProfileTwoWheeler, nil
	case pricing.ClassLightVehicle:
		return ProfileLightVehicle, nil
	default:
		return "", pricing.ErrUnknownClass
	}
}

// Coordinate is a geographic point.
type Coordinate struct {
	Lat float64
	Lon float64
}

// RouteRequest asks for metrics on one origin/destination pair.
type RouteRequest struct {
	Origin      Coordinate
	Destination Coordinate
	Profile     RouteProfile
}

// RouteMetrics is the resolved result of a routing call. Immutable once
// returned; pricing consumes distance and duration, display consumes the
// encoded path.
type RouteMetrics struct {
	DistanceMeters  int
	DurationSeconds int
	// EncodedPath is the provider's polyline geometry. May be empty; a
	// missing path never blocks pricing.
	EncodedPath string
	Provider    string
	FetchedAt   time.Time
}

// Error carries provider detail alongside the sentinel taxonomy.
type Error struct {
	Provider string
	Code     string
	Message  string
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether one bounded retry is allowed. Only provider
// unavailability qualifies; a missing route or a rate limit never does.
func (e *Error) IsRetryable() bool {
	return errors.Is(e.Err, ErrProviderUnavailable)
}
