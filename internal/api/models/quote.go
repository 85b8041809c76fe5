package models

// DistanceQuoteRequest is the request body for a distance-priced
// quote (point-to-point trips).
type DistanceQuoteRequest struct {
	Origin       Point  `json:"origin" validate:"required"`
	Destination  Point  `json:"destination" validate:"required"`
	ServiceClass string `json:"serviceClass" validate:"required,oneof=TWO_WHEELER LIGHT_VEHICLE"`
}

// DistanceQuoteResponse is the response for a distance-priced quote.
type DistanceQuoteResponse struct {
	QuoteID         string    `json:"quoteId"`
	ServiceClass    string    `json:"serviceClass"`
	DistanceMeters  int       `json:"distanceMeters"`
	DurationSeconds int       `json:"durationSeconds"`
	Fare            Money     `json:"fare"`
	Provider        string    `json:"provider"`
	Bounds          *GeoBox   `json:"bounds,omitempty"`
	GeneratedAt     Timestamp `json:"generatedAt"`
	Warnings        []Warning `json:"warnings,omitempty"`
}

// ZoneQuoteRequest is the request body for a zone-priced cargo quote.
type ZoneQuoteRequest struct {
	OriginZone      string  `json:"originZone" validate:"required"`
	DestinationZone string  `json:"destinationZone" validate:"required"`
	WeightKg        float64 `json:"weightKg" validate:"required,gt=0"`
	ServiceClass    string  `json:"serviceClass" validate:"required,oneof=CARGO_STANDARD CARGO_EXPRESS"`
}

// ZoneQuoteResponse is the response for a zone-priced cargo quote.
type ZoneQuoteResponse struct {
	QuoteID         string    `json:"quoteId"`
	ServiceClass    string    `json:"serviceClass"`
	OriginZone      string    `json:"originZone"`
	DestinationZone string    `json:"destinationZone"`
	WeightTier      string    `json:"weightTier"`
	Fare            Money     `json:"fare"`
	GeneratedAt     Timestamp `json:"generatedAt"`
}
