package models

// PartyInput identifies a sender or receiver on a booking.
type PartyInput struct {
	Name       string `json:"name" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Address    string `json:"address" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
}

// ProductInput describes what is being shipped.
type ProductInput struct {
	Description string  `json:"description" validate:"required"`
	WeightKg    float64 `json:"weightKg" validate:"required,gt=0"`
}

// Surcharges are the optional named add-on amounts in rupees. Unset
// components are zero.
type Surcharges struct {
	Pickup    Money `json:"pickup,omitempty"`
	Delivery  Money `json:"delivery,omitempty"`
	Handling  Money `json:"handling,omitempty"`
	Docket    Money `json:"docket,omitempty"`
	Packaging Money `json:"packaging,omitempty"`
	ExtraMile Money `json:"extraMile,omitempty"`
}

// BookingCreateRequest creates a booking with a zone-priced charge.
// The sender and receiver postal codes double as the rate zones.
type BookingCreateRequest struct {
	Sender       PartyInput   `json:"sender" validate:"required"`
	Receiver     PartyInput   `json:"receiver" validate:"required"`
	Product      ProductInput `json:"product" validate:"required"`
	ServiceClass string       `json:"serviceClass" validate:"required,oneof=CARGO_STANDARD CARGO_EXPRESS"`
	Surcharges   Surcharges   `json:"surcharges"`
}

// BookingFinalizeRequest replaces the estimated charge after physical
// pickup, re-aggregating from the re-measured weight.
type BookingFinalizeRequest struct {
	WeightKg     float64    `json:"weightKg" validate:"required,gt=0"`
	ServiceClass string     `json:"serviceClass" validate:"required,oneof=CARGO_STANDARD CARGO_EXPRESS"`
	Surcharges   Surcharges `json:"surcharges"`
}

// ChargeBreakdown itemizes a booking's charge in rupees.
type ChargeBreakdown struct {
	Base       Money      `json:"base"`
	Surcharges Surcharges `json:"surcharges"`
	Total      Money      `json:"total"`
}

// BookingResponse represents a booking charge bound to a tracking id.
type BookingResponse struct {
	TrackingID  string          `json:"trackingId"`
	Status      string          `json:"status"`
	Sender      PartyInput      `json:"sender"`
	Receiver    PartyInput      `json:"receiver"`
	Product     ProductInput    `json:"product"`
	Charge      ChargeBreakdown `json:"charge"`
	CreatedAt   Timestamp       `json:"createdAt"`
	FinalizedAt *Timestamp      `json:"finalizedAt,omitempty"`
}
