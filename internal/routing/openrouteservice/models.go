package openrouteservice

// orsRequest is the ORS directions API request body.
type orsRequest struct {
	// Coordinates are [lon, lat] pairs, GeoJSON order.
	Coordinates [][]float64 `json:"coordinates"`
	Geometry    bool        `json:"geometry"`
	Units       string      `json:"units"`
}

// orsResponse is the ORS directions API response.
type orsResponse struct {
	Routes []orsRoute `json:"routes"`
}

// orsRoute is a single route in the ORS response.
type orsRoute struct {
	Summary  routeSummary `json:"summary"`
	Geometry string       `json:"geometry"`
}

// routeSummary carries the totals for a route.
type routeSummary struct {
	Distance float64 `json:"distance"` // meters
	Duration float64 `json:"duration"` // seconds
}

// orsErrorResponse is an error payload from ORS.
type orsErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ORS error codes used for mapping to the domain taxonomy.
const (
	orsErrorCodeNotFound = 2009 // no routable point / route not found
)
