// Package handler provides HTTP handlers for the ShipFare API.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shipfare/shipfare/internal/api/middleware"
	"github.com/shipfare/shipfare/internal/api/models"
	"github.com/shipfare/shipfare/internal/api/response"
	"github.com/shipfare/shipfare/internal/pricing"
	"github.com/shipfare/shipfare/internal/rates"
	"github.com/shipfare/shipfare/internal/routing"
	"github.com/shipfare/shipfare/pkg/polyline"
)

// QuoteHandler handles fare quote endpoints.
type QuoteHandler struct {
	routes        *routing.Service
	rates         *rates.Service
	distanceRates pricing.DistanceRateConfig
	logger        zerolog.Logger
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(routes *routing.Service, rateService *rates.Service, distanceRates pricing.DistanceRateConfig, logger zerolog.Logger) *QuoteHandler {
	if distanceRates == nil {
		distanceRates = pricing.DefaultDistanceRates()
	}
	return &QuoteHandler{
		routes:        routes,
		rates:         rateService,
		distanceRates: distanceRates,
		logger:        logger.With().Str("component", "quote_handler").Logger(),
	}
}

// DistanceQuote handles POST /v1/quotes/distance - live-routed
// point-to-point pricing.
func (h *QuoteHandler) DistanceQuote(w http.ResponseWriter, r *http.Request) {
	var req models.DistanceQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "invalid request body", nil)
		return
	}

	class := pricing.ServiceClass(req.ServiceClass)
	if !class.IsPointToPoint() {
		response.BadRequest(w, r, "serviceClass must be TWO_WHEELER or LIGHT_VEHICLE", []models.FieldError{
			{Field: "serviceClass", Message: "unknown point-to-point service class", Code: "invalid_enum"},
		})
		return
	}

	profile, err := routing.ProfileForClass(class)
	if err != nil {
		response.BadRequest(w, r, "serviceClass must be TWO_WHEELER or LIGHT_VEHICLE", nil)
		return
	}

	metrics, err := h.routes.ComputeRoute(r.Context(), routing.RouteRequest{
		Origin:      routing.Coordinate{Lat: req.Origin.Lat, Lon: req.Origin.Lon},
		Destination: routing.Coordinate{Lat: req.Destination.Lat, Lon: req.Destination.Lon},
		Profile:     profile,
	})
	if err != nil {
		h.writeRoutingError(w, r, err)
		return
	}

	fare, err := pricing.FareFromDistance(float64(metrics.DistanceMeters), class, h.distanceRates)
	if err != nil {
		requestID := middleware.GetRequestID(r.Context())
		h.logger.Error().Err(err).Str("request_id", requestID).Msg("distance fare computation failed")
		response.InternalError(w, r, "failed to compute fare")
		return
	}

	resp := models.DistanceQuoteResponse{
		QuoteID:         "qte_" + uuid.New().String()[:22],
		ServiceClass:    string(class),
		DistanceMeters:  metrics.DistanceMeters,
		DurationSeconds: metrics.DurationSeconds,
		Fare:            models.Money(fare.Rupees()),
		Provider:        metrics.Provider,
		GeneratedAt:     models.Timestamp(time.Now()),
	}

	// A malformed path breaks map display, not pricing. Surface it as
	// a warning and omit the bounds.
	if metrics.EncodedPath != "" {
		coords, decodeErr := polyline.Decode(metrics.EncodedPath)
		if decodeErr != nil {
			provider := metrics.Provider
			resp.Warnings = append(resp.Warnings, models.Warning{
				Code:     "PATH_DECODE_FAILED",
				Message:  "route path could not be decoded; bounds omitted",
				Provider: &provider,
			})
		} else if box, ok := polyline.Bounds(coords); ok {
			resp.Bounds = &models.GeoBox{
				MinLat: box.MinLat,
				MinLon: box.MinLon,
				MaxLat: box.MaxLat,
				MaxLon: box.MaxLon,
			}
		}
	}

	response.JSON(w, r, http.StatusOK, resp)
}

// ZoneQuote handles POST /v1/quotes/zone - tiered cargo pricing from
// the zone rate table.
func (h *QuoteHandler) ZoneQuote(w http.ResponseWriter, r *http.Request) {
	var req models.ZoneQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "invalid request body", nil)
		return
	}

	class := pricing.ServiceClass(req.ServiceClass)
	if !class.IsCargo() {
		response.BadRequest(w, r, "serviceClass must be CARGO_STANDARD or CARGO_EXPRESS", []models.FieldError{
			{Field: "serviceClass", Message: "unknown cargo service class", Code: "invalid_enum"},
		})
		return
	}

	tier, err := pricing.DeriveTier(req.WeightKg)
	if err != nil {
		response.BadRequest(w, r, "weightKg must be greater than zero", []models.FieldError{
			{Field: "weightKg", Message: "must be greater than zero", Code: "out_of_range"},
		})
		return
	}

	fare, err := pricing.FareFromZone(req.WeightKg, req.OriginZone, req.DestinationZone, class, h.rates.Table())
	if err != nil {
		h.writeZoneFareError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, models.ZoneQuoteResponse{
		QuoteID:         "qte_" + uuid.New().String()[:22],
		ServiceClass:    string(class),
		OriginZone:      pricing.NormalizeZone(req.OriginZone),
		DestinationZone: pricing.NormalizeZone(req.DestinationZone),
		WeightTier:      tier.String(),
		Fare:            models.Money(fare.Rupees()),
		GeneratedAt:     models.Timestamp(time.Now()),
	})
}

// writeRoutingError maps routing sentinel errors to problem responses.
func (h *QuoteHandler) writeRoutingError(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetRequestID(r.Context())

	switch {
	case errors.Is(err, routing.ErrInvalidCoordinates):
		response.BadRequest(w, r, "origin and destination must be valid coordinates", nil)
	case errors.Is(err, routing.ErrRouteNotFound):
		response.NotFound(w, r, "no route found between origin and destination")
	case errors.Is(err, routing.ErrRateLimited):
		response.TooManyRequests(w, r, "routing provider rate limit reached, try again shortly")
	case errors.Is(err, routing.ErrProviderUnavailable), errors.Is(err, routing.ErrMalformedResponse):
		h.logger.Error().Err(err).Str("request_id", requestID).Msg("routing provider failure")
		response.ServiceUnavailable(w, r, "routing is temporarily unavailable")
	default:
		h.logger.Error().Err(err).Str("request_id", requestID).Msg("route computation failed")
		response.InternalError(w, r, "failed to compute route")
	}
}

// writeZoneFareError maps zone fare errors to problem responses. An
// unsupported route is an expected outcome with its own problem type.
func (h *QuoteHandler) writeZoneFareError(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetRequestID(r.Context())

	switch {
	case errors.Is(err, pricing.ErrUnsupportedRoute):
		problem := models.NewUnsupportedRoute(requestID, "this zone pair is not serviceable; use a third-party carrier")
		response.Error(w, r, problem)
	case errors.Is(err, pricing.ErrInvalidWeight):
		response.BadRequest(w, r, "weightKg must be greater than zero", nil)
	case errors.Is(err, pricing.ErrUnknownClass):
		response.BadRequest(w, r, "serviceClass must be CARGO_STANDARD or CARGO_EXPRESS", nil)
	default:
		h.logger.Error().Err(err).Str("request_id", requestID).Msg("zone fare computation failed")
		response.InternalError(w, r, "failed to compute fare")
	}
}
