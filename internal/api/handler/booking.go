package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/shipfare/shipfare/internal/api/middleware"
	"github.com/shipfare/shipfare/internal/api/models"
	"github.com/shipfare/shipfare/internal/api/response"
	"github.com/shipfare/shipfare/internal/booking"
	"github.com/shipfare/shipfare/internal/pricing"
	"github.com/shipfare/shipfare/internal/rates"
)

// BookingHandler handles booking creation, lookup, and finalization.
type BookingHandler struct {
	bookings *booking.Service
	rates    *rates.Service
	logger   zerolog.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookings *booking.Service, rateService *rates.Service, logger zerolog.Logger) *BookingHandler {
	return &BookingHandler{
		bookings: bookings,
		rates:    rateService,
		logger:   logger.With().Str("component", "booking_handler").Logger(),
	}
}

// Create handles POST /v1/bookings - price a cargo shipment and bind
// the charge to a fresh tracking id. The sender and receiver postal
// codes are the rate zones.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.BookingCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "invalid request body", nil)
		return
	}

	if fieldErrors := validateBookingCreate(&req); len(fieldErrors) > 0 {
		response.BadRequest(w, r, "invalid booking request", fieldErrors)
		return
	}

	charge, err := h.buildCharge(req.Product.WeightKg, req.Sender.PostalCode, req.Receiver.PostalCode, req.ServiceClass, req.Surcharges)
	if err != nil {
		h.writeChargeError(w, r, err)
		return
	}

	result, err := h.bookings.Issue(r.Context(), booking.IssueInput{
		Sender:   toParty(req.Sender),
		Receiver: toParty(req.Receiver),
		Product:  booking.Product{Description: req.Product.Description, WeightKg: req.Product.WeightKg},
		Charge:   *charge,
	})
	if err != nil {
		requestID := middleware.GetRequestID(r.Context())
		h.logger.Error().Err(err).Str("request_id", requestID).Msg("booking issue failed")
		if errors.Is(err, booking.ErrIDSpaceExhausted) {
			response.ServiceUnavailable(w, r, "could not allocate a tracking id, try again")
			return
		}
		response.InternalError(w, r, "failed to create booking")
		return
	}

	response.Created(w, r, "/v1/bookings/"+result.TrackingID, toBookingResponse(result))
}

// Get handles GET /v1/bookings/{trackingId}.
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	trackingID := chi.URLParam(r, "trackingId")

	result, err := h.bookings.Get(r.Context(), trackingID)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			response.NotFound(w, r, "no booking with this tracking id")
			return
		}
		requestID := middleware.GetRequestID(r.Context())
		h.logger.Error().Err(err).Str("request_id", requestID).Msg("booking lookup failed")
		response.InternalError(w, r, "failed to load booking")
		return
	}

	response.JSON(w, r, http.StatusOK, toBookingResponse(result))
}

// Finalize handles POST /v1/bookings/{trackingId}/finalize - replace
// the estimate with the final charge after physical pickup. Requires
// an operator token; re-aggregates from the re-measured weight using
// the zones stored on the booking.
func (h *BookingHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	trackingID := chi.URLParam(r, "trackingId")

	var req models.BookingFinalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "invalid request body", nil)
		return
	}

	existing, err := h.bookings.Get(r.Context(), trackingID)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			response.NotFound(w, r, "no booking with this tracking id")
			return
		}
		requestID := middleware.GetRequestID(r.Context())
		h.logger.Error().Err(err).Str("request_id", requestID).Msg("booking lookup failed")
		response.InternalError(w, r, "failed to load booking")
		return
	}

	charge, err := h.buildCharge(req.WeightKg, existing.Sender.PostalCode, existing.Receiver.PostalCode, req.ServiceClass, req.Surcharges)
	if err != nil {
		h.writeChargeError(w, r, err)
		return
	}

	operatorID := middleware.GetOperatorID(r.Context())
	result, err := h.bookings.Finalize(r.Context(), trackingID, *charge)
	if err != nil {
		if errors.Is(err, booking.ErrAlreadyFinalized) {
			response.Conflict(w, r, "booking charge is already finalized")
			return
		}
		requestID := middleware.GetRequestID(r.Context())
		h.logger.Error().Err(err).Str("request_id", requestID).Msg("booking finalize failed")
		response.InternalError(w, r, "failed to finalize booking")
		return
	}

	h.logger.Info().
		Str("tracking_id", trackingID).
		Str("operator_id", operatorID).
		Msg("booking charge corrected by operator")

	response.JSON(w, r, http.StatusOK, toBookingResponse(result))
}

// buildCharge computes the zone fare and folds in the surcharges.
func (h *BookingHandler) buildCharge(weightKg float64, originZone, destinationZone, serviceClass string, surcharges models.Surcharges) (*pricing.Charge, error) {
	class := pricing.ServiceClass(serviceClass)
	if !class.IsCargo() {
		return nil, pricing.ErrUnknownClass
	}

	base, err := pricing.FareFromZone(weightKg, originZone, destinationZone, class, h.rates.Table())
	if err != nil {
		return nil, err
	}

	return pricing.Aggregate(base, pricing.Components{
		Pickup:    pricing.FromRupees(float64(surcharges.Pickup)),
		Delivery:  pricing.FromRupees(float64(surcharges.Delivery)),
		Handling:  pricing.FromRupees(float64(surcharges.Handling)),
		Docket:    pricing.FromRupees(float64(surcharges.Docket)),
		Packaging: pricing.FromRupees(float64(surcharges.Packaging)),
		ExtraMile: pricing.FromRupees(float64(surcharges.ExtraMile)),
	})
}

// writeChargeError maps pricing errors to problem responses.
func (h *BookingHandler) writeChargeError(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetRequestID(r.Context())

	switch {
	case errors.Is(err, pricing.ErrUnsupportedRoute):
		problem := models.NewUnsupportedRoute(requestID, "this zone pair is not serviceable; use a third-party carrier")
		response.Error(w, r, problem)
	case errors.Is(err, pricing.ErrInvalidWeight):
		response.BadRequest(w, r, "weightKg must be greater than zero", nil)
	case errors.Is(err, pricing.ErrUnknownClass):
		response.BadRequest(w, r, "serviceClass must be CARGO_STANDARD or CARGO_EXPRESS", nil)
	case errors.Is(err, pricing.ErrInvalidCharge):
		response.BadRequest(w, r, "surcharges must not be negative", nil)
	default:
		h.logger.Error().Err(err).Str("request_id", requestID).Msg("charge computation failed")
		response.InternalError(w, r, "failed to compute charge")
	}
}

func validateBookingCreate(req *models.BookingCreateRequest) []models.FieldError {
	var fieldErrors []models.FieldError

	checkParty := func(prefix string, p models.PartyInput) {
		if p.Name == "" {
			fieldErrors = append(fieldErrors, models.FieldError{Field: prefix + ".name", Message: "required", Code: "required"})
		}
		if p.PostalCode == "" {
			fieldErrors = append(fieldErrors, models.FieldError{Field: prefix + ".postalCode", Message: "required", Code: "required"})
		}
	}
	checkParty("sender", req.Sender)
	checkParty("receiver", req.Receiver)

	if req.Product.WeightKg <= 0 {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "product.weightKg", Message: "must be greater than zero", Code: "out_of_range"})
	}

	return fieldErrors
}

func toParty(p models.PartyInput) booking.Party {
	return booking.Party{Name: p.Name, Phone: p.Phone, Address: p.Address, PostalCode: p.PostalCode}
}

func fromParty(p booking.Party) models.PartyInput {
	return models.PartyInput{Name: p.Name, Phone: p.Phone, Address: p.Address, PostalCode: p.PostalCode}
}

func toBookingResponse(bc *booking.BookingCharge) models.BookingResponse {
	resp := models.BookingResponse{
		TrackingID: bc.TrackingID,
		Status:     string(bc.Status),
		Sender:     fromParty(bc.Sender),
		Receiver:   fromParty(bc.Receiver),
		Product:    models.ProductInput{Description: bc.Product.Description, WeightKg: bc.Product.WeightKg},
		Charge: models.ChargeBreakdown{
			Base: models.Money(bc.Charge.Base.Rupees()),
			Surcharges: models.Surcharges{
				Pickup:    models.Money(bc.Charge.Components.Pickup.Rupees()),
				Delivery:  models.Money(bc.Charge.Components.Delivery.Rupees()),
				Handling:  models.Money(bc.Charge.Components.Handling.Rupees()),
				Docket:    models.Money(bc.Charge.Components.Docket.Rupees()),
				Packaging: models.Money(bc.Charge.Components.Packaging.Rupees()),
				ExtraMile: models.Money(bc.Charge.Components.ExtraMile.Rupees()),
			},
			Total: models.Money(bc.Charge.Total.Rupees()),
		},
		CreatedAt: models.Timestamp(bc.CreatedAt),
	}
	if bc.FinalizedAt != nil {
		ts := models.Timestamp(*bc.FinalizedAt)
		resp.FinalizedAt = &ts
	}
	return resp
}
