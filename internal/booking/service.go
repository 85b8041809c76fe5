package booking

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"github.com/shipfare/shipfare/internal/pricing"
)

// Defaults for ServiceConfig.
const (
	DefaultTrackingPrefix   = "SF"
	DefaultMaxIssueAttempts = 5
)

// ServiceConfig contains configuration for the booking service.
type ServiceConfig struct {
	// Repository persists booking charges.
	Repository Repository

	// Logger for structured logging.
	Logger zerolog.Logger

	// TrackingPrefix is the prefix of issued tracking ids.
	// Default: "SF".
	TrackingPrefix string

	// MaxIssueAttempts bounds the regenerate loop on tracking id
	// collisions. Default: 5.
	MaxIssueAttempts int

	// Suffix returns a random number in [0, 1000000). Override in
	// tests to force collisions.
	Suffix func() int
}

// IssueInput is the input for issuing a new booking charge.
type IssueInput struct {
	Sender   Party
	Receiver Party
	Product  Product
	Charge   pricing.Charge
}

// Service issues tracking ids and manages the booking charge
// lifecycle.
type Service struct {
	repo        Repository
	logger      zerolog.Logger
	prefix      string
	maxAttempts int
	suffix      func() int
}

// NewService creates a new booking service.
func NewService(cfg ServiceConfig) *Service {
	if cfg.TrackingPrefix == "" {
		cfg.TrackingPrefix = DefaultTrackingPrefix
	}
	if cfg.MaxIssueAttempts <= 0 {
		cfg.MaxIssueAttempts = DefaultMaxIssueAttempts
	}
	if cfg.Suffix == nil {
		cfg.Suffix = func() int { return rand.IntN(1000000) }
	}

	return &Service{
		repo:        cfg.Repository,
		logger:      cfg.Logger.With().Str("component", "booking").Logger(),
		prefix:      cfg.TrackingPrefix,
		maxAttempts: cfg.MaxIssueAttempts,
		suffix:      cfg.Suffix,
	}
}

// Issue creates a booking charge under a fresh tracking id. Ids are
// random, never derived from the charge content; the store's unique
// constraint decides collisions and the loop regenerates on
// ErrDuplicateTrackingID up to the configured attempt bound.
func (s *Service) Issue(ctx context.Context, input IssueInput) (*BookingCharge, error) {
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		trackingID := fmt.Sprintf("%s-%06d", s.prefix, s.suffix())

		bc := &BookingCharge{
			TrackingID: trackingID,
			Sender:     input.Sender,
			Receiver:   input.Receiver,
			Product:    input.Product,
			Charge:     input.Charge,
			Status:     StatusEstimated,
			CreatedAt:  time.Now(),
		}

		err := s.repo.Create(ctx, bc)
		if err == nil {
			s.logger.Info().
				Str("tracking_id", trackingID).
				Str("total", bc.Charge.Total.String()).
				Msg("booking charge issued")
			return bc, nil
		}
		if !errors.Is(err, ErrDuplicateTrackingID) {
			return nil, err
		}

		s.logger.Warn().
			Str("tracking_id", trackingID).
			Int("attempt", attempt).
			Msg("tracking id collision, regenerating")
	}

	return nil, ErrIDSpaceExhausted
}

// Finalize replaces the estimated charge under trackingID with the
// final one. The transition is one-way; finalizing twice fails with
// ErrAlreadyFinalized.
func (s *Service) Finalize(ctx context.Context, trackingID string, charge pricing.Charge) (*BookingCharge, error) {
	if err := s.repo.Finalize(ctx, trackingID, charge); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("tracking_id", trackingID).
		Str("total", charge.Total.String()).
		Msg("booking charge finalized")

	return s.repo.Get(ctx, trackingID)
}

// Get retrieves a booking charge by tracking id.
func (s *Service) Get(ctx context.Context, trackingID string) (*BookingCharge, error) {
	return s.repo.Get(ctx, trackingID)
}
