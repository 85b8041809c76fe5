package rates

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/shipfare/shipfare/internal/pricing"
)

// ServiceConfig contains configuration for the rate service.
type ServiceConfig struct {
	// Repository provides the zone rates.
	Repository Repository

	// Logger for structured logging.
	Logger zerolog.Logger
}

// Service holds the current zone rate table and reloads it from the
// repository on demand. The table itself is immutable; a reload swaps
// in a fresh table without mutating the one handed to callers.
type Service struct {
	repo   Repository
	logger zerolog.Logger

	mu       sync.RWMutex
	table    *pricing.ZoneRateTable
	loadedAt time.Time
}

// NewService creates a new rate service. Call Load before serving
// traffic; until then Table returns an empty table.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger.With().Str("component", "rates").Logger(),
		table:  pricing.NewZoneRateTable(nil),
	}
}

// Load fetches all zone rates from the repository and swaps in a new
// table. On failure the previous table stays in place so pricing keeps
// working off the last good snapshot.
func (s *Service) Load(ctx context.Context) error {
	zoneRates, err := s.repo.ListZoneRates(ctx)
	if err != nil {
		return fmt.Errorf("loading zone rates: %w", err)
	}

	table := pricing.NewZoneRateTable(zoneRates)

	s.mu.Lock()
	s.table = table
	s.loadedAt = time.Now()
	s.mu.Unlock()

	s.logger.Info().
		Int("zone_pairs", table.Len()).
		Msg("zone rate table loaded")

	return nil
}

// Table returns the current zone rate table snapshot.
func (s *Service) Table() *pricing.ZoneRateTable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table
}

// LoadedAt returns when the current table was loaded. The zero time
// means no load has succeeded yet.
func (s *Service) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}
