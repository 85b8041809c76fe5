package routing

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// ServiceConfig holds configuration for the routing service.
type ServiceConfig struct {
	// Provider is the routing data provider.
	Provider Provider

	// Logger for service operations.
	Logger zerolog.Logger

	// CacheTTL is how long resolved metrics stay fresh (default: 5 minutes).
	CacheTTL time.Duration

	// CacheGridSize quantizes cache keys in degrees (default: 0.005 ~ 550m).
	// Endpoints within the same grid cell share a cached result.
	CacheGridSize float64

	// StaleIfErrorTTL allows serving stale metrics on provider errors
	// (default: 15 minutes).
	StaleIfErrorTTL time.Duration

	// CleanupInterval is how often expired entries are purged (default: 5 minutes).
	CleanupInterval time.Duration
}

// Service resolves route metrics with caching and a single bounded retry on
// provider unavailability.
type Service struct {
	provider        Provider
	logger          zerolog.Logger
	cacheTTL        time.Duration
	cacheGridSize   float64
	staleIfErrorTTL time.Duration
	cleanupInterval time.Duration

	mu          sync.RWMutex
	cache       map[string]*cachedMetrics
	lastCleanup time.Time
}

type cachedMetrics struct {
	metrics   *RouteMetrics
	fetchedAt time.Time
	expiresAt time.Time
}

// NewService creates a new routing service.
func NewService(cfg ServiceConfig) *Service {
	cacheTTL := cfg.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 5 * time.Minute
	}

	cacheGridSize := cfg.CacheGridSize
	if cacheGridSize == 0 {
		cacheGridSize = 0.005
	}

	staleIfErrorTTL := cfg.StaleIfErrorTTL
	if staleIfErrorTTL == 0 {
		staleIfErrorTTL = 15 * time.Minute
	}

	cleanupInterval := cfg.CleanupInterval
	if cleanupInterval == 0 {
		cleanupInterval = 5 * time.Minute
	}

	return &Service{
		provider:        cfg.Provider,
		logger:          cfg.Logger,
		cacheTTL:        cacheTTL,
		cacheGridSize:   cacheGridSize,
		staleIfErrorTTL: staleIfErrorTTL,
		cleanupInterval: cleanupInterval,
		cache:           make(map[string]*cachedMetrics),
	}
}

// ComputeRoute resolves route metrics for an origin/destination pair.
// Serves cached metrics when fresh.
func (s *Service) ComputeRoute(ctx context.Context, req RouteRequest) (*RouteMetrics, error) {
	if err := validateCoordinates(req.Origin); err != nil {
		return nil, &Error{
			Provider: s.provider.Name(),
			Code:     "INVALID_ORIGIN",
			Message:  "invalid origin coordinates",
			Err:      ErrInvalidCoordinates,
		}
	}
	if err := validateCoordinates(req.Destination); err != nil {
		return nil, &Error{
			Provider: s.provider.Name(),
			Code:     "INVALID_DESTINATION",
			Message:  "invalid destination coordinates",
			Err:      ErrInvalidCoordinates,
		}
	}

	cacheKey := s.cacheKey(req)

	s.mu.RLock()
	if cached, ok := s.cache[cacheKey]; ok && time.Now().Before(cached.expiresAt) {
		s.mu.RUnlock()
		s.logger.Debug().
			Str("cache_key", cacheKey).
			Msg("cache hit for route metrics")
		return cached.metrics, nil
	}
	s.mu.RUnlock()

	return s.fetchRoute(ctx, req, cacheKey)
}

// fetchRoute resolves metrics from the provider and updates the cache.
func (s *Service) fetchRoute(ctx context.Context, req RouteRequest, cacheKey string) (*RouteMetrics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check under the write lock to prevent a thundering herd.
	if cached, ok := s.cache[cacheKey]; ok && time.Now().Before(cached.expiresAt) {
		return cached.metrics, nil
	}

	s.logger.Debug().
		Float64("origin_lat", req.Origin.Lat).
		Float64("origin_lon", req.Origin.Lon).
		Float64("dest_lat", req.Destination.Lat).
		Float64("dest_lon", req.Destination.Lon).
		Str("profile", string(req.Profile)).
		Str("provider", s.provider.Name()).
		Msg("computing route via provider")

	metrics, err := s.computeWithRetry(ctx, req)
	if err != nil {
		s.logger.Error().Err(err).
			Str("profile", string(req.Profile)).
			Msg("route computation failed")

		// Stale-if-error: a recently fetched result beats a hard failure.
		if cached, ok := s.cache[cacheKey]; ok {
			if time.Now().Before(cached.fetchedAt.Add(s.staleIfErrorTTL)) {
				s.logger.Warn().
					Time("fetched_at", cached.fetchedAt).
					Str("cache_key", cacheKey).
					Msg("serving stale route metrics due to provider error")
				return cached.metrics, nil
			}
		}

		return nil, err
	}

	now := time.Now()
	s.cache[cacheKey] = &cachedMetrics{
		metrics:   metrics,
		fetchedAt: now,
		expiresAt: now.Add(s.cacheTTL),
	}

	s.cleanupIfNeeded()

	return metrics, nil
}

// computeWithRetry calls the provider with at most one extra attempt, and
// only when the failure is provider unavailability. Route-not-found and
// rate-limit failures surface immediately.
func (s *Service) computeWithRetry(ctx context.Context, req RouteRequest) (*RouteMetrics, error) {
	metrics, err := s.provider.ComputeRoute(ctx, req)
	if err == nil {
		return metrics, nil
	}

	var routeErr *Error
	if !errors.As(err, &routeErr) || !routeErr.IsRetryable() {
		return nil, err
	}

	s.logger.Warn().Err(err).
		Str("provider", s.provider.Name()).
		Msg("provider unavailable, retrying once")

	return s.provider.ComputeRoute(ctx, req)
}

// cacheKey quantizes both endpoints to the cache grid.
// Format: {profile}:{gridOriginLat},{gridOriginLon}:{gridDestLat},{gridDestLon}.
func (s *Service) cacheKey(req RouteRequest) string {
	gridOriginLat := math.Floor(req.Origin.Lat/s.cacheGridSize) * s.cacheGridSize
	gridOriginLon := math.Floor(req.Origin.Lon/s.cacheGridSize) * s.cacheGridSize
	gridDestLat := math.Floor(req.Destination.Lat/s.cacheGridSize) * s.cacheGridSize
	gridDestLon := math.Floor(req.Destination.Lon/s.cacheGridSize) * s.cacheGridSize

	return fmt.Sprintf("%s:%.3f,%.3f:%.3f,%.3f",
		req.Profile,
		gridOriginLat, gridOriginLon,
		gridDestLat, gridDestLon,
	)
}

// cleanupIfNeeded removes entries past the stale-if-error window.
// Caller holds the write lock.
func (s *Service) cleanupIfNeeded() {
	now := time.Now()
	if now.Sub(s.lastCleanup) < s.cleanupInterval {
		return
	}

	s.lastCleanup = now
	expired := 0

	for key, cached := range s.cache {
		if now.After(cached.fetchedAt.Add(s.staleIfErrorTTL)) {
			delete(s.cache, key)
			expired++
		}
	}

	if expired > 0 {
		s.logger.Debug().
			Int("expired_entries", expired).
			Msg("cleaned up expired route cache entries")
	}
}

// InvalidateCache clears all cached metrics.
func (s *Service) InvalidateCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string]*cachedMetrics)
}

// ProviderName returns the name of the underlying provider.
func (s *Service) ProviderName() string {
	return s.provider.Name()
}

// validateCoordinates checks coordinate ranges.
func validateCoordinates(c Coordinate) error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("latitude %f out of range [-90, 90]", c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("longitude %f out of range [-180, 180]", c.Lon)
	}
	return nil
}
