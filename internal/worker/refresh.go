package worker

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/shipfare/shipfare/internal/rates"
)

// RefreshJob reloads the zone rate table from the rate store and swaps
// in the fresh snapshot. A reload replaces the whole table; the one in
// use is never mutated.
type RefreshJob struct {
	config  RefreshConfig
	rates   *rates.Service
	logger  zerolog.Logger
	metrics *RefreshMetrics
}

// RefreshMetrics tracks refresh job statistics.
type RefreshMetrics struct {
	mu sync.RWMutex

	TotalRefreshes      int64
	SuccessfulRefreshes int64
	FailedRefreshes     int64

	LastRefreshAt       time.Time
	LastRefreshDuration time.Duration
	LastZonePairs       int
}

// Snapshot returns a copy of the current metrics.
func (m *RefreshMetrics) Snapshot() RefreshMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return RefreshMetrics{
		TotalRefreshes:      m.TotalRefreshes,
		SuccessfulRefreshes: m.SuccessfulRefreshes,
		FailedRefreshes:     m.FailedRefreshes,
		LastRefreshAt:       m.LastRefreshAt,
		LastRefreshDuration: m.LastRefreshDuration,
		LastZonePairs:       m.LastZonePairs,
	}
}

// RefreshJobConfig holds configuration for creating a RefreshJob.
type RefreshJobConfig struct {
	Config RefreshConfig
	Rates  *rates.Service
	Logger zerolog.Logger
}

// NewRefreshJob creates a new refresh job processor.
func NewRefreshJob(cfg RefreshJobConfig) *RefreshJob {
	config := cfg.Config
	if config.Timeout == 0 {
		config.Timeout = DefaultRefreshConfig().Timeout
	}

	return &RefreshJob{
		config:  config,
		rates:   cfg.Rates,
		logger:  cfg.Logger.With().Str("component", "rate_refresh").Logger(),
		metrics: &RefreshMetrics{},
	}
}

// RefreshResult contains the result of one reload.
type RefreshResult struct {
	StartTime time.Time
	Duration  time.Duration
	ZonePairs int
	Err       error
}

// Run executes one reload of the zone rate table.
func (j *RefreshJob) Run(ctx context.Context) *RefreshResult {
	startTime := time.Now()
	result := &RefreshResult{StartTime: startTime}

	ctx, cancel := context.WithTimeout(ctx, j.config.Timeout)
	defer cancel()

	err := j.rates.Load(ctx)
	result.Duration = time.Since(startTime)
	result.Err = err

	j.metrics.mu.Lock()
	j.metrics.TotalRefreshes++
	j.metrics.LastRefreshAt = startTime
	j.metrics.LastRefreshDuration = result.Duration
	if err != nil {
		j.metrics.FailedRefreshes++
	} else {
		j.metrics.SuccessfulRefreshes++
		j.metrics.LastZonePairs = j.rates.Table().Len()
		result.ZonePairs = j.metrics.LastZonePairs
	}
	j.metrics.mu.Unlock()

	if err != nil {
		j.logger.Error().
			Err(err).
			Dur("duration", result.Duration).
			Msg("zone rate refresh failed, previous table stays active")
		return result
	}

	j.logger.Info().
		Int("zone_pairs", result.ZonePairs).
		Dur("duration", result.Duration).
		Msg("zone rate refresh completed")

	return result
}

// RunPeriodic reloads on the configured interval until ctx is done.
// It runs one reload immediately so the worker starts with a fresh
// table.
func (j *RefreshJob) RunPeriodic(ctx context.Context) {
	j.Run(ctx)

	if j.config.Interval <= 0 {
		return
	}

	ticker := time.NewTicker(j.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.Run(ctx)
		}
	}
}

// Metrics returns the job's metrics.
func (j *RefreshJob) Metrics() *RefreshMetrics {
	return j.metrics
}
