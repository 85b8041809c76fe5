package rates

import (
	"context"
	"errors"

	"github.com/shipfare/shipfare/internal/pricing"
)

// ErrNoRates indicates the rate source returned no zone rates at all.
// An empty rate card is treated as a misconfiguration rather than a
// valid table.
var ErrNoRates = errors.New("no zone rates available")

// Repository defines the interface for zone rate persistence.
type Repository interface {
	// ListZoneRates returns every active zone pair rate.
	// Returns ErrNoRates when the source holds no rates.
	ListZoneRates(ctx context.Context) ([]pricing.ZoneRate, error)
}
