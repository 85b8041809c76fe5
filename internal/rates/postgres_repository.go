package rates

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shipfare/shipfare/internal/pricing"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL zone rate repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// ListZoneRates returns every active zone pair rate from the zone_rates
// table. Amounts are stored in paise.
func (r *PostgresRepository) ListZoneRates(ctx context.Context) ([]pricing.ZoneRate, error) {
	query := `
		SELECT
			origin_zone, destination_zone,
			upto_1kg_paise, upto_5kg_paise, above_5kg_paise
		FROM zone_rates
		WHERE active = true
		ORDER BY origin_zone, destination_zone
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying zone rates: %w", err)
	}
	defer rows.Close()

	var result []pricing.ZoneRate
	for rows.Next() {
		var zr pricing.ZoneRate
		if err := rows.Scan(
			&zr.OriginZone,
			&zr.DestinationZone,
			&zr.UpTo1kg,
			&zr.UpTo5kg,
			&zr.Above5kg,
		); err != nil {
			return nil, fmt.Errorf("scanning zone rate: %w", err)
		}
		result = append(result, zr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading zone rates: %w", err)
	}

	if len(result) == 0 {
		return nil, ErrNoRates
	}

	return result, nil
}

// Ensure PostgresRepository implements Repository interface.
var _ Repository = (*PostgresRepository)(nil)
