package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shipfare/shipfare/internal/pricing"
)

// uniqueViolation is the PostgreSQL error code for a unique
// constraint violation.
const uniqueViolation = "23505"

// PostgresRepository is a PostgreSQL implementation of Repository.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL booking repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Create inserts a new booking charge. The unique constraint on
// tracking_id is the collision authority; a violation maps to
// ErrDuplicateTrackingID.
func (r *PostgresRepository) Create(ctx context.Context, bc *BookingCharge) error {
	query := `
		INSERT INTO bookings (
			tracking_id,
			sender_name, sender_phone, sender_address, sender_postal_code,
			receiver_name, receiver_phone, receiver_address, receiver_postal_code,
			product_description, product_weight_kg,
			base_paise, pickup_paise, delivery_paise, handling_paise,
			docket_paise, packaging_paise, extra_mile_paise, total_paise,
			status, created_at
		) VALUES (
			$1,
			$2, $3, $4, $5,
			$6, $7, $8, $9,
			$10, $11,
			$12, $13, $14, $15,
			$16, $17, $18, $19,
			$20, $21
		)
	`

	_, err := r.pool.Exec(ctx, query,
		bc.TrackingID,
		bc.Sender.Name, bc.Sender.Phone, bc.Sender.Address, bc.Sender.PostalCode,
		bc.Receiver.Name, bc.Receiver.Phone, bc.Receiver.Address, bc.Receiver.PostalCode,
		bc.Product.Description, bc.Product.WeightKg,
		int64(bc.Charge.Base),
		int64(bc.Charge.Components.Pickup),
		int64(bc.Charge.Components.Delivery),
		int64(bc.Charge.Components.Handling),
		int64(bc.Charge.Components.Docket),
		int64(bc.Charge.Components.Packaging),
		int64(bc.Charge.Components.ExtraMile),
		int64(bc.Charge.Total),
		string(bc.Status),
		bc.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicateTrackingID
		}
		return fmt.Errorf("inserting booking: %w", err)
	}

	return nil
}

// Get retrieves a booking charge by tracking id.
func (r *PostgresRepository) Get(ctx context.Context, trackingID string) (*BookingCharge, error) {
	query := `
		SELECT
			tracking_id,
			sender_name, sender_phone, sender_address, sender_postal_code,
			receiver_name, receiver_phone, receiver_address, receiver_postal_code,
			product_description, product_weight_kg,
			base_paise, pickup_paise, delivery_paise, handling_paise,
			docket_paise, packaging_paise, extra_mile_paise, total_paise,
			status, created_at, finalized_at
		FROM bookings
		WHERE tracking_id = $1
	`

	var (
		bc     BookingCharge
		status string
	)
	err := r.pool.QueryRow(ctx, query, trackingID).Scan(
		&bc.TrackingID,
		&bc.Sender.Name, &bc.Sender.Phone, &bc.Sender.Address, &bc.Sender.PostalCode,
		&bc.Receiver.Name, &bc.Receiver.Phone, &bc.Receiver.Address, &bc.Receiver.PostalCode,
		&bc.Product.Description, &bc.Product.WeightKg,
		&bc.Charge.Base,
		&bc.Charge.Components.Pickup,
		&bc.Charge.Components.Delivery,
		&bc.Charge.Components.Handling,
		&bc.Charge.Components.Docket,
		&bc.Charge.Components.Packaging,
		&bc.Charge.Components.ExtraMile,
		&bc.Charge.Total,
		&status,
		&bc.CreatedAt,
		&bc.FinalizedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("querying booking: %w", err)
	}

	bc.Status = ChargeStatus(status)
	return &bc, nil
}

// Finalize replaces an estimated charge with the final one. The
// WHERE clause enforces the one-way transition; a finalized row is
// never updated again.
func (r *PostgresRepository) Finalize(ctx context.Context, trackingID string, charge pricing.Charge) error {
	query := `
		UPDATE bookings SET
			base_paise = $2, pickup_paise = $3, delivery_paise = $4,
			handling_paise = $5, docket_paise = $6, packaging_paise = $7,
			extra_mile_paise = $8, total_paise = $9,
			status = $10, finalized_at = $11
		WHERE tracking_id = $1 AND status = $12
	`

	tag, err := r.pool.Exec(ctx, query,
		trackingID,
		int64(charge.Base),
		int64(charge.Components.Pickup),
		int64(charge.Components.Delivery),
		int64(charge.Components.Handling),
		int64(charge.Components.Docket),
		int64(charge.Components.Packaging),
		int64(charge.Components.ExtraMile),
		int64(charge.Total),
		string(StatusFinalized),
		time.Now(),
		string(StatusEstimated),
	)
	if err != nil {
		return fmt.Errorf("finalizing booking: %w", err)
	}

	if tag.RowsAffected() == 0 {
		// Distinguish a missing booking from one finalized earlier.
		existing, getErr := r.Get(ctx, trackingID)
		if getErr != nil {
			return getErr
		}
		if existing.Status == StatusFinalized {
			return ErrAlreadyFinalized
		}
		return ErrBookingNotFound
	}

	return nil
}

// Ensure PostgresRepository implements Repository interface.
var _ Repository = (*PostgresRepository)(nil)
