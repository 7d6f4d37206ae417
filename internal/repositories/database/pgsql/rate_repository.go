package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sabaipos/pos_backend/internal/apperrors"
	"github.com/sabaipos/pos_backend/internal/core/domain"
	portsrepo "github.com/sabaipos/pos_backend/internal/core/ports/repositories"
	"github.com/sabaipos/pos_backend/internal/models"
	"github.com/sabaipos/pos_backend/internal/utils/mapping"
)

type PgxRateRepository struct {
	BaseRepository
}

// newPgxRateRepository creates a new repository for service catalog data.
func newPgxRateRepository(pool DBPool) portsrepo.RateRepositoryFacade {
	return &PgxRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RateRepositoryFacade = (*PgxRateRepository)(nil)

const rateColumns = `rate_id, service_type, duration_minutes, location, price, staff_fee, is_active, created_at`

// LookupActiveRate resolves the price and fee for a service booking.
func (r *PgxRateRepository) LookupActiveRate(ctx context.Context, serviceType string, durationMinutes int, location string) (*domain.ServiceRate, error) {
	query := `
		SELECT ` + rateColumns + `
		FROM service_rates
		WHERE service_type = $1 AND duration_minutes = $2 AND location = $3 AND is_active
		ORDER BY created_at DESC
		LIMIT 1;
	`
	var m models.ServiceRate
	err := r.Pool.QueryRow(ctx, query, serviceType, durationMinutes, location).Scan(
		&m.RateID, &m.ServiceType, &m.DurationMinutes, &m.Location, &m.Price, &m.StaffFee, &m.IsActive, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up service rate: %w", err)
	}
	rate := mapping.ToDomainServiceRate(m)
	return &rate, nil
}

func (r *PgxRateRepository) SaveRate(ctx context.Context, rate domain.ServiceRate) error {
	m := mapping.ToModelServiceRate(rate)
	query := `
		INSERT INTO service_rates (` + rateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RateID, m.ServiceType, m.DurationMinutes, m.Location, m.Price, m.StaffFee, m.IsActive, m.CreatedAt,
	)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return fmt.Errorf("%w: rate for %s/%d/%s", apperrors.ErrDuplicate, m.ServiceType, m.DurationMinutes, m.Location)
		}
		return fmt.Errorf("failed to save service rate: %w", err)
	}
	return nil
}

func (r *PgxRateRepository) ListRates(ctx context.Context) ([]domain.ServiceRate, error) {
	query := `SELECT ` + rateColumns + ` FROM service_rates ORDER BY service_type, duration_minutes, location;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query service rates: %w", err)
	}
	defer rows.Close()

	var rates []domain.ServiceRate
	for rows.Next() {
		var m models.ServiceRate
		if err := rows.Scan(&m.RateID, &m.ServiceType, &m.DurationMinutes, &m.Location, &m.Price, &m.StaffFee, &m.IsActive, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan service rate: %w", err)
		}
		rates = append(rates, mapping.ToDomainServiceRate(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading service rates: %w", err)
	}
	return rates, nil
}

func (r *PgxRateRepository) SetRateActive(ctx context.Context, rateID string, active bool) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE service_rates SET is_active = $2 WHERE rate_id = $1;`, rateID, active)
	if err != nil {
		return fmt.Errorf("failed to update rate %s: %w", rateID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
