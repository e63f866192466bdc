package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/transbook/transbook-backend/internal/core/domain"
	portsrepo "github.com/transbook/transbook-backend/internal/core/ports/repositories"
)

// reportingRepository serves the dashboard aggregates. Every query here is
// scoped to a single owner, same as the entity repositories.
type reportingRepository struct {
	db *pgxpool.Pool
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{db: db}
}

func (r *reportingRepository) SumCompletedTripFreight(ctx context.Context, ownerID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(freight), 0)
		FROM trips
		WHERE user_id = $1 AND status = 'completed';
	`
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, ownerID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum completed trip freight: %w", err)
	}
	return total, nil
}

func (r *reportingRepository) CountTripsByStatus(ctx context.Context, ownerID string, status domain.TripStatus) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM trips
		WHERE user_id = $1 AND status = $2;
	`
	var count int64
	if err := r.db.QueryRow(ctx, query, ownerID, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count trips by status: %w", err)
	}
	return count, nil
}

func (r *reportingRepository) SumPendingInvoiceAmounts(ctx context.Context, ownerID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total_amount - paid_amount), 0)
		FROM invoices
		WHERE user_id = $1 AND status = 'sent';
	`
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, ownerID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum pending invoice amounts: %w", err)
	}
	return total, nil
}

func (r *reportingRepository) VehicleAvailability(ctx context.Context, ownerID string) (int64, int64, error) {
	query := `
		SELECT
			COUNT(CASE WHEN status = 'available' THEN 1 END),
			COUNT(*)
		FROM vehicles
		WHERE user_id = $1;
	`
	var available, total int64
	if err := r.db.QueryRow(ctx, query, ownerID).Scan(&available, &total); err != nil {
		return 0, 0, fmt.Errorf("failed to query vehicle availability: %w", err)
	}
	return available, total, nil
}
