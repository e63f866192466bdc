package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/transbook/transbook-backend/internal/core/domain"
	portsrepo "github.com/transbook/transbook-backend/internal/core/ports/repositories"
)

type PgxTripRepository struct {
	ownedRepository[domain.Trip]
}

var _ portsrepo.TripRepository = (*PgxTripRepository)(nil)

func newPgxTripRepository(pool *pgxpool.Pool) portsrepo.TripRepository {
	return &PgxTripRepository{ownedRepository[domain.Trip]{
		pool: pool,
		desc: entityDescriptor[domain.Trip]{
			table: "trips",
			columns: []string{
				"id", "user_id", "customer_id", "vehicle_id", "driver_id", "trip_number",
				"origin", "destination", "distance", "freight", "advance", "start_date",
				"end_date", "status", "notes", "created_at", "updated_at",
			},
			values: func(t *domain.Trip) []any {
				return []any{
					t.TripID, t.OwnerID, t.CustomerID, t.VehicleID, t.DriverID, t.TripNumber,
					t.Origin, t.Destination, t.Distance, t.Freight, t.Advance, t.StartDate,
					t.EndDate, t.Status, t.Notes, t.CreatedAt, t.UpdatedAt,
				}
			},
		},
	}}
}

func (r *PgxTripRepository) SaveTrip(ctx context.Context, trip domain.Trip) error {
	return r.save(ctx, &trip)
}

func (r *PgxTripRepository) FindTripByID(ctx context.Context, tripID, ownerID string) (*domain.Trip, error) {
	return r.findByID(ctx, tripID, ownerID)
}

func (r *PgxTripRepository) ListTrips(ctx context.Context, ownerID string) ([]domain.Trip, error) {
	return r.list(ctx, ownerID)
}

func (r *PgxTripRepository) UpdateTrip(ctx context.Context, trip domain.Trip) error {
	return r.update(ctx, &trip)
}

func (r *PgxTripRepository) DeleteTrip(ctx context.Context, tripID, ownerID string) error {
	return r.deleteByID(ctx, tripID, ownerID)
}
