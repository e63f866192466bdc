package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/transbook/transbook-backend/internal/core/domain"
	portsrepo "github.com/transbook/transbook-backend/internal/core/ports/repositories"
)

type PgxVehicleRepository struct {
	ownedRepository[domain.Vehicle]
}

var _ portsrepo.VehicleRepository = (*PgxVehicleRepository)(nil)

func newPgxVehicleRepository(pool *pgxpool.Pool) portsrepo.VehicleRepository {
	return &PgxVehicleRepository{ownedRepository[domain.Vehicle]{
		pool: pool,
		desc: entityDescriptor[domain.Vehicle]{
			table: "vehicles",
			columns: []string{
				"id", "user_id", "registration_number", "type", "capacity", "capacity_unit",
				"model", "year", "insurance_number", "insurance_expiry", "permit_number",
				"permit_expiry", "fitness_expiry", "status", "created_at", "updated_at",
			},
			values: func(v *domain.Vehicle) []any {
				return []any{
					v.VehicleID, v.OwnerID, v.RegistrationNumber, v.Type, v.Capacity, v.CapacityUnit,
					v.Model, v.Year, v.InsuranceNumber, v.InsuranceExpiry, v.PermitNumber,
					v.PermitExpiry, v.FitnessExpiry, v.Status, v.CreatedAt, v.UpdatedAt,
				}
			},
		},
	}}
}

func (r *PgxVehicleRepository) SaveVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	return r.save(ctx, &vehicle)
}

func (r *PgxVehicleRepository) FindVehicleByID(ctx context.Context, vehicleID, ownerID string) (*domain.Vehicle, error) {
	return r.findByID(ctx, vehicleID, ownerID)
}

func (r *PgxVehicleRepository) ListVehicles(ctx context.Context, ownerID string) ([]domain.Vehicle, error) {
	return r.list(ctx, ownerID)
}

func (r *PgxVehicleRepository) UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	return r.update(ctx, &vehicle)
}

func (r *PgxVehicleRepository) DeleteVehicle(ctx context.Context, vehicleID, ownerID string) error {
	return r.deleteByID(ctx, vehicleID, ownerID)
}
