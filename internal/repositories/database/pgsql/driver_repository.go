package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/transbook/transbook-backend/internal/core/domain"
	portsrepo "github.com/transbook/transbook-backend/internal/core/ports/repositories"
)

type PgxDriverRepository struct {
	ownedRepository[domain.Driver]
}

var _ portsrepo.DriverRepository = (*PgxDriverRepository)(nil)

func newPgxDriverRepository(pool *pgxpool.Pool) portsrepo.DriverRepository {
	return &PgxDriverRepository{ownedRepository[domain.Driver]{
		pool: pool,
		desc: entityDescriptor[domain.Driver]{
			table: "drivers",
			columns: []string{
				"id", "user_id", "name", "phone", "email", "license_number", "license_expiry",
				"address", "emergency_contact", "status", "created_at", "updated_at",
			},
			values: func(d *domain.Driver) []any {
				return []any{
					d.DriverID, d.OwnerID, d.Name, d.Phone, d.Email, d.LicenseNumber, d.LicenseExpiry,
					d.Address, d.EmergencyContact, d.Status, d.CreatedAt, d.UpdatedAt,
				}
			},
		},
	}}
}

func (r *PgxDriverRepository) SaveDriver(ctx context.Context, driver domain.Driver) error {
	return r.save(ctx, &driver)
}

func (r *PgxDriverRepository) FindDriverByID(ctx context.Context, driverID, ownerID string) (*domain.Driver, error) {
	return r.findByID(ctx, driverID, ownerID)
}

func (r *PgxDriverRepository) ListDrivers(ctx context.Context, ownerID string) ([]domain.Driver, error) {
	return r.list(ctx, ownerID)
}

func (r *PgxDriverRepository) UpdateDriver(ctx context.Context, driver domain.Driver) error {
	return r.update(ctx, &driver)
}

func (r *PgxDriverRepository) DeleteDriver(ctx context.Context, driverID, ownerID string) error {
	return r.deleteByID(ctx, driverID, ownerID)
}
