package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/transbook/transbook-backend/internal/core/domain"
	portsrepo "github.com/transbook/transbook-backend/internal/core/ports/repositories"
)

type PgxCustomerRepository struct {
	ownedRepository[domain.Customer]
}

var _ portsrepo.CustomerRepository = (*PgxCustomerRepository)(nil)

func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepository {
	return &PgxCustomerRepository{ownedRepository[domain.Customer]{
		pool: pool,
		desc: entityDescriptor[domain.Customer]{
			table: "customers",
			columns: []string{
				"id", "user_id", "name", "email", "phone", "address", "gstin",
				"credit_limit", "outstanding_amount", "status", "created_at", "updated_at",
			},
			values: func(c *domain.Customer) []any {
				return []any{
					c.CustomerID, c.OwnerID, c.Name, c.Email, c.Phone, c.Address, c.GSTIN,
					c.CreditLimit, c.OutstandingAmount, c.Status, c.CreatedAt, c.UpdatedAt,
				}
			},
		},
	}}
}

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	return r.save(ctx, &customer)
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID, ownerID string) (*domain.Customer, error) {
	return r.findByID(ctx, customerID, ownerID)
}

func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, ownerID string) ([]domain.Customer, error) {
	return r.list(ctx, ownerID)
}

func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	return r.update(ctx, &customer)
}

func (r *PgxCustomerRepository) DeleteCustomer(ctx context.Context, customerID, ownerID string) error {
	return r.deleteByID(ctx, customerID, ownerID)
}
