package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/transbook/transbook-backend/internal/core/domain"
	portsrepo "github.com/transbook/transbook-backend/internal/core/ports/repositories"
)

type PgxExpenseRepository struct {
	ownedRepository[domain.Expense]
}

var _ portsrepo.ExpenseRepository = (*PgxExpenseRepository)(nil)

func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepository {
	return &PgxExpenseRepository{ownedRepository[domain.Expense]{
		pool: pool,
		desc: entityDescriptor[domain.Expense]{
			table: "expenses",
			columns: []string{
				"id", "user_id", "trip_id", "vehicle_id", "category", "description",
				"amount", "date", "bill_number", "created_at", "updated_at",
			},
			values: func(e *domain.Expense) []any {
				return []any{
					e.ExpenseID, e.OwnerID, e.TripID, e.VehicleID, e.Category, e.Description,
					e.Amount, e.Date, e.BillNumber, e.CreatedAt, e.UpdatedAt,
				}
			},
		},
	}}
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	return r.save(ctx, &expense)
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID, ownerID string) (*domain.Expense, error) {
	return r.findByID(ctx, expenseID, ownerID)
}

func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, ownerID string) ([]domain.Expense, error) {
	return r.list(ctx, ownerID)
}

func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	return r.update(ctx, &expense)
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID, ownerID string) error {
	return r.deleteByID(ctx, expenseID, ownerID)
}
