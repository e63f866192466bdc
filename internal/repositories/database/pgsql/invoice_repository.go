package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/transbook/transbook-backend/internal/core/domain"
	portsrepo "github.com/transbook/transbook-backend/internal/core/ports/repositories"
)

type PgxInvoiceRepository struct {
	ownedRepository[domain.Invoice]
}

var _ portsrepo.InvoiceRepository = (*PgxInvoiceRepository)(nil)

func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepository {
	return &PgxInvoiceRepository{ownedRepository[domain.Invoice]{
		pool: pool,
		desc: entityDescriptor[domain.Invoice]{
			table: "invoices",
			columns: []string{
				"id", "user_id", "customer_id", "trip_id", "invoice_number", "amount",
				"gst_amount", "total_amount", "paid_amount", "due_date", "paid_date",
				"status", "created_at", "updated_at",
			},
			values: func(i *domain.Invoice) []any {
				return []any{
					i.InvoiceID, i.OwnerID, i.CustomerID, i.TripID, i.InvoiceNumber, i.Amount,
					i.GSTAmount, i.TotalAmount, i.PaidAmount, i.DueDate, i.PaidDate,
					i.Status, i.CreatedAt, i.UpdatedAt,
				}
			},
		},
	}}
}

func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	return r.save(ctx, &invoice)
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID, ownerID string) (*domain.Invoice, error) {
	return r.findByID(ctx, invoiceID, ownerID)
}

func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, ownerID string) ([]domain.Invoice, error) {
	return r.list(ctx, ownerID)
}

func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	return r.update(ctx, &invoice)
}

func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID, ownerID string) error {
	return r.deleteByID(ctx, invoiceID, ownerID)
}
