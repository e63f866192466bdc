package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/transbook/transbook-backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CustomerRepo:  newPgxCustomerRepository(dbPool),
		VehicleRepo:   newPgxVehicleRepository(dbPool),
		DriverRepo:    newPgxDriverRepository(dbPool),
		TripRepo:      newPgxTripRepository(dbPool),
		InvoiceRepo:   newPgxInvoiceRepository(dbPool),
		ExpenseRepo:   newPgxExpenseRepository(dbPool),
		UserRepo:      newPgxUserRepository(dbPool),
		ReportingRepo: newReportingRepository(dbPool),
	}
}
