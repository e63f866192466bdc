// Package repositories defines the persistence ports consumed by the core
// services. Every operation on an owned entity takes the owner's account id
// and must conjoin it with the primary key in its predicate; there is no
// lookup by primary key alone.
package repositories

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/transbook/transbook-backend/internal/core/domain"
)

// CustomerRepository persists customers scoped to one account.
type CustomerRepository interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
	FindCustomerByID(ctx context.Context, customerID, ownerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, ownerID string) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer domain.Customer) error
	DeleteCustomer(ctx context.Context, customerID, ownerID string) error
}

type VehicleRepository interface {
	SaveVehicle(ctx context.Context, vehicle domain.Vehicle) error
	FindVehicleByID(ctx context.Context, vehicleID, ownerID string) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context, ownerID string) ([]domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) error
	DeleteVehicle(ctx context.Context, vehicleID, ownerID string) error
}

type DriverRepository interface {
	SaveDriver(ctx context.Context, driver domain.Driver) error
	FindDriverByID(ctx context.Context, driverID, ownerID string) (*domain.Driver, error)
	ListDrivers(ctx context.Context, ownerID string) ([]domain.Driver, error)
	UpdateDriver(ctx context.Context, driver domain.Driver) error
	DeleteDriver(ctx context.Context, driverID, ownerID string) error
}

type TripRepository interface {
	SaveTrip(ctx context.Context, trip domain.Trip) error
	FindTripByID(ctx context.Context, tripID, ownerID string) (*domain.Trip, error)
	ListTrips(ctx context.Context, ownerID string) ([]domain.Trip, error)
	UpdateTrip(ctx context.Context, trip domain.Trip) error
	DeleteTrip(ctx context.Context, tripID, ownerID string) error
}

type InvoiceRepository interface {
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error
	FindInvoiceByID(ctx context.Context, invoiceID, ownerID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, ownerID string) ([]domain.Invoice, error)
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error
	DeleteInvoice(ctx context.Context, invoiceID, ownerID string) error
}

type ExpenseRepository interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	FindExpenseByID(ctx context.Context, expenseID, ownerID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, ownerID string) ([]domain.Expense, error)
	UpdateExpense(ctx context.Context, expense domain.Expense) error
	DeleteExpense(ctx context.Context, expenseID, ownerID string) error
}

// UserRepository persists accounts themselves. Accounts are not owned by
// anything, so lookups here are by primary key or unique email.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// ReportingRepository serves the dashboard aggregates. Each method is one
// owner-scoped query; callers get read-skew across methods and accept it.
type ReportingRepository interface {
	SumCompletedTripFreight(ctx context.Context, ownerID string) (decimal.Decimal, error)
	CountTripsByStatus(ctx context.Context, ownerID string, status domain.TripStatus) (int64, error)
	SumPendingInvoiceAmounts(ctx context.Context, ownerID string) (decimal.Decimal, error)
	VehicleAvailability(ctx context.Context, ownerID string) (available int64, total int64, err error)
}

// RepositoryProvider bundles every repository implementation for injection
// into the service layer.
type RepositoryProvider struct {
	CustomerRepo  CustomerRepository
	VehicleRepo   VehicleRepository
	DriverRepo    DriverRepository
	TripRepo      TripRepository
	InvoiceRepo   InvoiceRepository
	ExpenseRepo   ExpenseRepository
	UserRepo      UserRepository
	ReportingRepo ReportingRepository
}
