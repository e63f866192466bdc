// Package services defines the service facades the HTTP handlers depend on.
// The ownerID argument on every entity operation is the authenticated
// account id supplied by the auth middleware; services trust it completely.
package services

import (
	"context"

	"github.com/transbook/transbook-backend/internal/core/domain"
	"github.com/transbook/transbook-backend/internal/dto"
)

type CustomerSvcFacade interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, ownerID string) (*domain.Customer, error)
	GetCustomerByID(ctx context.Context, customerID, ownerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, ownerID string) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, ownerID string) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, customerID, ownerID string) error
}

type VehicleSvcFacade interface {
	CreateVehicle(ctx context.Context, req dto.CreateVehicleRequest, ownerID string) (*domain.Vehicle, error)
	GetVehicleByID(ctx context.Context, vehicleID, ownerID string) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context, ownerID string) ([]domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicleID string, req dto.UpdateVehicleRequest, ownerID string) (*domain.Vehicle, error)
	DeleteVehicle(ctx context.Context, vehicleID, ownerID string) error
}

type DriverSvcFacade interface {
	CreateDriver(ctx context.Context, req dto.CreateDriverRequest, ownerID string) (*domain.Driver, error)
	GetDriverByID(ctx context.Context, driverID, ownerID string) (*domain.Driver, error)
	ListDrivers(ctx context.Context, ownerID string) ([]domain.Driver, error)
	UpdateDriver(ctx context.Context, driverID string, req dto.UpdateDriverRequest, ownerID string) (*domain.Driver, error)
	DeleteDriver(ctx context.Context, driverID, ownerID string) error
}

type TripSvcFacade interface {
	CreateTrip(ctx context.Context, req dto.CreateTripRequest, ownerID string) (*domain.Trip, error)
	GetTripByID(ctx context.Context, tripID, ownerID string) (*domain.Trip, error)
	ListTrips(ctx context.Context, ownerID string) ([]domain.Trip, error)
	UpdateTrip(ctx context.Context, tripID string, req dto.UpdateTripRequest, ownerID string) (*domain.Trip, error)
	DeleteTrip(ctx context.Context, tripID, ownerID string) error
}

type InvoiceSvcFacade interface {
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, ownerID string) (*domain.Invoice, error)
	GetInvoiceByID(ctx context.Context, invoiceID, ownerID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, ownerID string) ([]domain.Invoice, error)
	UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest, ownerID string) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, invoiceID, ownerID string) error
}

type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, ownerID string) (*domain.Expense, error)
	GetExpenseByID(ctx context.Context, expenseID, ownerID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, ownerID string) ([]domain.Expense, error)
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, ownerID string) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, expenseID, ownerID string) error
}

// DashboardSvcFacade computes the dashboard snapshot fresh on every call.
type DashboardSvcFacade interface {
	GetStats(ctx context.Context, ownerID string) (*domain.DashboardStats, error)
}

type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// ServiceContainer bundles every facade for route registration.
type ServiceContainer struct {
	Customer  CustomerSvcFacade
	Vehicle   VehicleSvcFacade
	Driver    DriverSvcFacade
	Trip      TripSvcFacade
	Invoice   InvoiceSvcFacade
	Expense   ExpenseSvcFacade
	Dashboard DashboardSvcFacade
	User      UserSvcFacade
}
