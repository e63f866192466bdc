package services

import (
	portsrepo "github.com/transbook/transbook-backend/internal/core/ports/repositories"
	portssvc "github.com/transbook/transbook-backend/internal/core/ports/services"
)

// NewServiceContainer wires every service against the repository provider.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Customer:  NewCustomerService(repos.CustomerRepo),
		Vehicle:   NewVehicleService(repos.VehicleRepo),
		Driver:    NewDriverService(repos.DriverRepo),
		Trip:      NewTripService(repos.TripRepo, repos.CustomerRepo, repos.VehicleRepo, repos.DriverRepo),
		Invoice:   NewInvoiceService(repos.InvoiceRepo, repos.CustomerRepo, repos.TripRepo),
		Expense:   NewExpenseService(repos.ExpenseRepo, repos.TripRepo, repos.VehicleRepo),
		Dashboard: NewDashboardService(repos.ReportingRepo),
		User:      NewUserService(repos.UserRepo),
	}
}
