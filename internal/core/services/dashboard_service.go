package services

import (
	"context"

	"github.com/transbook/transbook-backend/internal/core/domain"
	portsrepo "github.com/transbook/transbook-backend/internal/core/ports/repositories"
	portssvc "github.com/transbook/transbook-backend/internal/core/ports/services"
)

// dashboardService computes the stats snapshot fresh on every call. The four
// aggregates run as independent queries, so the snapshot can exhibit read
// skew under concurrent writes.
type dashboardService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

func NewDashboardService(repo portsrepo.ReportingRepository) portssvc.DashboardSvcFacade {
	return &dashboardService{reportingRepo: repo}
}

func (s *dashboardService) GetStats(ctx context.Context, ownerID string) (*domain.DashboardStats, error) {
	totalRevenue, err := s.reportingRepo.SumCompletedTripFreight(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute total revenue")
		return nil, err
	}

	activeTrips, err := s.reportingRepo.CountTripsByStatus(ctx, ownerID, domain.TripInProgress)
	if err != nil {
		s.LogError(ctx, err, "Failed to count active trips")
		return nil, err
	}

	pendingPayments, err := s.reportingRepo.SumPendingInvoiceAmounts(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute pending payments")
		return nil, err
	}

	available, total, err := s.reportingRepo.VehicleAvailability(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute vehicle availability")
		return nil, err
	}

	return &domain.DashboardStats{
		TotalRevenue:      totalRevenue,
		ActiveTrips:       activeTrips,
		PendingPayments:   pendingPayments,
		AvailableVehicles: available,
		TotalVehicles:     total,
	}, nil
}
