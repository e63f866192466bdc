package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/transbook/transbook-backend/internal/apperrors"
	"github.com/transbook/transbook-backend/internal/core/domain"
	portsrepo "github.com/transbook/transbook-backend/internal/core/ports/repositories"
	portssvc "github.com/transbook/transbook-backend/internal/core/ports/services"
	"github.com/transbook/transbook-backend/internal/dto"
)

// tripService coordinates trips against the three entities they reference.
// Every referenced customer, vehicle and driver must resolve within the
// caller's account; a reference into another account fails exactly like a
// reference to nothing.
type tripService struct {
	BaseService
	tripRepo     portsrepo.TripRepository
	customerRepo portsrepo.CustomerRepository
	vehicleRepo  portsrepo.VehicleRepository
	driverRepo   portsrepo.DriverRepository
}

var _ portssvc.TripSvcFacade = (*tripService)(nil)

func NewTripService(tripRepo portsrepo.TripRepository, customerRepo portsrepo.CustomerRepository, vehicleRepo portsrepo.VehicleRepository, driverRepo portsrepo.DriverRepository) portssvc.TripSvcFacade {
	return &tripService{
		tripRepo:     tripRepo,
		customerRepo: customerRepo,
		vehicleRepo:  vehicleRepo,
		driverRepo:   driverRepo,
	}
}

func (s *tripService) checkReferences(ctx context.Context, customerID, vehicleID, driverID, ownerID string) error {
	if _, err := s.customerRepo.FindCustomerByID(ctx, customerID, ownerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: customer %s not found", apperrors.ErrValidation, customerID)
		}
		return err
	}
	if _, err := s.vehicleRepo.FindVehicleByID(ctx, vehicleID, ownerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: vehicle %s not found", apperrors.ErrValidation, vehicleID)
		}
		return err
	}
	if _, err := s.driverRepo.FindDriverByID(ctx, driverID, ownerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: driver %s not found", apperrors.ErrValidation, driverID)
		}
		return err
	}
	return nil
}

func (s *tripService) CreateTrip(ctx context.Context, req dto.CreateTripRequest, ownerID string) (*domain.Trip, error) {
	if req.Distance.IsNegative() {
		return nil, fmt.Errorf("%w: distance must not be negative", apperrors.ErrValidation)
	}
	if req.Freight.IsNegative() {
		return nil, fmt.Errorf("%w: freight must not be negative", apperrors.ErrValidation)
	}
	if req.Advance.IsNegative() {
		return nil, fmt.Errorf("%w: advance must not be negative", apperrors.ErrValidation)
	}
	if err := s.checkReferences(ctx, req.CustomerID, req.VehicleID, req.DriverID, ownerID); err != nil {
		return nil, err
	}

	status := domain.TripStatus(req.Status)
	if status == "" {
		status = domain.TripScheduled
	}

	now := time.Now()
	trip := domain.Trip{
		TripID:      uuid.NewString(),
		OwnerID:     ownerID,
		CustomerID:  req.CustomerID,
		VehicleID:   req.VehicleID,
		DriverID:    req.DriverID,
		TripNumber:  req.TripNumber,
		Origin:      req.Origin,
		Destination: req.Destination,
		Distance:    req.Distance,
		Freight:     req.Freight,
		Advance:     req.Advance,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      status,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.tripRepo.SaveTrip(ctx, trip); err != nil {
		s.LogError(ctx, err, "Failed to save trip", slog.String("trip_id", trip.TripID))
		return nil, err
	}

	s.LogInfo(ctx, "Trip created", slog.String("trip_id", trip.TripID), slog.String("trip_number", trip.TripNumber))
	return &trip, nil
}

func (s *tripService) GetTripByID(ctx context.Context, tripID, ownerID string) (*domain.Trip, error) {
	return s.tripRepo.FindTripByID(ctx, tripID, ownerID)
}

func (s *tripService) ListTrips(ctx context.Context, ownerID string) ([]domain.Trip, error) {
	return s.tripRepo.ListTrips(ctx, ownerID)
}

func (s *tripService) UpdateTrip(ctx context.Context, tripID string, req dto.UpdateTripRequest, ownerID string) (*domain.Trip, error) {
	trip, err := s.tripRepo.FindTripByID(ctx, tripID, ownerID)
	if err != nil {
		return nil, err
	}

	if req.CustomerID != nil {
		trip.CustomerID = *req.CustomerID
	}
	if req.VehicleID != nil {
		trip.VehicleID = *req.VehicleID
	}
	if req.DriverID != nil {
		trip.DriverID = *req.DriverID
	}
	// Re-verify references whenever any of them changed.
	if req.CustomerID != nil || req.VehicleID != nil || req.DriverID != nil {
		if err := s.checkReferences(ctx, trip.CustomerID, trip.VehicleID, trip.DriverID, ownerID); err != nil {
			return nil, err
		}
	}
	if req.TripNumber != nil {
		trip.TripNumber = *req.TripNumber
	}
	if req.Origin != nil {
		trip.Origin = *req.Origin
	}
	if req.Destination != nil {
		trip.Destination = *req.Destination
	}
	if req.Distance != nil {
		if req.Distance.IsNegative() {
			return nil, fmt.Errorf("%w: distance must not be negative", apperrors.ErrValidation)
		}
		trip.Distance = *req.Distance
	}
	if req.Freight != nil {
		if req.Freight.IsNegative() {
			return nil, fmt.Errorf("%w: freight must not be negative", apperrors.ErrValidation)
		}
		trip.Freight = *req.Freight
	}
	if req.Advance != nil {
		if req.Advance.IsNegative() {
			return nil, fmt.Errorf("%w: advance must not be negative", apperrors.ErrValidation)
		}
		trip.Advance = *req.Advance
	}
	if req.StartDate != nil {
		trip.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		trip.EndDate = req.EndDate
	}
	if req.Status != nil {
		trip.Status = domain.TripStatus(*req.Status)
	}
	if req.Notes != nil {
		trip.Notes = *req.Notes
	}
	trip.UpdatedAt = time.Now()

	if err := s.tripRepo.UpdateTrip(ctx, *trip); err != nil {
		s.LogError(ctx, err, "Failed to update trip", slog.String("trip_id", tripID))
		return nil, err
	}
	return trip, nil
}

func (s *tripService) DeleteTrip(ctx context.Context, tripID, ownerID string) error {
	if err := s.tripRepo.DeleteTrip(ctx, tripID, ownerID); err != nil {
		s.LogError(ctx, err, "Failed to delete trip", slog.String("trip_id", tripID))
		return err
	}
	return nil
}
