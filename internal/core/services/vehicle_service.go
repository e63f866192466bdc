package services

import (
	"context"
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

type vehicleService struct {
	BaseService
	vehicleRepo portsrepo.VehicleRepository
}

var _ portssvc.VehicleSvcFacade = (*vehicleService)(nil)

func NewVehicleService(repo portsrepo.VehicleRepository) portssvc.VehicleSvcFacade {
	return &vehicleService{vehicleRepo: repo}
}

func (s *vehicleService) CreateVehicle(ctx context.Context, req dto.CreateVehicleRequest, ownerID string) (*domain.Vehicle, error) {
	if req.Capacity.IsNegative() {
		return nil, fmt.Errorf("%w: capacity must not be negative", apperrors.ErrValidation)
	}

	status := domain.VehicleStatus(req.Status)
	if status == "" {
		status = domain.VehicleAvailable
	}

	now := time.Now()
	vehicle := domain.Vehicle{
		VehicleID:          uuid.NewString(),
		OwnerID:            ownerID,
		RegistrationNumber: req.RegistrationNumber,
		Type:               req.Type,
		Capacity:           req.Capacity,
		CapacityUnit:       req.CapacityUnit,
		Model:              req.Model,
		Year:               req.Year,
		InsuranceNumber:    req.InsuranceNumber,
		InsuranceExpiry:    req.InsuranceExpiry,
		PermitNumber:       req.PermitNumber,
		PermitExpiry:       req.PermitExpiry,
		FitnessExpiry:      req.FitnessExpiry,
		Status:             status,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.vehicleRepo.SaveVehicle(ctx, vehicle); err != nil {
		s.LogError(ctx, err, "Failed to save vehicle", slog.String("vehicle_id", vehicle.VehicleID))
		return nil, err
	}

	s.LogInfo(ctx, "Vehicle created", slog.String("vehicle_id", vehicle.VehicleID))
	return &vehicle, nil
}

func (s *vehicleService) GetVehicleByID(ctx context.Context, vehicleID, ownerID string) (*domain.Vehicle, error) {
	return s.vehicleRepo.FindVehicleByID(ctx, vehicleID, ownerID)
}

func (s *vehicleService) ListVehicles(ctx context.Context, ownerID string) ([]domain.Vehicle, error) {
	return s.vehicleRepo.ListVehicles(ctx, ownerID)
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, vehicleID string, req dto.UpdateVehicleRequest, ownerID string) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindVehicleByID(ctx, vehicleID, ownerID)
	if err != nil {
		return nil, err
	}

	if req.RegistrationNumber != nil {
		vehicle.RegistrationNumber = *req.RegistrationNumber
	}
	if req.Type != nil {
		vehicle.Type = *req.Type
	}
	if req.Capacity != nil {
		if req.Capacity.IsNegative() {
			return nil, fmt.Errorf("%w: capacity must not be negative", apperrors.ErrValidation)
		}
		vehicle.Capacity = *req.Capacity
	}
	if req.CapacityUnit != nil {
		vehicle.CapacityUnit = *req.CapacityUnit
	}
	if req.Model != nil {
		vehicle.Model = *req.Model
	}
	if req.Year != nil {
		vehicle.Year = *req.Year
	}
	if req.InsuranceNumber != nil {
		vehicle.InsuranceNumber = *req.InsuranceNumber
	}
	if req.InsuranceExpiry != nil {
		vehicle.InsuranceExpiry = req.InsuranceExpiry
	}
	if req.PermitNumber != nil {
		vehicle.PermitNumber = *req.PermitNumber
	}
	if req.PermitExpiry != nil {
		vehicle.PermitExpiry = req.PermitExpiry
	}
	if req.FitnessExpiry != nil {
		vehicle.FitnessExpiry = req.FitnessExpiry
	}
	if req.Status != nil {
		vehicle.Status = domain.VehicleStatus(*req.Status)
	}
	vehicle.UpdatedAt = time.Now()

	if err := s.vehicleRepo.UpdateVehicle(ctx, *vehicle); err != nil {
		s.LogError(ctx, err, "Failed to update vehicle", slog.String("vehicle_id", vehicleID))
		return nil, err
	}
	return vehicle, nil
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, vehicleID, ownerID string) error {
	if err := s.vehicleRepo.DeleteVehicle(ctx, vehicleID, ownerID); err != nil {
		s.LogError(ctx, err, "Failed to delete vehicle", slog.String("vehicle_id", vehicleID))
		return err
	}
	return nil
}
