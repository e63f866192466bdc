package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/transbook/transbook-backend/internal/core/domain"
	portsrepo "github.com/transbook/transbook-backend/internal/core/ports/repositories"
	portssvc "github.com/transbook/transbook-backend/internal/core/ports/services"
	"github.com/transbook/transbook-backend/internal/dto"
)

type driverService struct {
	BaseService
	driverRepo portsrepo.DriverRepository
}

var _ portssvc.DriverSvcFacade = (*driverService)(nil)

func NewDriverService(repo portsrepo.DriverRepository) portssvc.DriverSvcFacade {
	return &driverService{driverRepo: repo}
}

func (s *driverService) CreateDriver(ctx context.Context, req dto.CreateDriverRequest, ownerID string) (*domain.Driver, error) {
	status := domain.DriverStatus(req.Status)
	if status == "" {
		status = domain.DriverAvailable
	}

	now := time.Now()
	driver := domain.Driver{
		DriverID:         uuid.NewString(),
		OwnerID:          ownerID,
		Name:             req.Name,
		Phone:            req.Phone,
		Email:            req.Email,
		LicenseNumber:    req.LicenseNumber,
		LicenseExpiry:    req.LicenseExpiry,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		Status:           status,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.driverRepo.SaveDriver(ctx, driver); err != nil {
		s.LogError(ctx, err, "Failed to save driver", slog.String("driver_id", driver.DriverID))
		return nil, err
	}

	s.LogInfo(ctx, "Driver created", slog.String("driver_id", driver.DriverID))
	return &driver, nil
}

func (s *driverService) GetDriverByID(ctx context.Context, driverID, ownerID string) (*domain.Driver, error) {
	return s.driverRepo.FindDriverByID(ctx, driverID, ownerID)
}

func (s *driverService) ListDrivers(ctx context.Context, ownerID string) ([]domain.Driver, error) {
	return s.driverRepo.ListDrivers(ctx, ownerID)
}

func (s *driverService) UpdateDriver(ctx context.Context, driverID string, req dto.UpdateDriverRequest, ownerID string) (*domain.Driver, error) {
	driver, err := s.driverRepo.FindDriverByID(ctx, driverID, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		driver.Name = *req.Name
	}
	if req.Phone != nil {
		driver.Phone = *req.Phone
	}
	if req.Email != nil {
		driver.Email = *req.Email
	}
	if req.LicenseNumber != nil {
		driver.LicenseNumber = *req.LicenseNumber
	}
	if req.LicenseExpiry != nil {
		driver.LicenseExpiry = req.LicenseExpiry
	}
	if req.Address != nil {
		driver.Address = *req.Address
	}
	if req.EmergencyContact != nil {
		driver.EmergencyContact = *req.EmergencyContact
	}
	if req.Status != nil {
		driver.Status = domain.DriverStatus(*req.Status)
	}
	driver.UpdatedAt = time.Now()

	if err := s.driverRepo.UpdateDriver(ctx, *driver); err != nil {
		s.LogError(ctx, err, "Failed to update driver", slog.String("driver_id", driverID))
		return nil, err
	}
	return driver, nil
}

func (s *driverService) DeleteDriver(ctx context.Context, driverID, ownerID string) error {
	if err := s.driverRepo.DeleteDriver(ctx, driverID, ownerID); err != nil {
		s.LogError(ctx, err, "Failed to delete driver", slog.String("driver_id", driverID))
		return err
	}
	return nil
}
