package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type VehicleStatus string

const (
	VehicleAvailable   VehicleStatus = "available"
	VehicleInTransit   VehicleStatus = "in_transit"
	VehicleMaintenance VehicleStatus = "maintenance"
	VehicleInactive    VehicleStatus = "inactive"
)

// Vehicle is a fleet vehicle. The registration number is unique across the
// whole system, not just within the owning account.
type Vehicle struct {
	VehicleID          string          `json:"vehicleID" db:"id"`
	OwnerID            string          `json:"userID" db:"user_id"`
	RegistrationNumber string          `json:"registrationNumber" db:"registration_number"`
	Type               string          `json:"type" db:"type"`
	Capacity           decimal.Decimal `json:"capacity" db:"capacity"`
	CapacityUnit       string          `json:"capacityUnit" db:"capacity_unit"`
	Model              string          `json:"model" db:"model"`
	Year               int             `json:"year" db:"year"`
	InsuranceNumber    string          `json:"insuranceNumber" db:"insurance_number"`
	InsuranceExpiry    *time.Time      `json:"insuranceExpiry,omitempty" db:"insurance_expiry"`
	PermitNumber       string          `json:"permitNumber" db:"permit_number"`
	PermitExpiry       *time.Time      `json:"permitExpiry,omitempty" db:"permit_expiry"`
	FitnessExpiry      *time.Time      `json:"fitnessExpiry,omitempty" db:"fitness_expiry"`
	Status             VehicleStatus   `json:"status" db:"status"`
	AuditFields
}
