package domain

import "time"

type DriverStatus string

const (
	DriverAvailable DriverStatus = "available"
	DriverOnTrip    DriverStatus = "on_trip"
	DriverInactive  DriverStatus = "inactive"
)

// Driver holds one account's driver record. License numbers are unique
// system-wide.
type Driver struct {
	DriverID         string       `json:"driverID" db:"id"`
	OwnerID          string       `json:"userID" db:"user_id"`
	Name             string       `json:"name" db:"name"`
	Phone            string       `json:"phone" db:"phone"`
	Email            string       `json:"email" db:"email"`
	LicenseNumber    string       `json:"licenseNumber" db:"license_number"`
	LicenseExpiry    *time.Time   `json:"licenseExpiry,omitempty" db:"license_expiry"`
	Address          string       `json:"address" db:"address"`
	EmergencyContact string       `json:"emergencyContact" db:"emergency_contact"`
	Status           DriverStatus `json:"status" db:"status"`
	AuditFields
}
