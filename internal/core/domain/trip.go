package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TripStatus string

const (
	TripScheduled  TripStatus = "scheduled"
	TripInProgress TripStatus = "in_progress"
	TripCompleted  TripStatus = "completed"
	TripCancelled  TripStatus = "cancelled"
)

// Trip records one freight movement. Customer, vehicle and driver references
// must resolve to entities owned by the same account; the trip service
// enforces this before any write.
type Trip struct {
	TripID      string          `json:"tripID" db:"id"`
	OwnerID     string          `json:"userID" db:"user_id"`
	CustomerID  string          `json:"customerID" db:"customer_id"`
	VehicleID   string          `json:"vehicleID" db:"vehicle_id"`
	DriverID    string          `json:"driverID" db:"driver_id"`
	TripNumber  string          `json:"tripNumber" db:"trip_number"`
	Origin      string          `json:"origin" db:"origin"`
	Destination string          `json:"destination" db:"destination"`
	Distance    decimal.Decimal `json:"distance" db:"distance"`
	Freight     decimal.Decimal `json:"freight" db:"freight"`
	Advance     decimal.Decimal `json:"advance" db:"advance"`
	StartDate   *time.Time      `json:"startDate,omitempty" db:"start_date"`
	EndDate     *time.Time      `json:"endDate,omitempty" db:"end_date"`
	Status      TripStatus      `json:"status" db:"status"`
	Notes       string          `json:"notes" db:"notes"`
	AuditFields
}
