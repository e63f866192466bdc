package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTripRequest references customer/vehicle/driver by id; the trip
// service verifies all three belong to the calling account.
type CreateTripRequest struct {
	CustomerID  string          `json:"customerID" binding:"required"`
	VehicleID   string          `json:"vehicleID" binding:"required"`
	DriverID    string          `json:"driverID" binding:"required"`
	TripNumber  string          `json:"tripNumber" binding:"required"`
	Origin      string          `json:"origin" binding:"required"`
	Destination string          `json:"destination" binding:"required"`
	Distance    decimal.Decimal `json:"distance"`
	Freight     decimal.Decimal `json:"freight"`
	Advance     decimal.Decimal `json:"advance"`
	StartDate   *time.Time      `json:"startDate"`
	EndDate     *time.Time      `json:"endDate"`
	Status      string          `json:"status" binding:"omitempty,oneof=scheduled in_progress completed cancelled"`
	Notes       string          `json:"notes"`
}

type UpdateTripRequest struct {
	CustomerID  *string          `json:"customerID"`
	VehicleID   *string          `json:"vehicleID"`
	DriverID    *string          `json:"driverID"`
	TripNumber  *string          `json:"tripNumber"`
	Origin      *string          `json:"origin"`
	Destination *string          `json:"destination"`
	Distance    *decimal.Decimal `json:"distance"`
	Freight     *decimal.Decimal `json:"freight"`
	Advance     *decimal.Decimal `json:"advance"`
	StartDate   *time.Time       `json:"startDate"`
	EndDate     *time.Time       `json:"endDate"`
	Status      *string          `json:"status" binding:"omitempty,oneof=scheduled in_progress completed cancelled"`
	Notes       *string          `json:"notes"`
}
