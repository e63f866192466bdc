package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateExpenseRequest struct {
	TripID      *string         `json:"tripID"`
	VehicleID   *string         `json:"vehicleID"`
	Category    string          `json:"category" binding:"required,oneof=fuel maintenance toll insurance other"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date" binding:"required"`
	BillNumber  string          `json:"billNumber"`
}

type UpdateExpenseRequest struct {
	TripID      *string          `json:"tripID"`
	VehicleID   *string          `json:"vehicleID"`
	Category    *string          `json:"category" binding:"omitempty,oneof=fuel maintenance toll insurance other"`
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Date        *time.Time       `json:"date"`
	BillNumber  *string          `json:"billNumber"`
}
