package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ExpenseCategory string

const (
	ExpenseFuel        ExpenseCategory = "fuel"
	ExpenseMaintenance ExpenseCategory = "maintenance"
	ExpenseToll        ExpenseCategory = "toll"
	ExpenseInsurance   ExpenseCategory = "insurance"
	ExpenseOther       ExpenseCategory = "other"
)

// Expense is an operating cost, optionally tied to a trip and/or a vehicle.
type Expense struct {
	ExpenseID   string          `json:"expenseID" db:"id"`
	OwnerID     string          `json:"userID" db:"user_id"`
	TripID      *string         `json:"tripID,omitempty" db:"trip_id"`
	VehicleID   *string         `json:"vehicleID,omitempty" db:"vehicle_id"`
	Category    ExpenseCategory `json:"category" db:"category"`
	Description string          `json:"description" db:"description"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Date        time.Time       `json:"date" db:"date"`
	BillNumber  string          `json:"billNumber" db:"bill_number"`
	AuditFields
}
