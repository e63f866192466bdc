package domain

import "github.com/shopspring/decimal"

// CustomerStatus is a free-form status enum; membership is validated on
// input, transitions are not restricted.
type CustomerStatus string

const (
	CustomerActive    CustomerStatus = "active"
	CustomerInactive  CustomerStatus = "inactive"
	CustomerSuspended CustomerStatus = "suspended"
)

// Customer is a freight customer belonging to one account.
type Customer struct {
	CustomerID        string          `json:"customerID" db:"id"`
	OwnerID           string          `json:"userID" db:"user_id"`
	Name              string          `json:"name" db:"name"`
	Email             string          `json:"email" db:"email"`
	Phone             string          `json:"phone" db:"phone"`
	Address           string          `json:"address" db:"address"`
	GSTIN             string          `json:"gstin" db:"gstin"`
	CreditLimit       decimal.Decimal `json:"creditLimit" db:"credit_limit"`
	OutstandingAmount decimal.Decimal `json:"outstandingAmount" db:"outstanding_amount"`
	Status            CustomerStatus  `json:"status" db:"status"`
	AuditFields
}
