package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest carries the validated fields for a new customer.
// The owner is never taken from the payload; it always comes from the
// authenticated caller.
type CreateCustomerRequest struct {
	Name              string          `json:"name" binding:"required"`
	Email             string          `json:"email" binding:"omitempty,email"`
	Phone             string          `json:"phone"`
	Address           string          `json:"address"`
	GSTIN             string          `json:"gstin"`
	CreditLimit       decimal.Decimal `json:"creditLimit"`
	OutstandingAmount decimal.Decimal `json:"outstandingAmount"`
	Status            string          `json:"status" binding:"omitempty,oneof=active inactive suspended"`
}

// UpdateCustomerRequest is a partial update; nil fields are left untouched.
type UpdateCustomerRequest struct {
	Name              *string          `json:"name"`
	Email             *string          `json:"email" binding:"omitempty,email"`
	Phone             *string          `json:"phone"`
	Address           *string          `json:"address"`
	GSTIN             *string          `json:"gstin"`
	CreditLimit       *decimal.Decimal `json:"creditLimit"`
	OutstandingAmount *decimal.Decimal `json:"outstandingAmount"`
	Status            *string          `json:"status" binding:"omitempty,oneof=active inactive suspended"`
}
