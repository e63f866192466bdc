package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateInvoiceRequest struct {
	CustomerID    string          `json:"customerID" binding:"required"`
	TripID        *string         `json:"tripID"`
	InvoiceNumber string          `json:"invoiceNumber" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	GSTAmount     decimal.Decimal `json:"gstAmount"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	DueDate       *time.Time      `json:"dueDate"`
	PaidDate      *time.Time      `json:"paidDate"`
	Status        string          `json:"status" binding:"omitempty,oneof=draft sent paid overdue cancelled"`
}

type UpdateInvoiceRequest struct {
	CustomerID    *string          `json:"customerID"`
	TripID        *string          `json:"tripID"`
	InvoiceNumber *string          `json:"invoiceNumber"`
	Amount        *decimal.Decimal `json:"amount"`
	GSTAmount     *decimal.Decimal `json:"gstAmount"`
	TotalAmount   *decimal.Decimal `json:"totalAmount"`
	PaidAmount    *decimal.Decimal `json:"paidAmount"`
	DueDate       *time.Time       `json:"dueDate"`
	PaidDate      *time.Time       `json:"paidDate"`
	Status        *string          `json:"status" binding:"omitempty,oneof=draft sent paid overdue cancelled"`
}
