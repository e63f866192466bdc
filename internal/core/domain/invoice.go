package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceSent      InvoiceStatus = "sent"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// Invoice bills a customer, optionally for a specific trip. totalAmount is
// expected to stay >= paidAmount but this is not enforced.
type Invoice struct {
	InvoiceID     string          `json:"invoiceID" db:"id"`
	OwnerID       string          `json:"userID" db:"user_id"`
	CustomerID    string          `json:"customerID" db:"customer_id"`
	TripID        *string         `json:"tripID,omitempty" db:"trip_id"`
	InvoiceNumber string          `json:"invoiceNumber" db:"invoice_number"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	GSTAmount     decimal.Decimal `json:"gstAmount" db:"gst_amount"`
	TotalAmount   decimal.Decimal `json:"totalAmount" db:"total_amount"`
	PaidAmount    decimal.Decimal `json:"paidAmount" db:"paid_amount"`
	DueDate       *time.Time      `json:"dueDate,omitempty" db:"due_date"`
	PaidDate      *time.Time      `json:"paidDate,omitempty" db:"paid_date"`
	Status        InvoiceStatus   `json:"status" db:"status"`
	AuditFields
}
