package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Invoice.
const (
	InvoicePending   = "pending"
	InvoicePaid      = "paid"
	InvoiceCancelled = "cancelled"
)

// Invoice comprobante de venta emitido a un cliente (montos en soles).
type Invoice struct {
	ID           string
	Series       string // ej. F001
	Number       int
	CustomerName string
	CustomerRUC  string
	IssueDate    time.Time
	DueDate      time.Time
	Subtotal     decimal.Decimal
	IGV          decimal.Decimal
	Total        decimal.Decimal
	Status       string // pending, paid, cancelled
	CreatedBy    string
	PaidAt       *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanTransitionTo solo una factura pendiente puede pagarse o anularse.
func (i *Invoice) CanTransitionTo(status string) bool {
	if i.Status != InvoicePending {
		return false
	}
	return status == InvoicePaid || status == InvoiceCancelled
}
