package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest body para POST /api/invoices. Subtotal es la base imponible sin IGV.
type CreateInvoiceRequest struct {
	Series       string          `json:"series"` // ej. F001
	CustomerName string          `json:"customer_name"`
	CustomerRUC  string          `json:"customer_ruc"`
	IssueDate    string          `json:"issue_date,omitempty"` // YYYY-MM-DD; vacío = hoy
	DueDays      int             `json:"due_days,omitempty"`   // crédito en días; 0 = contado
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// InvoiceResponse factura en respuestas.
type InvoiceResponse struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"` // F001-00000042
	Series       string          `json:"series"`
	Number       int             `json:"number"`
	CustomerName string          `json:"customer_name"`
	CustomerRUC  string          `json:"customer_ruc"`
	IssueDate    time.Time       `json:"issue_date"`
	DueDate      time.Time       `json:"due_date"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	IGV          decimal.Decimal `json:"igv"`
	Total        decimal.Decimal `json:"total"`
	Status       string          `json:"status"`
	PaidAt       *time.Time      `json:"paid_at,omitempty"`
}
