package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeEntryRequest body para POST /api/time-entries: marca entrada o, si ya hay una abierta, salida.
type TimeEntryRequest struct {
	EmployeeID string `json:"employee_id"`
}

// TimeEntryResponse marcación en respuestas.
type TimeEntryResponse struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	WorkDate   time.Time       `json:"work_date"`
	CheckIn    time.Time       `json:"check_in"`
	CheckOut   *time.Time      `json:"check_out,omitempty"`
	Hours      decimal.Decimal `json:"hours"`
	Kind       string          `json:"kind"` // check_in | check_out
}
