package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest body para POST /api/employees.
type CreateEmployeeRequest struct {
	DNI       string          `json:"dni"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Position  string          `json:"position,omitempty"`
	Area      string          `json:"area,omitempty"`
	Salary    decimal.Decimal `json:"salary"`
	HireDate  string          `json:"hire_date"` // YYYY-MM-DD; vacío = hoy
}

// UpdateStatusRequest body para cambios de estado (empleados, facturas, obligaciones).
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// EmployeeResponse trabajador en respuestas.
type EmployeeResponse struct {
	ID        string          `json:"id"`
	DNI       string          `json:"dni"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	FullName  string          `json:"full_name"`
	Position  string          `json:"position"`
	Area      string          `json:"area"`
	Salary    decimal.Decimal `json:"salary"`
	HireDate  time.Time       `json:"hire_date"`
	Status    string          `json:"status"`
}
