package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Employee.
const (
	EmployeeActive   = "active"
	EmployeeInactive = "inactive"
)

// Employee trabajador en planilla.
type Employee struct {
	ID        string
	DNI       string // 8 dígitos
	FirstName string
	LastName  string
	Position  string
	Area      string
	Salary    decimal.Decimal // remuneración mensual en soles
	HireDate  time.Time
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName nombre para listados.
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
