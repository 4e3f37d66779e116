package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeEntry marcación de asistencia de un trabajador en un día.
type TimeEntry struct {
	ID         string
	EmployeeID string
	WorkDate   time.Time
	CheckIn    time.Time
	CheckOut   *time.Time // nil mientras la jornada sigue abierta
	Hours      decimal.Decimal
	RecordedBy string
	CreatedAt  time.Time
}

// WorkedHours horas entre entrada y salida, redondeadas a 2 decimales; cero si no hay salida.
func (t *TimeEntry) WorkedHours() decimal.Decimal {
	if t.CheckOut == nil || !t.CheckOut.After(t.CheckIn) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(t.CheckOut.Sub(t.CheckIn).Hours()).Round(2)
}
