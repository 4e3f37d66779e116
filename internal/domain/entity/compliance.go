package entity

import "time"

// Entidades reguladoras (solo como etiqueta).
const (
	AgencySUNAT   = "SUNAT"
	AgencySUNAFIL = "SUNAFIL"
)

// Estados de ComplianceItem.
const (
	CompliancePending = "pending"
	ComplianceDone    = "done"
)

// ComplianceItem obligación legal con vencimiento (declaraciones, planilla electrónica, etc.).
type ComplianceItem struct {
	ID          string
	Agency      string // SUNAT, SUNAFIL
	Title       string
	Description string
	DueDate     time.Time
	Status      string // pending, done
	CompletedAt *time.Time
	UpdatedAt   time.Time
}

// Overdue indica si la obligación sigue pendiente después del vencimiento.
func (c *ComplianceItem) Overdue(now time.Time) bool {
	return c.Status == CompliancePending && now.After(c.DueDate)
}
