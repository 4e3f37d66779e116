package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
)

func TestInvoice_CanTransitionTo(t *testing.T) {
	inv := &entity.Invoice{Status: entity.InvoicePending}
	assert.True(t, inv.CanTransitionTo(entity.InvoicePaid))
	assert.True(t, inv.CanTransitionTo(entity.InvoiceCancelled))
	assert.False(t, inv.CanTransitionTo(entity.InvoicePending))

	inv.Status = entity.InvoicePaid
	assert.False(t, inv.CanTransitionTo(entity.InvoiceCancelled))
}

func TestTimeEntry_WorkedHours(t *testing.T) {
	in := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	out := in.Add(8*time.Hour + 30*time.Minute)

	e := &entity.TimeEntry{CheckIn: in}
	assert.True(t, e.WorkedHours().IsZero())

	e.CheckOut = &out
	assert.Equal(t, "8.5", e.WorkedHours().String())
}

func TestComplianceItem_Overdue(t *testing.T) {
	due := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	item := &entity.ComplianceItem{Status: entity.CompliancePending, DueDate: due}
	assert.True(t, item.Overdue(due.Add(time.Hour)))
	assert.False(t, item.Overdue(due.Add(-time.Hour)))

	item.Status = entity.ComplianceDone
	assert.False(t, item.Overdue(due.Add(time.Hour)))
}
