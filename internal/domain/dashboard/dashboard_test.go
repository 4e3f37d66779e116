package dashboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-pyme/internal/domain/dashboard"
	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
)

func titles(list []dashboard.Shortcut) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, s.Title)
	}
	return out
}

func TestShortcutsFor_TodosLosRolesNoVacios(t *testing.T) {
	for _, role := range entity.Roles() {
		assert.NotEmpty(t, dashboard.ShortcutsFor(role), role)
	}
}

func TestShortcutsFor_Contabilidad(t *testing.T) {
	got := dashboard.ShortcutsFor(entity.RoleContabilidad)
	require.Len(t, got, 2)

	assert.Equal(t, "Balance General", got[0].Title)
	assert.Equal(t, dashboard.OpenTab, got[0].Action)
	assert.Equal(t, "accounting", got[0].Target)
	assert.Equal(t, dashboard.ColorSuccess, got[0].Color)

	assert.Equal(t, "Cumplimiento SUNAT", got[1].Title)
	assert.Equal(t, dashboard.OpenTab, got[1].Action)
	assert.Equal(t, "compliance", got[1].Target)
	assert.Equal(t, dashboard.ColorInfo, got[1].Color)
}

func TestShortcutsFor_RRHH(t *testing.T) {
	got := dashboard.ShortcutsFor(entity.RoleRRHH)
	assert.Equal(t,
		[]string{"Nuevo Empleado", "Gestionar Personal", "Control Asistencia", "Cumplimiento SUNAFIL"},
		titles(got))

	want := []struct {
		action dashboard.ActionKind
		target string
		color  dashboard.Color
	}{
		{dashboard.OpenModal, "newEmployee", dashboard.ColorPrimary},
		{dashboard.OpenTab, "personnel", dashboard.ColorInfo},
		{dashboard.OpenTab, "timetracking", dashboard.ColorWarning},
		{dashboard.OpenTab, "compliance", dashboard.ColorSuccess},
	}
	for i, w := range want {
		assert.Equal(t, w.action, got[i].Action, got[i].Title)
		assert.Equal(t, w.target, got[i].Target, got[i].Title)
		assert.Equal(t, w.color, got[i].Color, got[i].Title)
	}
}

func TestShortcutsFor_Supervisor(t *testing.T) {
	got := dashboard.ShortcutsFor(entity.RoleSupervisor)
	assert.Equal(t, []string{"Marcar Tiempo", "Ver Asistencia", "Lista Personal"}, titles(got))

	assert.Equal(t, dashboard.OpenModal, got[0].Action)
	assert.Equal(t, "timeEntry", got[0].Target)
	assert.Equal(t, dashboard.ColorPrimary, got[0].Color)
	assert.Equal(t, "timetracking", got[1].Target)
	assert.Equal(t, dashboard.ColorWarning, got[1].Color)
	assert.Equal(t, "personnel", got[2].Target)
	assert.Equal(t, dashboard.ColorInfo, got[2].Color)
}

func TestShortcutsFor_AdminEsSuperconjunto(t *testing.T) {
	admin := dashboard.ShortcutsFor(entity.RoleAdmin)
	targets := map[string]bool{}
	for _, s := range admin {
		targets[s.Target] = true
	}
	for _, role := range entity.Roles() {
		for _, s := range dashboard.ShortcutsFor(role) {
			assert.True(t, targets[s.Target], "admin debe incluir %s (%s)", s.Target, role)
		}
	}
}

func TestShortcutsFor_RolDesconocidoRecibeAdmin(t *testing.T) {
	assert.Equal(t, dashboard.ShortcutsFor(entity.RoleAdmin), dashboard.ShortcutsFor("gerente"))
	assert.Equal(t, dashboard.LabelsFor(entity.RoleAdmin), dashboard.LabelsFor("gerente"))
	assert.Equal(t,
		dashboard.StatusFor(entity.RoleAdmin, dashboard.LiveStats{PendingInvoices: 2}),
		dashboard.StatusFor("", dashboard.LiveStats{PendingInvoices: 2}))
}

func TestShortcutsFor_DevuelveCopia(t *testing.T) {
	got := dashboard.ShortcutsFor(entity.RoleSupervisor)
	got[0].Title = "modificado"
	assert.Equal(t, "Marcar Tiempo", dashboard.ShortcutsFor(entity.RoleSupervisor)[0].Title)
}

func TestLabelsFor_SinClavesVacias(t *testing.T) {
	for _, role := range append(entity.Roles(), "desconocido") {
		labels := dashboard.LabelsFor(role)
		for _, key := range dashboard.StatKeys() {
			assert.NotEmpty(t, labels.Get(key), "%s/%s", role, key)
		}
		status := dashboard.StatusFor(role, dashboard.LiveStats{})
		for _, key := range dashboard.StatKeys() {
			assert.NotEmpty(t, status.Get(key), "%s/%s", role, key)
		}
	}
}

func TestStatusFor_ContabilidadFacturas(t *testing.T) {
	upToDate := dashboard.StatusFor(entity.RoleContabilidad, dashboard.LiveStats{PendingInvoices: 0})
	assert.Equal(t, "Cobranza al día", upToDate.Invoices)

	attention := dashboard.StatusFor(entity.RoleContabilidad, dashboard.LiveStats{PendingInvoices: 3})
	assert.Equal(t, "Requieren seguimiento", attention.Invoices)
}

func TestStatusFor_AdminFacturas(t *testing.T) {
	assert.Equal(t, "Al día", dashboard.StatusFor(entity.RoleAdmin, dashboard.LiveStats{}).Invoices)
	assert.Equal(t, "Requiere atención", dashboard.StatusFor(entity.RoleAdmin, dashboard.LiveStats{PendingInvoices: 1}).Invoices)
}

func TestStatusFor_InterpolaEmpleados(t *testing.T) {
	rrhh := dashboard.StatusFor(entity.RoleRRHH, dashboard.LiveStats{ActiveEmployees: 12})
	assert.Contains(t, rrhh.Employees, "12")

	sup := dashboard.StatusFor(entity.RoleSupervisor, dashboard.LiveStats{ActiveEmployees: 7})
	assert.Equal(t, "7 en tu equipo", sup.Employees)
}

func TestStatusFor_EstaticosNoDependenDeStats(t *testing.T) {
	a := dashboard.StatusFor(entity.RoleRRHH, dashboard.LiveStats{PendingInvoices: 0})
	b := dashboard.StatusFor(entity.RoleRRHH, dashboard.LiveStats{PendingInvoices: 9})
	assert.Equal(t, a.Invoices, b.Invoices)
	assert.Equal(t, a.Compliance, b.Compliance)
}

func TestAllows(t *testing.T) {
	assert.True(t, dashboard.Allows(entity.RoleContabilidad, dashboard.TargetAccounting))
	assert.False(t, dashboard.Allows(entity.RoleContabilidad, dashboard.TargetPersonnel))
	assert.True(t, dashboard.Allows(entity.RoleSupervisor, dashboard.TargetTimeEntry))
	assert.False(t, dashboard.Allows(entity.RoleSupervisor, dashboard.TargetCompliance))
	assert.True(t, dashboard.Allows(entity.RoleAdmin, dashboard.TargetNewInvoice))

	assert.False(t, dashboard.Allows("gerente", dashboard.TargetAccounting), "sin caída a admin")
}
