package dashboard

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
)

// StatKey indicador del dashboard.
type StatKey string

const (
	StatIncome     StatKey = "income"
	StatInvoices   StatKey = "invoices"
	StatEmployees  StatKey = "employees"
	StatCompliance StatKey = "compliance"
)

// StatKeys orden fijo de las tarjetas.
func StatKeys() []StatKey {
	return []StatKey{StatIncome, StatInvoices, StatEmployees, StatCompliance}
}

// LabelSet textos de las cuatro tarjetas de indicadores. Un struct garantiza que no falte ninguna.
type LabelSet struct {
	Income     string `json:"income"`
	Invoices   string `json:"invoices"`
	Employees  string `json:"employees"`
	Compliance string `json:"compliance"`
}

// Get devuelve el texto de la clave indicada.
func (l LabelSet) Get(key StatKey) string {
	switch key {
	case StatIncome:
		return l.Income
	case StatInvoices:
		return l.Invoices
	case StatEmployees:
		return l.Employees
	case StatCompliance:
		return l.Compliance
	}
	return ""
}

// StatusSet tiene la misma forma que LabelSet, con los textos de estado ya resueltos.
type StatusSet = LabelSet

// LiveStats indicadores en vivo que entrega la capa de datos.
type LiveStats struct {
	TotalIncome     decimal.Decimal `json:"total_income"`
	PendingInvoices int             `json:"pending_invoices"`
	ActiveEmployees int             `json:"active_employees"`
	ComplianceScore int             `json:"compliance_score"` // 0..100
}

var labelTable = map[entity.Role]LabelSet{
	entity.RoleAdmin: {
		Income: "Ingresos Totales", Invoices: "Facturas Pendientes",
		Employees: "Empleados Activos", Compliance: "Cumplimiento Legal",
	},
	entity.RoleContabilidad: {
		Income: "Ingresos del Mes", Invoices: "Facturas por Cobrar",
		Employees: "Planilla Activa", Compliance: "Estado SUNAT",
	},
	entity.RoleRRHH: {
		Income: "Costo de Planilla", Invoices: "Boletas Pendientes",
		Employees: "Personal Activo", Compliance: "Estado SUNAFIL",
	},
	entity.RoleSupervisor: {
		Income: "Productividad", Invoices: "Tareas Pendientes",
		Employees: "Personal a Cargo", Compliance: "Asistencia del Día",
	},
}

// statusRule texto de estado de un rol, calculado a partir de los indicadores.
type statusRule func(LiveStats) StatusSet

var statusTable = map[entity.Role]statusRule{
	entity.RoleAdmin: func(s LiveStats) StatusSet {
		return StatusSet{
			Income:     "Resumen general del negocio",
			Invoices:   pick(s.PendingInvoices > 0, "Requiere atención", "Al día"),
			Employees:  "Personal registrado",
			Compliance: "Obligaciones al día",
		}
	},
	entity.RoleContabilidad: func(s LiveStats) StatusSet {
		return StatusSet{
			Income:     "Ingresos confirmados",
			Invoices:   pick(s.PendingInvoices > 0, "Requieren seguimiento", "Cobranza al día"),
			Employees:  "Incluidos en planilla",
			Compliance: "Declaraciones SUNAT al día",
		}
	},
	entity.RoleRRHH: func(s LiveStats) StatusSet {
		return StatusSet{
			Income:     "Planilla del mes",
			Invoices:   "Boletas por emitir",
			Employees:  fmt.Sprintf("%d colaboradores activos", s.ActiveEmployees),
			Compliance: "Inspección SUNAFIL sin observaciones",
		}
	},
	entity.RoleSupervisor: func(s LiveStats) StatusSet {
		return StatusSet{
			Income:     "Indicador del área",
			Invoices:   "Sin pendientes asignados",
			Employees:  fmt.Sprintf("%d en tu equipo", s.ActiveEmployees),
			Compliance: "Registro de asistencia vigente",
		}
	},
}

// LabelsFor devuelve las etiquetas de las tarjetas para el rol.
func LabelsFor(role entity.Role) LabelSet {
	return labelTable[resolve(role)]
}

// StatusFor resuelve los textos de estado del rol con los indicadores dados.
func StatusFor(role entity.Role, stats LiveStats) StatusSet {
	return statusTable[resolve(role)](stats)
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
