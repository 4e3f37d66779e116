// Package dashboard resuelve, a partir del rol, qué ve cada usuario en el panel principal:
// accesos directos, etiquetas de los indicadores y textos de estado.
//
// Todas las funciones son puras y totales. Un rol no reconocido recibe la vista de admin,
// tanto en accesos como en etiquetas y estados. Las decisiones de autorización usan Allows,
// que no aplica esa caída.
package dashboard

import "github.com/jhoicas/gestion-pyme/internal/domain/entity"

// ActionKind qué abre un acceso directo.
type ActionKind string

const (
	OpenTab   ActionKind = "open_tab"
	OpenModal ActionKind = "open_modal"
)

// Color categoría semántica del acceso directo.
type Color string

const (
	ColorPrimary Color = "primary"
	ColorSuccess Color = "success"
	ColorInfo    Color = "info"
	ColorWarning Color = "warning"
)

// Destinos (id de pestaña o de modal en el cliente).
const (
	TargetAccounting   = "accounting"
	TargetCompliance   = "compliance"
	TargetPersonnel    = "personnel"
	TargetTimeTracking = "timetracking"
	TargetNewEmployee  = "newEmployee"
	TargetNewInvoice   = "newInvoice"
	TargetTimeEntry    = "timeEntry"
)

// Shortcut acceso directo del dashboard.
type Shortcut struct {
	Icon        string     `json:"icon"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Action      ActionKind `json:"action"`
	Target      string     `json:"target"`
	Color       Color      `json:"color"`
}

// El orden de cada lista es el orden en pantalla.
var shortcutTable = map[entity.Role][]Shortcut{
	entity.RoleAdmin: {
		{Icon: "fa-file-invoice-dollar", Title: "Nueva Factura", Description: "Emitir comprobante de venta", Action: OpenModal, Target: TargetNewInvoice, Color: ColorPrimary},
		{Icon: "fa-user-plus", Title: "Nuevo Empleado", Description: "Registrar trabajador en planilla", Action: OpenModal, Target: TargetNewEmployee, Color: ColorSuccess},
		{Icon: "fa-clock", Title: "Marcar Tiempo", Description: "Registrar entrada o salida", Action: OpenModal, Target: TargetTimeEntry, Color: ColorPrimary},
		{Icon: "fa-balance-scale", Title: "Balance General", Description: "Estado financiero de la empresa", Action: OpenTab, Target: TargetAccounting, Color: ColorSuccess},
		{Icon: "fa-users", Title: "Gestionar Personal", Description: "Fichas y contratos del personal", Action: OpenTab, Target: TargetPersonnel, Color: ColorInfo},
		{Icon: "fa-calendar-check", Title: "Control Asistencia", Description: "Marcaciones y horas trabajadas", Action: OpenTab, Target: TargetTimeTracking, Color: ColorWarning},
		{Icon: "fa-shield-alt", Title: "Cumplimiento Legal", Description: "Obligaciones SUNAT y SUNAFIL", Action: OpenTab, Target: TargetCompliance, Color: ColorInfo},
	},
	entity.RoleContabilidad: {
		{Icon: "fa-balance-scale", Title: "Balance General", Description: "Estado financiero de la empresa", Action: OpenTab, Target: TargetAccounting, Color: ColorSuccess},
		{Icon: "fa-file-contract", Title: "Cumplimiento SUNAT", Description: "Declaraciones y libros electrónicos", Action: OpenTab, Target: TargetCompliance, Color: ColorInfo},
	},
	entity.RoleRRHH: {
		{Icon: "fa-user-plus", Title: "Nuevo Empleado", Description: "Registrar trabajador en planilla", Action: OpenModal, Target: TargetNewEmployee, Color: ColorPrimary},
		{Icon: "fa-users", Title: "Gestionar Personal", Description: "Fichas y contratos del personal", Action: OpenTab, Target: TargetPersonnel, Color: ColorInfo},
		{Icon: "fa-calendar-check", Title: "Control Asistencia", Description: "Marcaciones y horas trabajadas", Action: OpenTab, Target: TargetTimeTracking, Color: ColorWarning},
		{Icon: "fa-hard-hat", Title: "Cumplimiento SUNAFIL", Description: "Inspecciones y planilla electrónica", Action: OpenTab, Target: TargetCompliance, Color: ColorSuccess},
	},
	entity.RoleSupervisor: {
		{Icon: "fa-clock", Title: "Marcar Tiempo", Description: "Registrar entrada o salida", Action: OpenModal, Target: TargetTimeEntry, Color: ColorPrimary},
		{Icon: "fa-calendar-check", Title: "Ver Asistencia", Description: "Asistencia de tu equipo", Action: OpenTab, Target: TargetTimeTracking, Color: ColorWarning},
		{Icon: "fa-address-book", Title: "Lista Personal", Description: "Datos de contacto del equipo", Action: OpenTab, Target: TargetPersonnel, Color: ColorInfo},
	},
}

// ShortcutsFor devuelve los accesos directos del rol en orden de presentación.
// La lista es una copia: el llamador puede modificarla.
func ShortcutsFor(role entity.Role) []Shortcut {
	src := shortcutTable[resolve(role)]
	out := make([]Shortcut, len(src))
	copy(out, src)
	return out
}

// Allows informa si el rol tiene un acceso directo hacia target.
// Estricto: un rol desconocido no tiene permisos.
func Allows(role entity.Role, target string) bool {
	for _, s := range shortcutTable[role] {
		if s.Target == target {
			return true
		}
	}
	return false
}

// resolve aplica la caída a admin para roles fuera de la enumeración.
func resolve(role entity.Role) entity.Role {
	if r, ok := entity.ParseRole(string(role)); ok {
		return r
	}
	return entity.RoleAdmin
}
