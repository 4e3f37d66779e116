package entity

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Role categoría cerrada de usuario; determina el dashboard y los permisos.
type Role string

// Roles válidos para User.
const (
	RoleAdmin        Role = "admin"
	RoleContabilidad Role = "contabilidad"
	RoleRRHH         Role = "rrhh"
	RoleSupervisor   Role = "supervisor"
)

// Roles devuelve la enumeración completa en orden de presentación.
func Roles() []Role {
	return []Role{RoleAdmin, RoleContabilidad, RoleRRHH, RoleSupervisor}
}

// ParseRole reconoce un rol ignorando mayúsculas, espacios y tildes.
func ParseRole(s string) (Role, bool) {
	r := Role(foldRole(s))
	switch r {
	case RoleAdmin, RoleContabilidad, RoleRRHH, RoleSupervisor:
		return r, true
	}
	return "", false
}

// NormalizeRole es ParseRole con caída a RoleAdmin: un rol desconocido ve el dashboard de admin.
// Solo para presentación; las decisiones de acceso usan ParseRole.
func NormalizeRole(s string) Role {
	if r, ok := ParseRole(s); ok {
		return r
	}
	return RoleAdmin
}

// String implementa fmt.Stringer.
func (r Role) String() string { return string(r) }

func foldRole(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
