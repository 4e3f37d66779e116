package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-pyme/internal/application/dto"
	"github.com/jhoicas/gestion-pyme/internal/domain/dashboard"
	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
)

// RequireAccess devuelve un middleware Fiber que verifica que el rol del token tenga en su
// dashboard al menos uno de los accesos indicados (pestaña o formulario). Debe usarse
// DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 403 INVALID_TOKEN → no hay rol en el contexto.
//   - 403 FORBIDDEN     → el rol no tiene ninguno de los accesos, o es desconocido.
func RequireAccess(targets ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusForbidden).JSON(dto.NewError("INVALID_TOKEN", "token sin rol"))
		}
		for _, target := range targets {
			if dashboard.Allows(entity.Role(role), target) {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.NewError(
			"FORBIDDEN",
			"el rol '"+role+"' no tiene acceso a "+strings.Join(targets, ", "),
		))
	}
}
