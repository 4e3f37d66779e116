package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-pyme/internal/application/dto"
	"github.com/jhoicas/gestion-pyme/internal/domain"
	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
	"github.com/jhoicas/gestion-pyme/pkg/jwt"
)

// Locals keys para la identidad del token en Fiber.
const (
	LocalUserID   = "user_id"
	LocalRole     = "role"
	LocalIdentity = "identity"
)

// Authorize extrae el Bearer token del header Authorization y lo verifica.
// Devuelve domain.ErrMissingToken si no hay token utilizable y domain.ErrInvalidToken si
// la firma, el formato o la vigencia fallan, o si el token no trae rol.
func Authorize(secret, authorization string) (*jwt.Identity, error) {
	authorization = strings.TrimSpace(authorization)
	if authorization == "" {
		return nil, domain.ErrMissingToken
	}
	parts := strings.SplitN(authorization, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, domain.ErrMissingToken
	}
	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return nil, domain.ErrMissingToken
	}
	id, err := jwt.Parse(secret, tokenString)
	if err != nil {
		return nil, errors.Join(domain.ErrInvalidToken, err)
	}
	if strings.TrimSpace(id.Role) == "" {
		return nil, domain.ErrInvalidToken
	}
	return id, nil
}

// AuthMiddleware valida el Bearer Token JWT y deja UserID, Role e Identity en c.Locals.
// 401 MISSING_TOKEN sin token; 403 INVALID_TOKEN si no verifica.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := Authorize(jwtSecret, c.Get(fiber.HeaderAuthorization))
		if err != nil {
			if errors.Is(err, domain.ErrMissingToken) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError("MISSING_TOKEN", "Authorization: Bearer <token> requerido"))
			}
			return c.Status(fiber.StatusForbidden).JSON(dto.NewError("INVALID_TOKEN", "token inválido o expirado"))
		}
		c.Locals(LocalUserID, id.UserID)
		c.Locals(LocalRole, id.Role)
		c.Locals(LocalIdentity, *id)
		return c.Next()
	}
}

// RequireRole deja pasar solo a los roles indicados. Debe usarse DESPUÉS de AuthMiddleware.
// El rol del token se compara ya normalizado (mayúsculas y tildes no importan).
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[strings.ToLower(strings.TrimSpace(r))] = true
	}
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusForbidden).JSON(dto.NewError("INVALID_TOKEN", "token sin rol"))
		}
		if !allowed[role] {
			return c.Status(fiber.StatusForbidden).JSON(dto.NewError("FORBIDDEN", "el rol '"+role+"' no tiene acceso a este recurso"))
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetRole devuelve el rol del token normalizado (minúsculas, sin tildes). Vacío si no hay token.
// Un rol desconocido se devuelve tal cual para que la autorización lo rechace.
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	if s == "" {
		return ""
	}
	if r, ok := entity.ParseRole(s); ok {
		return r.String()
	}
	return strings.ToLower(strings.TrimSpace(s))
}

// GetIdentity devuelve la identidad completa del token.
func GetIdentity(c *fiber.Ctx) (jwt.Identity, bool) {
	id, ok := c.Locals(LocalIdentity).(jwt.Identity)
	return id, ok
}
