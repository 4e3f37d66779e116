package http

import (
	"github.com/gofiber/fiber/v2"

	appdashboard "github.com/jhoicas/gestion-pyme/internal/application/dashboard"
)

// DashboardHandler maneja los endpoints del panel principal.
type DashboardHandler struct {
	uc *appdashboard.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appdashboard.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetView devuelve el panel del rol del token.
// GET /api/dashboard
//
// Respuesta: DashboardView (role, shortcuts, cards[4], stats, date_label).
// Un rol desconocido recibe la vista de admin; la autorización de cada módulo
// sigue siendo estricta (ver RequireAccess).
func (h *DashboardHandler) GetView(c *fiber.Ctx) error {
	view, err := h.uc.GetView(c.UserContext(), GetRole(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

// GetStats indicadores en vivo sin formato.
// GET /api/dashboard/stats
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

// GetReport descarga el panel en PDF.
// GET /api/dashboard/report
func (h *DashboardHandler) GetReport(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.GetReport(c.UserContext(), GetRole(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Attachment(filename)
	return c.Send(pdf)
}
