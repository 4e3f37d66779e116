package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-pyme/internal/application/dto"
	"github.com/jhoicas/gestion-pyme/internal/application/usecase"
)

// ComplianceHandler obligaciones ante SUNAT y SUNAFIL.
type ComplianceHandler struct {
	uc *usecase.ComplianceUseCase
}

// NewComplianceHandler construye el handler.
func NewComplianceHandler(uc *usecase.ComplianceUseCase) *ComplianceHandler {
	return &ComplianceHandler{uc: uc}
}

// List GET /api/compliance?agency=SUNAT
func (h *ComplianceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("agency"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"items": out})
}

// UpdateStatus PATCH /api/compliance/:id
func (h *ComplianceHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
