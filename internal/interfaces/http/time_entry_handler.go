package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-pyme/internal/application/dto"
	"github.com/jhoicas/gestion-pyme/internal/application/usecase"
)

// TimeEntryHandler control de asistencia.
type TimeEntryHandler struct {
	uc *usecase.TimeEntryUseCase
}

// NewTimeEntryHandler construye el handler.
func NewTimeEntryHandler(uc *usecase.TimeEntryUseCase) *TimeEntryHandler {
	return &TimeEntryHandler{uc: uc}
}

// Record POST /api/time-entries. 201 en la entrada, 200 en la salida.
func (h *TimeEntryHandler) Record(c *fiber.Ctx) error {
	var in dto.TimeEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Record(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	if out.Kind == usecase.KindCheckIn {
		return c.Status(fiber.StatusCreated).JSON(out)
	}
	return c.JSON(out)
}

// List GET /api/time-entries?date=YYYY-MM-DD
func (h *TimeEntryHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	out, err := h.uc.ListByDate(c.UserContext(), c.Query("date"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
