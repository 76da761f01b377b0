package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lalavale064/gestion-hotelera/internal/application"
)

type ReporteHandler struct {
	service *application.ReporteService
}

func NewReporteHandler(service *application.ReporteService) *ReporteHandler {
	return &ReporteHandler{service: service}
}

// Dashboard devuelve los indicadores del panel de administración
func (h *ReporteHandler) Dashboard(c *fiber.Ctx) error {
	resumen, err := h.service.GetResumenDashboard(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resumen)
}
