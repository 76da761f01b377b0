package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lalavale064/gestion-hotelera/internal/application"
)

type LineaServicioHandler struct {
	service *application.LineaServicioService
}

func NewLineaServicioHandler(service *application.LineaServicioService) *LineaServicioHandler {
	return &LineaServicioHandler{service: service}
}

type agregarLineaRequest struct {
	ServicioID    int    `json:"servicioId" validate:"required,gt=0"`
	Cantidad      int    `json:"cantidad" validate:"required,gt=0"`
	FechaServicio string `json:"fechaServicio" validate:"required"`
}

// Create anota un consumo de servicio sobre una reserva
func (h *LineaServicioHandler) Create(c *fiber.Ctx) error {
	reservaID, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	var req agregarLineaRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := validate.Struct(req); err != nil {
		return validationError(c, err)
	}
	fecha, err := parseFecha(req.FechaServicio)
	if err != nil {
		return badRequest(c, "fechaServicio inválida, se espera YYYY-MM-DD")
	}

	linea, err := h.service.AgregarLinea(c.Context(), getActor(c), reservaID, req.ServicioID, req.Cantidad, fecha)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(linea)
}

type actualizarLineaRequest struct {
	Cantidad      *int    `json:"cantidad" validate:"omitempty,gt=0"`
	FechaServicio *string `json:"fechaServicio"`
}

// Update modifica cantidad y/o fecha de un consumo
func (h *LineaServicioHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	var req actualizarLineaRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	var fecha *time.Time
	if req.FechaServicio != nil {
		f, err := parseFecha(*req.FechaServicio)
		if err != nil {
			return badRequest(c, "fechaServicio inválida, se espera YYYY-MM-DD")
		}
		fecha = &f
	}

	linea, err := h.service.ActualizarLinea(c.Context(), getActor(c), id, req.Cantidad, fecha)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(linea)
}

// Delete quita un consumo de una reserva activa
func (h *LineaServicioHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	if err := h.service.EliminarLinea(c.Context(), getActor(c), id); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Get devuelve un consumo por su id
func (h *LineaServicioHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	linea, err := h.service.GetLinea(c.Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(linea)
}

// List devuelve el listado paginado de consumos
func (h *LineaServicioHandler) List(c *fiber.Ctx) error {
	pagina, porPagina, busqueda := paginacionQuery(c)
	resultado, err := h.service.ListLineas(c.Context(), pagina, porPagina, busqueda)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resultado)
}

// MisConsumos lista los consumos del cliente autenticado
func (h *LineaServicioHandler) MisConsumos(c *fiber.Ctx) error {
	lineas, err := h.service.GetMisConsumos(c.Context(), getActor(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(lineas)
}
