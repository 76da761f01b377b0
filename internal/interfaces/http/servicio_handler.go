package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lalavale064/gestion-hotelera/internal/application"
	"github.com/lalavale064/gestion-hotelera/internal/domain"
)

type ServicioHandler struct {
	service *application.ServicioService
}

func NewServicioHandler(service *application.ServicioService) *ServicioHandler {
	return &ServicioHandler{service: service}
}

type servicioRequest struct {
	Codigo      string  `json:"codigo"`
	Nombre      string  `json:"nombre" validate:"required"`
	Descripcion string  `json:"descripcion"`
	Precio      float64 `json:"precio" validate:"gte=0"`
	Estado      string  `json:"estado"`
}

// Get devuelve un servicio del catálogo
func (h *ServicioHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	servicio, err := h.service.GetServicio(c.Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(servicio)
}

// List devuelve el catálogo paginado
func (h *ServicioHandler) List(c *fiber.Ctx) error {
	pagina, porPagina, busqueda := paginacionQuery(c)
	resultado, err := h.service.ListServicios(c.Context(), pagina, porPagina, busqueda, domain.EstadoServicio(c.Query("estado")))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resultado)
}

// Create da de alta un servicio
func (h *ServicioHandler) Create(c *fiber.Ctx) error {
	var req servicioRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	servicio := &domain.Servicio{
		Codigo:      req.Codigo,
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Precio:      req.Precio,
		Estado:      domain.EstadoServicio(req.Estado),
	}
	if err := h.service.CrearServicio(c.Context(), servicio); err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(servicio)
}

// Update modifica un servicio existente
func (h *ServicioHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	var req servicioRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	servicio := &domain.Servicio{
		ID:          id,
		Codigo:      req.Codigo,
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Precio:      req.Precio,
		Estado:      domain.EstadoServicio(req.Estado),
	}
	if err := h.service.ActualizarServicio(c.Context(), servicio); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(servicio)
}

// Delete borra un servicio sin consumos
func (h *ServicioHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	if err := h.service.EliminarServicio(c.Context(), id); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
