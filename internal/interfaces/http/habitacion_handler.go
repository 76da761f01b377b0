package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lalavale064/gestion-hotelera/internal/application"
	"github.com/lalavale064/gestion-hotelera/internal/domain"
)

type HabitacionHandler struct {
	service *application.HabitacionService
}

func NewHabitacionHandler(service *application.HabitacionService) *HabitacionHandler {
	return &HabitacionHandler{service: service}
}

type habitacionRequest struct {
	Numero    int     `json:"numero" validate:"required,gt=0"`
	Tipo      string  `json:"tipo" validate:"required"`
	Capacidad int     `json:"capacidad" validate:"required,gt=0"`
	Precio    float64 `json:"precio" validate:"gte=0"`
	Estado    string  `json:"estado"`
}

// Get devuelve una habitación por su id
func (h *HabitacionHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	habitacion, err := h.service.GetHabitacion(c.Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(habitacion)
}

// List devuelve el listado paginado de habitaciones
func (h *HabitacionHandler) List(c *fiber.Ctx) error {
	pagina, porPagina, busqueda := paginacionQuery(c)
	resultado, err := h.service.ListHabitaciones(c.Context(), pagina, porPagina, busqueda, domain.EstadoHabitacion(c.Query("estado")))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resultado)
}

// Disponibles lista las habitaciones libres para un rango de fechas
func (h *HabitacionHandler) Disponibles(c *fiber.Ctx) error {
	entrada, err := parseFecha(c.Query("fechaEntrada"))
	if err != nil {
		return badRequest(c, "fechaEntrada inválida, se espera YYYY-MM-DD")
	}
	salida, err := parseFecha(c.Query("fechaSalida"))
	if err != nil {
		return badRequest(c, "fechaSalida inválida, se espera YYYY-MM-DD")
	}

	habitaciones, err := h.service.GetDisponibles(c.Context(), entrada, salida)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(habitaciones)
}

// Create da de alta una habitación
func (h *HabitacionHandler) Create(c *fiber.Ctx) error {
	var req habitacionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	habitacion := &domain.Habitacion{
		Numero:    req.Numero,
		Tipo:      domain.TipoHabitacion(req.Tipo),
		Capacidad: req.Capacidad,
		Precio:    req.Precio,
		Estado:    domain.EstadoHabitacion(req.Estado),
	}
	if err := h.service.CrearHabitacion(c.Context(), habitacion); err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(habitacion)
}

// Update modifica una habitación existente
func (h *HabitacionHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	var req habitacionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	habitacion := &domain.Habitacion{
		ID:        id,
		Numero:    req.Numero,
		Tipo:      domain.TipoHabitacion(req.Tipo),
		Capacidad: req.Capacidad,
		Precio:    req.Precio,
		Estado:    domain.EstadoHabitacion(req.Estado),
	}
	if err := h.service.ActualizarHabitacion(c.Context(), habitacion); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(habitacion)
}

// Delete borra una habitación sin reservas
func (h *HabitacionHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	if err := h.service.EliminarHabitacion(c.Context(), id); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
