package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lalavale064/gestion-hotelera/internal/application"
	"github.com/lalavale064/gestion-hotelera/internal/domain"
)

type EmpleadoHandler struct {
	service *application.EmpleadoService
}

func NewEmpleadoHandler(service *application.EmpleadoService) *EmpleadoHandler {
	return &EmpleadoHandler{service: service}
}

type empleadoRequest struct {
	NombreCompleto string `json:"nombreCompleto" validate:"required"`
	Cargo          string `json:"cargo" validate:"required"`
	Area           string `json:"area"`
	FechaIngreso   string `json:"fechaIngreso"`
	Activo         *bool  `json:"activo"`
}

func (r empleadoRequest) aDominio(id int) (*domain.Empleado, error) {
	empleado := &domain.Empleado{
		ID:             id,
		NombreCompleto: r.NombreCompleto,
		Cargo:          r.Cargo,
		Area:           r.Area,
		Activo:         true,
	}
	if r.FechaIngreso != "" {
		fecha, err := parseFecha(r.FechaIngreso)
		if err != nil {
			return nil, err
		}
		empleado.FechaIngreso = fecha
	}
	if r.Activo != nil {
		empleado.Activo = *r.Activo
	}
	return empleado, nil
}

// Get devuelve un empleado por su id
func (h *EmpleadoHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	empleado, err := h.service.GetEmpleado(c.Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(empleado)
}

// List devuelve el listado paginado del personal
func (h *EmpleadoHandler) List(c *fiber.Ctx) error {
	pagina, porPagina, busqueda := paginacionQuery(c)
	resultado, err := h.service.ListEmpleados(c.Context(), pagina, porPagina, busqueda)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resultado)
}

// Create da de alta un empleado
func (h *EmpleadoHandler) Create(c *fiber.Ctx) error {
	var req empleadoRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := validate.Struct(req); err != nil {
		return validationError(c, err)
	}
	empleado, err := req.aDominio(0)
	if err != nil {
		return badRequest(c, "fechaIngreso inválida, se espera YYYY-MM-DD")
	}
	if empleado.FechaIngreso.IsZero() {
		empleado.FechaIngreso = time.Now()
	}

	if err := h.service.CrearEmpleado(c.Context(), empleado); err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(empleado)
}

// Update modifica un empleado existente
func (h *EmpleadoHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	var req empleadoRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := validate.Struct(req); err != nil {
		return validationError(c, err)
	}
	empleado, err := req.aDominio(id)
	if err != nil {
		return badRequest(c, "fechaIngreso inválida, se espera YYYY-MM-DD")
	}

	if err := h.service.ActualizarEmpleado(c.Context(), empleado); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(empleado)
}

// Delete borra un empleado
func (h *EmpleadoHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	if err := h.service.EliminarEmpleado(c.Context(), id); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
