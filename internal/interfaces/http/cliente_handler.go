package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lalavale064/gestion-hotelera/internal/application"
	"github.com/lalavale064/gestion-hotelera/internal/domain"
)

type ClienteHandler struct {
	service *application.ClienteService
}

func NewClienteHandler(service *application.ClienteService) *ClienteHandler {
	return &ClienteHandler{service: service}
}

type clienteRequest struct {
	NombreCompleto string `json:"nombreCompleto" validate:"required"`
	Email          string `json:"email" validate:"omitempty,email"`
	Telefono       string `json:"telefono"`
	Direccion      string `json:"direccion"`
}

// Get devuelve la ficha de un cliente
func (h *ClienteHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	cliente, err := h.service.GetCliente(c.Context(), getActor(c), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(cliente)
}

// List devuelve el listado paginado de clientes
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	pagina, porPagina, busqueda := paginacionQuery(c)
	resultado, err := h.service.ListClientes(c.Context(), pagina, porPagina, busqueda)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resultado)
}

// Create da de alta un cliente
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var req clienteRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	cliente := &domain.Cliente{
		NombreCompleto: req.NombreCompleto,
		Email:          req.Email,
		Telefono:       req.Telefono,
		Direccion:      req.Direccion,
	}
	if err := h.service.CrearCliente(c.Context(), cliente); err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cliente)
}

// Update modifica la ficha de un cliente
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	var req clienteRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	cliente := &domain.Cliente{
		ID:             id,
		NombreCompleto: req.NombreCompleto,
		Email:          req.Email,
		Telefono:       req.Telefono,
		Direccion:      req.Direccion,
	}
	if err := h.service.ActualizarCliente(c.Context(), cliente); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(cliente)
}

// Delete borra el cliente con todo su historial
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	if err := h.service.EliminarCliente(c.Context(), id); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
