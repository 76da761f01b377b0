package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lalavale064/gestion-hotelera/internal/application"
	"github.com/lalavale064/gestion-hotelera/internal/domain"
)

type FacturaHandler struct {
	service *application.FacturaService
}

func NewFacturaHandler(service *application.FacturaService) *FacturaHandler {
	return &FacturaHandler{service: service}
}

type emitirFacturaRequest struct {
	ReservaID int    `json:"reservaId" validate:"required,gt=0"`
	Metodo    string `json:"metodo" validate:"required"`
}

// Emitir emite la factura de la reserva indicada y pasa la reserva a su
// estado terminal
func (h *FacturaHandler) Emitir(c *fiber.Ctx) error {
	var req emitirFacturaRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	factura, err := h.service.EmitirFactura(c.Context(), getActor(c), req.ReservaID, domain.MetodoPago(req.Metodo))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(factura)
}

// Get devuelve una factura por su id
func (h *FacturaHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	factura, err := h.service.GetFactura(c.Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(factura)
}

// List devuelve el listado paginado de facturas
func (h *FacturaHandler) List(c *fiber.Ctx) error {
	pagina, porPagina, busqueda := paginacionQuery(c)
	resultado, err := h.service.ListFacturas(c.Context(), pagina, porPagina, busqueda)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resultado)
}
