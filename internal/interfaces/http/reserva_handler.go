package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lalavale064/gestion-hotelera/internal/application"
	"github.com/lalavale064/gestion-hotelera/internal/domain"
)

type ReservaHandler struct {
	service *application.ReservaService
}

func NewReservaHandler(service *application.ReservaService) *ReservaHandler {
	return &ReservaHandler{service: service}
}

type crearReservaRequest struct {
	ClienteID     *int   `json:"clienteId"`
	HabitacionID  int    `json:"habitacionId" validate:"required,gt=0"`
	NombreHuesped string `json:"nombreHuesped" validate:"required"`
	EmailHuesped  string `json:"emailHuesped" validate:"omitempty,email"`
	FonoHuesped   string `json:"fonoHuesped"`
	FechaEntrada  string `json:"fechaEntrada" validate:"required"`
	FechaSalida   string `json:"fechaSalida" validate:"required"`
}

// Create registra una reserva nueva
func (h *ReservaHandler) Create(c *fiber.Ctx) error {
	var req crearReservaRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	entrada, err := parseFecha(req.FechaEntrada)
	if err != nil {
		return badRequest(c, "fechaEntrada inválida, se espera YYYY-MM-DD")
	}
	salida, err := parseFecha(req.FechaSalida)
	if err != nil {
		return badRequest(c, "fechaSalida inválida, se espera YYYY-MM-DD")
	}

	reserva := &domain.Reserva{
		ClienteID:     req.ClienteID,
		HabitacionID:  req.HabitacionID,
		NombreHuesped: req.NombreHuesped,
		EmailHuesped:  req.EmailHuesped,
		FonoHuesped:   req.FonoHuesped,
		FechaEntrada:  entrada,
		FechaSalida:   salida,
	}
	if err := h.service.CrearReserva(c.Context(), getActor(c), reserva); err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(reserva)
}

// Get devuelve una reserva con su total derivado y sus líneas
func (h *ReservaHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	reserva, err := h.service.GetReserva(c.Context(), getActor(c), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(reserva)
}

// List devuelve el listado paginado para el personal
func (h *ReservaHandler) List(c *fiber.Ctx) error {
	pagina, porPagina, busqueda := paginacionQuery(c)
	filtro := domain.FiltroReservas{
		Pagina:    pagina,
		PorPagina: porPagina,
		Busqueda:  busqueda,
		Estado:    domain.EstadoReserva(c.Query("estado")),
	}
	resultado, err := h.service.ListReservas(c.Context(), filtro)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resultado)
}

// MisReservas lista las reservas del cliente autenticado
func (h *ReservaHandler) MisReservas(c *fiber.Ctx) error {
	reservas, err := h.service.GetMisReservas(c.Context(), getActor(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(reservas)
}

type transicionRequest struct {
	Estado string `json:"estado" validate:"required"`
}

// Transicion aplica un cambio de estado del ciclo de vida
func (h *ReservaHandler) Transicion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	var req transicionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	reserva, err := h.service.Transicionar(c.Context(), getActor(c), id, domain.EstadoReserva(req.Estado))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(reserva)
}

// Delete borra una reserva con su historial
func (h *ReservaHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	if err := h.service.EliminarReserva(c.Context(), id); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// OperacionesDia lista entradas y salidas previstas para una fecha, por
// defecto hoy
func (h *ReservaHandler) OperacionesDia(c *fiber.Ctx) error {
	dia := time.Now().UTC()
	if s := c.Query("fecha"); s != "" {
		var err error
		if dia, err = parseFecha(s); err != nil {
			return badRequest(c, "fecha inválida, se espera YYYY-MM-DD")
		}
	}
	reservas, err := h.service.GetOperacionesDia(c.Context(), dia)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(reservas)
}

// EnCasa lista los huéspedes alojados
func (h *ReservaHandler) EnCasa(c *fiber.Ctx) error {
	reservas, err := h.service.GetHuespedesEnCasa(c.Context(), c.Query("busqueda"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(reservas)
}

// Facturables lista las reservas en checkout pendientes de factura
func (h *ReservaHandler) Facturables(c *fiber.Ctx) error {
	reservas, err := h.service.GetFacturables(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(reservas)
}
