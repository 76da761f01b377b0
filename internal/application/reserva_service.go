package application

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/lalavale064/gestion-hotelera/internal/domain"
	"github.com/lalavale064/gestion-hotelera/internal/email"
)

type ReservaService struct {
	reservaRepo    domain.ReservaRepository
	habitacionRepo domain.HabitacionRepository
	clienteRepo    domain.ClienteRepository
	emailClient    *email.Client
}

// NewReservaService crea una nueva instancia del servicio de reservas
func NewReservaService(
	reservaRepo domain.ReservaRepository,
	habitacionRepo domain.HabitacionRepository,
	clienteRepo domain.ClienteRepository,
	emailClient *email.Client,
) *ReservaService {
	return &ReservaService{
		reservaRepo:    reservaRepo,
		habitacionRepo: habitacionRepo,
		clienteRepo:    clienteRepo,
		emailClient:    emailClient,
	}
}

// CrearReserva valida los datos, genera el código y delega el alta con
// chequeo de solapamiento al repositorio. Un cliente solo puede reservar a
// su propio nombre.
func (s *ReservaService) CrearReserva(ctx context.Context, actor domain.Actor, reserva *domain.Reserva) error {
	if reserva.NombreHuesped == "" {
		return fmt.Errorf("%w: el nombre del huésped es requerido", domain.ErrValidacion)
	}
	if !reserva.FechaSalida.After(reserva.FechaEntrada) {
		return fmt.Errorf("%w: la fecha de salida debe ser posterior a la de entrada", domain.ErrValidacion)
	}
	if err := validarEmail(reserva.EmailHuesped); err != nil {
		return err
	}
	if err := validarTelefono(reserva.FonoHuesped); err != nil {
		return err
	}

	if actor.Rol == domain.RolCliente {
		// El cliente siempre reserva para sí mismo.
		reserva.ClienteID = actor.ClienteID
	}
	if reserva.ClienteID != nil {
		if _, err := s.clienteRepo.GetClienteByID(ctx, *reserva.ClienteID); err != nil {
			return err
		}
	}
	if _, err := s.habitacionRepo.GetHabitacionByID(ctx, reserva.HabitacionID); err != nil {
		return err
	}

	reserva.Codigo = generarCodigo("R")
	return s.reservaRepo.CrearReserva(ctx, reserva)
}

// GetReserva obtiene una reserva. Un cliente solo ve las propias.
func (s *ReservaService) GetReserva(ctx context.Context, actor domain.Actor, id int) (*domain.Reserva, error) {
	reserva, err := s.reservaRepo.GetReservaByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Rol == domain.RolCliente && !actor.EsDuenoDe(reserva.ClienteID) {
		return nil, fmt.Errorf("%w: la reserva pertenece a otro cliente", domain.ErrNoAutorizado)
	}
	return reserva, nil
}

// ListReservas devuelve el listado paginado para el personal
func (s *ReservaService) ListReservas(ctx context.Context, filtro domain.FiltroReservas) (*domain.Paginacion, error) {
	if filtro.Estado != "" && !filtro.Estado.Valido() {
		return nil, fmt.Errorf("%w: estado de reserva desconocido '%s'", domain.ErrValidacion, filtro.Estado)
	}
	if filtro.Pagina < 1 {
		filtro.Pagina = 1
	}
	if filtro.PorPagina < 1 || filtro.PorPagina > 100 {
		filtro.PorPagina = 20
	}
	return s.reservaRepo.ListReservas(ctx, filtro)
}

// GetMisReservas lista las reservas del cliente autenticado
func (s *ReservaService) GetMisReservas(ctx context.Context, actor domain.Actor) ([]domain.Reserva, error) {
	if actor.Rol != domain.RolCliente || actor.ClienteID == nil {
		return nil, fmt.Errorf("%w: se requiere una cuenta de cliente", domain.ErrNoAutorizado)
	}
	return s.reservaRepo.GetReservasCliente(ctx, *actor.ClienteID)
}

// Transicionar aplica un cambio de estado con la política de roles: el
// personal de mostrador maneja todo el ciclo; un cliente solo puede cancelar
// su propia reserva y únicamente mientras siga en reservada.
func (s *ReservaService) Transicionar(ctx context.Context, actor domain.Actor, id int, hacia domain.EstadoReserva) (*domain.Reserva, error) {
	if !hacia.Valido() {
		return nil, fmt.Errorf("%w: estado de reserva desconocido '%s'", domain.ErrValidacion, hacia)
	}
	// facturada solo se alcanza emitiendo la factura; volver a reservada no
	// existe.
	if hacia == domain.ReservaFacturada || hacia == domain.ReservaReservada {
		return nil, fmt.Errorf("%w: a %s", domain.ErrTransicionInvalida, hacia)
	}

	var desde *domain.EstadoReserva
	if actor.Rol == domain.RolCliente {
		if hacia != domain.ReservaCancelada {
			return nil, fmt.Errorf("%w: un cliente solo puede cancelar", domain.ErrNoAutorizado)
		}
		reserva, err := s.reservaRepo.GetReservaByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if !actor.EsDuenoDe(reserva.ClienteID) {
			return nil, fmt.Errorf("%w: la reserva pertenece a otro cliente", domain.ErrNoAutorizado)
		}
		if reserva.Estado != domain.ReservaReservada {
			return nil, fmt.Errorf("%w: solo se cancela una reserva sin confirmar; contacte a recepción", domain.ErrTransicionInvalida)
		}
		// La condición se vuelve a exigir bajo el bloqueo de fila: una
		// confirmación concurrente invalida la cancelación.
		exigido := domain.ReservaReservada
		desde = &exigido
	} else if !actor.PuedeOperarRecepcion() {
		return nil, fmt.Errorf("%w: se requiere rol de recepción", domain.ErrNoAutorizado)
	}

	reserva, err := s.reservaRepo.Transicionar(ctx, id, hacia, desde)
	if err != nil {
		return nil, err
	}

	if hacia == domain.ReservaConfirmada {
		s.enviarConfirmacion(reserva)
	}
	return reserva, nil
}

// enviarConfirmacion envía el correo de confirmación sin bloquear la
// operación: un fallo de SMTP no revierte la transición.
func (s *ReservaService) enviarConfirmacion(reserva *domain.Reserva) {
	if s.emailClient == nil || reserva.EmailHuesped == "" {
		return
	}
	info := email.ConfirmacionInfo{
		Codigo:           reserva.Codigo,
		NombreHuesped:    reserva.NombreHuesped,
		EmailHuesped:     reserva.EmailHuesped,
		NumeroHabitacion: reserva.NumeroHabitacion,
		TipoHabitacion:   reserva.TipoHabitacion,
		FechaEntrada:     reserva.FechaEntrada,
		FechaSalida:      reserva.FechaSalida,
		Noches:           domain.Noches(reserva.FechaEntrada, reserva.FechaSalida),
		Total:            reserva.Total,
	}
	if err := s.emailClient.SendConfirmacionReserva(info); err != nil {
		log.Printf("no se pudo enviar la confirmación de %s: %v", reserva.Codigo, err)
	}
}

// EliminarReserva borra una reserva con todo su historial. Operación
// administrativa.
func (s *ReservaService) EliminarReserva(ctx context.Context, id int) error {
	return s.reservaRepo.EliminarReserva(ctx, id)
}

// GetOperacionesDia lista las entradas y salidas previstas para una fecha
func (s *ReservaService) GetOperacionesDia(ctx context.Context, dia time.Time) ([]domain.Reserva, error) {
	return s.reservaRepo.GetOperacionesDia(ctx, dia)
}

// GetHuespedesEnCasa lista las reservas con huéspedes alojados
func (s *ReservaService) GetHuespedesEnCasa(ctx context.Context, busqueda string) ([]domain.Reserva, error) {
	return s.reservaRepo.GetHuespedesEnCasa(ctx, busqueda)
}

// GetFacturables lista las reservas en checkout pendientes de factura
func (s *ReservaService) GetFacturables(ctx context.Context) ([]domain.Reserva, error) {
	return s.reservaRepo.GetFacturables(ctx)
}
