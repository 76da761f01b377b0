package application

import (
	"context"
	"fmt"
	"time"

	"github.com/lalavale064/gestion-hotelera/internal/domain"
)

type HabitacionService struct {
	habitacionRepo domain.HabitacionRepository
}

// NewHabitacionService crea una nueva instancia del servicio de habitaciones
func NewHabitacionService(habitacionRepo domain.HabitacionRepository) *HabitacionService {
	return &HabitacionService{habitacionRepo: habitacionRepo}
}

func validarHabitacion(h *domain.Habitacion) error {
	if h.Numero <= 0 {
		return fmt.Errorf("%w: el número de habitación debe ser positivo", domain.ErrValidacion)
	}
	if !domain.TipoHabitacionValido(h.Tipo) {
		return fmt.Errorf("%w: tipo de habitación desconocido '%s'", domain.ErrValidacion, h.Tipo)
	}
	if h.Capacidad <= 0 {
		return fmt.Errorf("%w: la capacidad debe ser mayor a cero", domain.ErrValidacion)
	}
	if h.Precio < 0 {
		return fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrValidacion)
	}
	if h.Estado != "" && !domain.EstadoHabitacionValido(h.Estado) {
		return fmt.Errorf("%w: estado de habitación desconocido '%s'", domain.ErrValidacion, h.Estado)
	}
	return nil
}

// GetHabitacion obtiene una habitación por su id
func (s *HabitacionService) GetHabitacion(ctx context.Context, id int) (*domain.Habitacion, error) {
	return s.habitacionRepo.GetHabitacionByID(ctx, id)
}

// ListHabitaciones devuelve el listado paginado con búsqueda y filtro de estado
func (s *HabitacionService) ListHabitaciones(ctx context.Context, pagina, porPagina int, busqueda string, estado domain.EstadoHabitacion) (*domain.Paginacion, error) {
	if estado != "" && !domain.EstadoHabitacionValido(estado) {
		return nil, fmt.Errorf("%w: estado de habitación desconocido '%s'", domain.ErrValidacion, estado)
	}
	if pagina < 1 {
		pagina = 1
	}
	if porPagina < 1 || porPagina > 100 {
		porPagina = 20
	}
	return s.habitacionRepo.ListHabitaciones(ctx, pagina, porPagina, busqueda, estado)
}

// GetDisponibles lista las habitaciones libres para un rango de fechas
func (s *HabitacionService) GetDisponibles(ctx context.Context, entrada, salida time.Time) ([]domain.Habitacion, error) {
	if !salida.After(entrada) {
		return nil, fmt.Errorf("%w: la fecha de salida debe ser posterior a la de entrada", domain.ErrValidacion)
	}
	return s.habitacionRepo.GetHabitacionesDisponibles(ctx, entrada, salida)
}

// CrearHabitacion da de alta una habitación
func (s *HabitacionService) CrearHabitacion(ctx context.Context, h *domain.Habitacion) error {
	if err := validarHabitacion(h); err != nil {
		return err
	}
	if h.Estado == "" {
		h.Estado = domain.HabitacionDisponible
	}
	return s.habitacionRepo.CrearHabitacion(ctx, h)
}

// ActualizarHabitacion modifica una habitación existente. Permite forzar el
// estado, por ejemplo para pasarla a mantenimiento.
func (s *HabitacionService) ActualizarHabitacion(ctx context.Context, h *domain.Habitacion) error {
	if err := validarHabitacion(h); err != nil {
		return err
	}
	if h.Estado == "" {
		return fmt.Errorf("%w: el estado es requerido", domain.ErrValidacion)
	}
	return s.habitacionRepo.ActualizarHabitacion(ctx, h)
}

// EliminarHabitacion borra una habitación sin reservas asociadas
func (s *HabitacionService) EliminarHabitacion(ctx context.Context, id int) error {
	return s.habitacionRepo.EliminarHabitacion(ctx, id)
}
