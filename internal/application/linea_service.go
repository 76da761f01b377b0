package application

import (
	"context"
	"fmt"
	"time"

	"github.com/lalavale064/gestion-hotelera/internal/domain"
)

type LineaServicioService struct {
	lineaRepo domain.LineaServicioRepository
}

// NewLineaServicioService crea una nueva instancia del servicio de líneas de servicio
func NewLineaServicioService(lineaRepo domain.LineaServicioRepository) *LineaServicioService {
	return &LineaServicioService{lineaRepo: lineaRepo}
}

// AgregarLinea anota un consumo de servicio sobre una reserva activa. Solo
// el personal registra consumos.
func (s *LineaServicioService) AgregarLinea(ctx context.Context, actor domain.Actor, reservaID, servicioID, cantidad int, fecha time.Time) (*domain.LineaServicio, error) {
	if !actor.EsPersonal() {
		return nil, fmt.Errorf("%w: solo el personal registra consumos", domain.ErrNoAutorizado)
	}
	if cantidad <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor a cero", domain.ErrValidacion)
	}
	if fecha.IsZero() {
		return nil, fmt.Errorf("%w: la fecha del servicio es requerida", domain.ErrValidacion)
	}
	return s.lineaRepo.AgregarLinea(ctx, reservaID, servicioID, cantidad, fecha)
}

// ActualizarLinea cambia cantidad y/o fecha de un consumo existente
func (s *LineaServicioService) ActualizarLinea(ctx context.Context, actor domain.Actor, lineaID int, cantidad *int, fecha *time.Time) (*domain.LineaServicio, error) {
	if !actor.EsPersonal() {
		return nil, fmt.Errorf("%w: solo el personal modifica consumos", domain.ErrNoAutorizado)
	}
	if cantidad == nil && fecha == nil {
		return nil, fmt.Errorf("%w: nada que actualizar", domain.ErrValidacion)
	}
	if cantidad != nil && *cantidad <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor a cero", domain.ErrValidacion)
	}
	return s.lineaRepo.ActualizarLinea(ctx, lineaID, cantidad, fecha)
}

// EliminarLinea quita un consumo de una reserva activa
func (s *LineaServicioService) EliminarLinea(ctx context.Context, actor domain.Actor, lineaID int) error {
	if !actor.EsPersonal() {
		return fmt.Errorf("%w: solo el personal elimina consumos", domain.ErrNoAutorizado)
	}
	return s.lineaRepo.EliminarLinea(ctx, lineaID)
}

// GetLinea obtiene un consumo por su id
func (s *LineaServicioService) GetLinea(ctx context.Context, lineaID int) (*domain.LineaServicio, error) {
	return s.lineaRepo.GetLineaByID(ctx, lineaID)
}

// ListLineas devuelve el listado paginado de consumos para el personal
func (s *LineaServicioService) ListLineas(ctx context.Context, pagina, porPagina int, busqueda string) (*domain.Paginacion, error) {
	if pagina < 1 {
		pagina = 1
	}
	if porPagina < 1 || porPagina > 100 {
		porPagina = 20
	}
	return s.lineaRepo.ListLineas(ctx, pagina, porPagina, busqueda)
}

// GetMisConsumos lista los consumos del cliente autenticado
func (s *LineaServicioService) GetMisConsumos(ctx context.Context, actor domain.Actor) ([]domain.LineaServicio, error) {
	if actor.Rol != domain.RolCliente || actor.ClienteID == nil {
		return nil, fmt.Errorf("%w: se requiere una cuenta de cliente", domain.ErrNoAutorizado)
	}
	return s.lineaRepo.GetLineasCliente(ctx, *actor.ClienteID)
}
