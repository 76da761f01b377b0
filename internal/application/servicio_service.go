package application

import (
	"context"
	"fmt"

	"github.com/lalavale064/gestion-hotelera/internal/domain"
)

type ServicioService struct {
	servicioRepo domain.ServicioRepository
}

// NewServicioService crea una nueva instancia del servicio del catálogo
func NewServicioService(servicioRepo domain.ServicioRepository) *ServicioService {
	return &ServicioService{servicioRepo: servicioRepo}
}

func validarServicio(s *domain.Servicio) error {
	if s.Nombre == "" {
		return fmt.Errorf("%w: el nombre del servicio es requerido", domain.ErrValidacion)
	}
	if s.Precio < 0 {
		return fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrValidacion)
	}
	if s.Estado != "" && s.Estado != domain.ServicioActivo && s.Estado != domain.ServicioInactivo {
		return fmt.Errorf("%w: estado de servicio desconocido '%s'", domain.ErrValidacion, s.Estado)
	}
	return nil
}

// GetServicio obtiene un servicio por su id
func (s *ServicioService) GetServicio(ctx context.Context, id int) (*domain.Servicio, error) {
	return s.servicioRepo.GetServicioByID(ctx, id)
}

// ListServicios devuelve el listado paginado del catálogo
func (s *ServicioService) ListServicios(ctx context.Context, pagina, porPagina int, busqueda string, estado domain.EstadoServicio) (*domain.Paginacion, error) {
	if pagina < 1 {
		pagina = 1
	}
	if porPagina < 1 || porPagina > 100 {
		porPagina = 20
	}
	return s.servicioRepo.ListServicios(ctx, pagina, porPagina, busqueda, estado)
}

// CrearServicio da de alta un servicio en el catálogo
func (s *ServicioService) CrearServicio(ctx context.Context, servicio *domain.Servicio) error {
	if err := validarServicio(servicio); err != nil {
		return err
	}
	if servicio.Codigo == "" {
		servicio.Codigo = generarCodigo("S")
	}
	if servicio.Estado == "" {
		servicio.Estado = domain.ServicioActivo
	}
	return s.servicioRepo.CrearServicio(ctx, servicio)
}

// ActualizarServicio modifica un servicio existente. Bajar el precio no
// afecta consumos ya registrados: cada línea congeló su precio unitario.
func (s *ServicioService) ActualizarServicio(ctx context.Context, servicio *domain.Servicio) error {
	if err := validarServicio(servicio); err != nil {
		return err
	}
	if servicio.Estado == "" {
		return fmt.Errorf("%w: el estado es requerido", domain.ErrValidacion)
	}
	return s.servicioRepo.ActualizarServicio(ctx, servicio)
}

// EliminarServicio borra un servicio sin consumos registrados
func (s *ServicioService) EliminarServicio(ctx context.Context, id int) error {
	return s.servicioRepo.EliminarServicio(ctx, id)
}
