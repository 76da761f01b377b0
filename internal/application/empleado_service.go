package application

import (
	"context"
	"fmt"
	"time"

	"github.com/lalavale064/gestion-hotelera/internal/domain"
)

type EmpleadoService struct {
	empleadoRepo domain.EmpleadoRepository
}

// NewEmpleadoService crea una nueva instancia del servicio de personal
func NewEmpleadoService(empleadoRepo domain.EmpleadoRepository) *EmpleadoService {
	return &EmpleadoService{empleadoRepo: empleadoRepo}
}

func validarEmpleado(e *domain.Empleado) error {
	if e.NombreCompleto == "" {
		return fmt.Errorf("%w: el nombre completo es requerido", domain.ErrValidacion)
	}
	if e.Cargo == "" {
		return fmt.Errorf("%w: el cargo es requerido", domain.ErrValidacion)
	}
	return nil
}

// GetEmpleado obtiene un empleado por su id
func (s *EmpleadoService) GetEmpleado(ctx context.Context, id int) (*domain.Empleado, error) {
	return s.empleadoRepo.GetEmpleadoByID(ctx, id)
}

// ListEmpleados devuelve el listado paginado del personal
func (s *EmpleadoService) ListEmpleados(ctx context.Context, pagina, porPagina int, busqueda string) (*domain.Paginacion, error) {
	if pagina < 1 {
		pagina = 1
	}
	if porPagina < 1 || porPagina > 100 {
		porPagina = 20
	}
	return s.empleadoRepo.ListEmpleados(ctx, pagina, porPagina, busqueda)
}

// CrearEmpleado da de alta un empleado
func (s *EmpleadoService) CrearEmpleado(ctx context.Context, e *domain.Empleado) error {
	if err := validarEmpleado(e); err != nil {
		return err
	}
	if e.FechaIngreso.IsZero() {
		e.FechaIngreso = time.Now()
	}
	return s.empleadoRepo.CrearEmpleado(ctx, e)
}

// ActualizarEmpleado modifica un empleado existente
func (s *EmpleadoService) ActualizarEmpleado(ctx context.Context, e *domain.Empleado) error {
	if err := validarEmpleado(e); err != nil {
		return err
	}
	return s.empleadoRepo.ActualizarEmpleado(ctx, e)
}

// EliminarEmpleado borra un empleado
func (s *EmpleadoService) EliminarEmpleado(ctx context.Context, id int) error {
	return s.empleadoRepo.EliminarEmpleado(ctx, id)
}
