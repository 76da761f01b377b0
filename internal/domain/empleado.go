package domain

import (
	"context"
	"time"
)

// Empleado representa un miembro del personal del hotel.
type Empleado struct {
	ID             int       `json:"id"`
	NombreCompleto string    `json:"nombreCompleto"`
	Cargo          string    `json:"cargo"`
	Area           string    `json:"area,omitempty"`
	FechaIngreso   time.Time `json:"fechaIngreso"`
	Activo         bool      `json:"activo"`
}

// EmpleadoRepository define las operaciones de datos del personal.
type EmpleadoRepository interface {
	// GetEmpleadoByID obtiene un empleado por su ID.
	GetEmpleadoByID(ctx context.Context, id int) (*Empleado, error)
	// ListEmpleados devuelve un listado paginado con búsqueda.
	ListEmpleados(ctx context.Context, pagina, porPagina int, busqueda string) (*Paginacion, error)
	// CrearEmpleado inserta un empleado.
	CrearEmpleado(ctx context.Context, e *Empleado) error
	// ActualizarEmpleado actualiza un empleado existente.
	ActualizarEmpleado(ctx context.Context, e *Empleado) error
	// EliminarEmpleado borra el empleado.
	EliminarEmpleado(ctx context.Context, id int) error
}
