package domain

import (
	"context"
	"time"
)

type TipoHabitacion string

const (
	HabitacionSencilla TipoHabitacion = "sencilla"
	HabitacionDoble    TipoHabitacion = "doble"
	HabitacionSuite    TipoHabitacion = "suite"
)

// TipoHabitacionValido verifica que el tipo pertenezca al catálogo cerrado.
func TipoHabitacionValido(t TipoHabitacion) bool {
	switch t {
	case HabitacionSencilla, HabitacionDoble, HabitacionSuite:
		return true
	}
	return false
}

type EstadoHabitacion string

const (
	HabitacionDisponible    EstadoHabitacion = "disponible"
	HabitacionOcupada       EstadoHabitacion = "ocupada"
	HabitacionMantenimiento EstadoHabitacion = "mantenimiento"
)

// EstadoHabitacionValido verifica que el estado pertenezca al conjunto soportado.
func EstadoHabitacionValido(e EstadoHabitacion) bool {
	switch e {
	case HabitacionDisponible, HabitacionOcupada, HabitacionMantenimiento:
		return true
	}
	return false
}

// Habitacion representa una habitación del hotel. Estado es una caché
// desnormalizada de ocupación: las transiciones de reserva la mantienen en
// sincronía dentro de sus propias transacciones, y la administración puede
// forzarla (mantenimiento). La fuente de verdad de disponibilidad por
// fechas son las reservas no canceladas.
type Habitacion struct {
	ID        int              `json:"id"`
	Numero    int              `json:"numero"`
	Tipo      TipoHabitacion   `json:"tipo"`
	Capacidad int              `json:"capacidad"`
	Precio    float64          `json:"precio"`
	Estado    EstadoHabitacion `json:"estado"`
}

// HabitacionRepository define las operaciones de datos de habitaciones.
type HabitacionRepository interface {
	// GetHabitacionByID obtiene una habitación por su ID.
	GetHabitacionByID(ctx context.Context, id int) (*Habitacion, error)
	// ListHabitaciones devuelve un listado paginado con búsqueda y filtro de estado.
	ListHabitaciones(ctx context.Context, pagina, porPagina int, busqueda string, estado EstadoHabitacion) (*Paginacion, error)
	// GetHabitacionesDisponibles devuelve las habitaciones sin reserva no
	// cancelada que se cruce con el rango dado, excluyendo mantenimiento.
	GetHabitacionesDisponibles(ctx context.Context, entrada, salida time.Time) ([]Habitacion, error)
	// CrearHabitacion inserta una habitación. Falla con ErrConflicto si el
	// número ya existe.
	CrearHabitacion(ctx context.Context, h *Habitacion) error
	// ActualizarHabitacion actualiza todos los campos editables.
	ActualizarHabitacion(ctx context.Context, h *Habitacion) error
	// EliminarHabitacion borra la habitación. Falla con ErrConflicto si tiene
	// reservas asociadas.
	EliminarHabitacion(ctx context.Context, id int) error
}
