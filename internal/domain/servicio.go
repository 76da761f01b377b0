package domain

import "context"

type EstadoServicio string

const (
	ServicioActivo   EstadoServicio = "activo"
	ServicioInactivo EstadoServicio = "inactivo"
)

// Servicio representa un servicio del catálogo del hotel (spa, desayuno,
// traslados). El precio vigente se copia a cada línea de consumo al momento
// del alta.
type Servicio struct {
	ID          int            `json:"id"`
	Codigo      string         `json:"codigo"`
	Nombre      string         `json:"nombre"`
	Descripcion string         `json:"descripcion,omitempty"`
	Precio      float64        `json:"precio"`
	Estado      EstadoServicio `json:"estado"`
}

// ServicioRepository define las operaciones de datos del catálogo de servicios.
type ServicioRepository interface {
	// GetServicioByID obtiene un servicio por su ID.
	GetServicioByID(ctx context.Context, id int) (*Servicio, error)
	// ListServicios devuelve un listado paginado con búsqueda y filtro de estado.
	ListServicios(ctx context.Context, pagina, porPagina int, busqueda string, estado EstadoServicio) (*Paginacion, error)
	// CrearServicio inserta un servicio. Falla con ErrConflicto si el código
	// ya existe.
	CrearServicio(ctx context.Context, s *Servicio) error
	// ActualizarServicio actualiza un servicio existente.
	ActualizarServicio(ctx context.Context, s *Servicio) error
	// EliminarServicio borra el servicio. Falla con ErrConflicto si existen
	// consumos asociados.
	EliminarServicio(ctx context.Context, id int) error
}
