package domain

import "context"

// Cliente representa un cliente registrado del hotel.
type Cliente struct {
	ID             int    `json:"id"`
	NombreCompleto string `json:"nombreCompleto"`
	Email          string `json:"email,omitempty"`
	Telefono       string `json:"telefono,omitempty"`
	Direccion      string `json:"direccion,omitempty"`
}

// ClienteRepository define las operaciones de datos de clientes.
type ClienteRepository interface {
	// GetClienteByID obtiene un cliente por su ID.
	GetClienteByID(ctx context.Context, id int) (*Cliente, error)
	// ListClientes devuelve un listado paginado con búsqueda.
	ListClientes(ctx context.Context, pagina, porPagina int, busqueda string) (*Paginacion, error)
	// CrearCliente inserta un cliente.
	CrearCliente(ctx context.Context, c *Cliente) error
	// ActualizarCliente actualiza un cliente existente.
	ActualizarCliente(ctx context.Context, c *Cliente) error
	// EliminarCliente borra el cliente junto con sus reservas, líneas y
	// facturas, en una sola transacción.
	EliminarCliente(ctx context.Context, id int) error
}
