package application

import (
	"context"
	"fmt"

	"github.com/lalavale064/gestion-hotelera/internal/domain"
)

type ClienteService struct {
	clienteRepo domain.ClienteRepository
}

// NewClienteService crea una nueva instancia del servicio de clientes
func NewClienteService(clienteRepo domain.ClienteRepository) *ClienteService {
	return &ClienteService{clienteRepo: clienteRepo}
}

func validarCliente(c *domain.Cliente) error {
	if c.NombreCompleto == "" {
		return fmt.Errorf("%w: el nombre completo es requerido", domain.ErrValidacion)
	}
	if err := validarEmail(c.Email); err != nil {
		return err
	}
	return validarTelefono(c.Telefono)
}

// GetCliente obtiene un cliente por su id. Un cliente solo ve su propia ficha.
func (s *ClienteService) GetCliente(ctx context.Context, actor domain.Actor, id int) (*domain.Cliente, error) {
	if actor.Rol == domain.RolCliente && !actor.EsDuenoDe(&id) {
		return nil, fmt.Errorf("%w: la ficha pertenece a otro cliente", domain.ErrNoAutorizado)
	}
	return s.clienteRepo.GetClienteByID(ctx, id)
}

// ListClientes devuelve el listado paginado para el personal
func (s *ClienteService) ListClientes(ctx context.Context, pagina, porPagina int, busqueda string) (*domain.Paginacion, error) {
	if pagina < 1 {
		pagina = 1
	}
	if porPagina < 1 || porPagina > 100 {
		porPagina = 20
	}
	return s.clienteRepo.ListClientes(ctx, pagina, porPagina, busqueda)
}

// CrearCliente da de alta un cliente
func (s *ClienteService) CrearCliente(ctx context.Context, c *domain.Cliente) error {
	if err := validarCliente(c); err != nil {
		return err
	}
	return s.clienteRepo.CrearCliente(ctx, c)
}

// ActualizarCliente modifica la ficha de un cliente
func (s *ClienteService) ActualizarCliente(ctx context.Context, c *domain.Cliente) error {
	if err := validarCliente(c); err != nil {
		return err
	}
	return s.clienteRepo.ActualizarCliente(ctx, c)
}

// EliminarCliente borra el cliente con todo su historial
func (s *ClienteService) EliminarCliente(ctx context.Context, id int) error {
	return s.clienteRepo.EliminarCliente(ctx, id)
}
