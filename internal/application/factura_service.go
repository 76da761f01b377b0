package application

import (
	"context"
	"fmt"

	"github.com/lalavale064/gestion-hotelera/internal/domain"
)

type FacturaService struct {
	facturaRepo domain.FacturaRepository
}

// NewFacturaService crea una nueva instancia del servicio de facturación
func NewFacturaService(facturaRepo domain.FacturaRepository) *FacturaService {
	return &FacturaService{facturaRepo: facturaRepo}
}

// EmitirFactura emite la factura de una reserva en checkout. El total lo
// captura el repositorio bajo bloqueo; aquí solo se valida el método de
// pago y se genera el código.
func (s *FacturaService) EmitirFactura(ctx context.Context, actor domain.Actor, reservaID int, metodo domain.MetodoPago) (*domain.Factura, error) {
	if !actor.PuedeOperarRecepcion() {
		return nil, fmt.Errorf("%w: se requiere rol de recepción", domain.ErrNoAutorizado)
	}
	if !domain.MetodoPagoValido(metodo) {
		return nil, fmt.Errorf("%w: método de pago desconocido '%s'", domain.ErrValidacion, metodo)
	}

	factura := &domain.Factura{
		Codigo:    generarCodigo("I"),
		ReservaID: reservaID,
		Metodo:    metodo,
	}
	if err := s.facturaRepo.EmitirFactura(ctx, factura); err != nil {
		return nil, err
	}
	return factura, nil
}

// GetFactura obtiene una factura por su id
func (s *FacturaService) GetFactura(ctx context.Context, id int) (*domain.Factura, error) {
	return s.facturaRepo.GetFacturaByID(ctx, id)
}

// ListFacturas devuelve el listado paginado de facturas
func (s *FacturaService) ListFacturas(ctx context.Context, pagina, porPagina int, busqueda string) (*domain.Paginacion, error) {
	if pagina < 1 {
		pagina = 1
	}
	if porPagina < 1 || porPagina > 100 {
		porPagina = 20
	}
	return s.facturaRepo.ListFacturas(ctx, pagina, porPagina, busqueda)
}
