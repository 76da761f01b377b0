package domain

import (
	"context"
	"time"
)

type MetodoPago string

const (
	PagoEfectivo      MetodoPago = "efectivo"
	PagoTarjeta       MetodoPago = "tarjeta"
	PagoTransferencia MetodoPago = "transferencia"
)

// MetodoPagoValido verifica que el método pertenezca al conjunto soportado.
func MetodoPagoValido(m MetodoPago) bool {
	switch m {
	case PagoEfectivo, PagoTarjeta, PagoTransferencia:
		return true
	}
	return false
}

// Factura es el comprobante terminal de una reserva. Existe a lo sumo una
// por reserva: su emisión es la única vía hacia el estado facturada y está
// protegida contra duplicados.
type Factura struct {
	ID            int        `json:"id"`
	Codigo        string     `json:"codigo"`
	ReservaID     int        `json:"reservaId"`
	CodigoReserva string     `json:"codigoReserva,omitempty"`
	Total         float64    `json:"total"`
	Metodo        MetodoPago `json:"metodo"`
	FechaEmision  time.Time  `json:"fechaEmision"`
}

// FacturaRepository define las operaciones de datos de facturación.
type FacturaRepository interface {
	// EmitirFactura verifica bajo bloqueo de fila que la reserva esté en
	// checkout, inserta la factura y pasa la reserva a facturada, todo en
	// una transacción. Falla con ErrFacturaDuplicada, ErrReservaNoFacturable
	// o ErrNoEncontrado.
	EmitirFactura(ctx context.Context, f *Factura) error
	// GetFacturaByID obtiene una factura por su ID.
	GetFacturaByID(ctx context.Context, id int) (*Factura, error)
	// ListFacturas devuelve un listado paginado con búsqueda por códigos.
	ListFacturas(ctx context.Context, pagina, porPagina int, busqueda string) (*Paginacion, error)
}
