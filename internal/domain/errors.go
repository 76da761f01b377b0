package domain

import (
	"errors"
	"fmt"
)

// Errores centinela por categoría. Los manejadores HTTP los traducen a
// códigos de estado con errors.Is.
var (
	// ErrNoEncontrado indica que el recurso pedido no existe.
	ErrNoEncontrado = errors.New("no encontrado")
	// ErrConflicto indica un choque con el estado existente (duplicados,
	// fechas tomadas, borrados con dependencias).
	ErrConflicto = errors.New("conflicto")
	// ErrTransicionInvalida indica un cambio de estado que la tabla de
	// transiciones no admite.
	ErrTransicionInvalida = errors.New("transición de estado inválida")
	// ErrValidacion indica datos de entrada que no pasan las reglas de
	// negocio.
	ErrValidacion = errors.New("datos inválidos")
	// ErrNoAutorizado indica que el actor no puede ejecutar la operación.
	ErrNoAutorizado = errors.New("no autorizado")
)

// Errores específicos, envueltos sobre su categoría para que errors.Is
// responda en ambos niveles.
var (
	// ErrConflictoFechas indica que la habitación ya tiene una reserva no
	// cancelada que se cruza con el rango pedido.
	ErrConflictoFechas = fmt.Errorf("%w: la habitación ya está reservada en esas fechas", ErrConflicto)
	// ErrFacturaDuplicada indica que la reserva ya tiene factura emitida.
	ErrFacturaDuplicada = fmt.Errorf("%w: la reserva ya fue facturada", ErrConflicto)
	// ErrReservaNoFacturable indica que la reserva no está en checkout.
	ErrReservaNoFacturable = fmt.Errorf("%w: solo se factura una reserva en checkout", ErrTransicionInvalida)
	// ErrReservaNoActiva indica que la reserva no admite cargos de servicios.
	ErrReservaNoActiva = fmt.Errorf("%w: la reserva no admite cargos", ErrConflicto)
	// ErrFechaFueraDeEstadia indica una fecha de servicio fuera de la ventana
	// de la estadía.
	ErrFechaFueraDeEstadia = fmt.Errorf("%w: la fecha del servicio cae fuera de la estadía", ErrValidacion)
)
