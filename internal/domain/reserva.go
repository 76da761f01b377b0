package domain

import (
	"context"
	"time"
)

type EstadoReserva string

const (
	ReservaReservada  EstadoReserva = "reservada"
	ReservaConfirmada EstadoReserva = "confirmada"
	ReservaCheckin    EstadoReserva = "checkin"
	ReservaCheckout   EstadoReserva = "checkout"
	ReservaFacturada  EstadoReserva = "facturada"
	ReservaCancelada  EstadoReserva = "cancelada"
)

// transiciones define la tabla de transiciones del ciclo de vida.
// facturada y cancelada son estados terminales.
var transiciones = map[EstadoReserva][]EstadoReserva{
	ReservaReservada:  {ReservaConfirmada, ReservaCheckin, ReservaCancelada},
	ReservaConfirmada: {ReservaCheckin, ReservaCancelada},
	ReservaCheckin:    {ReservaCheckout, ReservaCancelada},
	ReservaCheckout:   {ReservaFacturada},
	ReservaFacturada:  nil,
	ReservaCancelada:  nil,
}

// Valido verifica que el estado pertenezca al conjunto soportado.
func (e EstadoReserva) Valido() bool {
	_, ok := transiciones[e]
	return ok
}

// EsActiva indica si la reserva admite anexar servicios.
func (e EstadoReserva) EsActiva() bool {
	return e == ReservaReservada || e == ReservaConfirmada || e == ReservaCheckin
}

// EsTerminal indica si no existen transiciones de negocio desde el estado.
func (e EstadoReserva) EsTerminal() bool {
	return e.Valido() && len(transiciones[e]) == 0
}

// TransicionPermitida indica si la tabla de transiciones admite pasar de
// desde a hacia. Un estado desconocido en cualquiera de los dos extremos
// nunca está permitido.
func TransicionPermitida(desde, hacia EstadoReserva) bool {
	for _, e := range transiciones[desde] {
		if e == hacia {
			return true
		}
	}
	return false
}

// Reserva representa una reserva de una habitación. CargoHabitacion queda
// fijado al crearla (precio por noche por noches de estadía); Total siempre
// se deriva en lectura como CargoHabitacion más la suma de las líneas de
// servicio vigentes, nunca se acumula de forma incremental.
type Reserva struct {
	ID              int             `json:"id"`
	Codigo          string          `json:"codigo"`
	ClienteID       *int            `json:"clienteId,omitempty"`
	HabitacionID    int             `json:"habitacionId"`
	NombreHuesped   string          `json:"nombreHuesped"`
	EmailHuesped    string          `json:"emailHuesped,omitempty"`
	FonoHuesped     string          `json:"fonoHuesped,omitempty"`
	FechaEntrada    time.Time       `json:"fechaEntrada"`
	FechaSalida     time.Time       `json:"fechaSalida"`
	CargoHabitacion float64         `json:"cargoHabitacion"`
	Total           float64         `json:"total"`
	Estado          EstadoReserva   `json:"estado"`
	Lineas          []LineaServicio `json:"servicios,omitempty"`

	// Datos de la habitación, poblados en lecturas con JOIN.
	NumeroHabitacion int    `json:"numeroHabitacion,omitempty"`
	TipoHabitacion   string `json:"tipoHabitacion,omitempty"`
}

// LineaServicio es un consumo de servicio anotado a una reserva. El precio
// unitario se congela al momento del alta; cambios posteriores en el
// catálogo de servicios no lo afectan.
type LineaServicio struct {
	ID             int       `json:"id"`
	ReservaID      int       `json:"reservaId"`
	ServicioID     int       `json:"servicioId"`
	NombreServicio string    `json:"nombreServicio,omitempty"`
	CodigoReserva  string    `json:"codigoReserva,omitempty"`
	Cantidad       int       `json:"cantidad"`
	PrecioUnitario float64   `json:"precioUnitario"`
	FechaServicio  time.Time `json:"fechaServicio"`
}

// Importe devuelve el costo total de la línea.
func (l LineaServicio) Importe() float64 {
	return float64(l.Cantidad) * l.PrecioUnitario
}

// Solapan determina si dos intervalos semiabiertos [a1,a2) y [b1,b2) se
// cruzan. Una reserva que termina exactamente cuando otra empieza no es
// conflicto: el checkout de la mañana convive con el check-in de la tarde.
func Solapan(a1, a2, b1, b2 time.Time) bool {
	return !(!a2.After(b1) || !a1.Before(b2))
}

// Noches calcula las noches de estadía como diferencia de días calendario,
// con mínimo de una noche incluso para reservas del mismo día.
func Noches(entrada, salida time.Time) int {
	e := time.Date(entrada.Year(), entrada.Month(), entrada.Day(), 0, 0, 0, 0, time.UTC)
	s := time.Date(salida.Year(), salida.Month(), salida.Day(), 0, 0, 0, 0, time.UTC)
	noches := int(s.Sub(e).Hours() / 24)
	if noches < 1 {
		noches = 1
	}
	return noches
}

// FechaEnEstadia verifica que una fecha de servicio caiga dentro de la
// ventana [día de entrada, día de salida], ambos inclusive. Se comparan
// días calendario, no horas.
func FechaEnEstadia(fecha, entrada, salida time.Time) bool {
	f := time.Date(fecha.Year(), fecha.Month(), fecha.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(entrada.Year(), entrada.Month(), entrada.Day(), 0, 0, 0, 0, time.UTC)
	s := time.Date(salida.Year(), salida.Month(), salida.Day(), 0, 0, 0, 0, time.UTC)
	return !f.Before(e) && !f.After(s)
}

// CalcularTotal deriva el total de una reserva a partir del cargo fijo de
// habitación y sus líneas vigentes.
func CalcularTotal(cargoHabitacion float64, lineas []LineaServicio) float64 {
	total := cargoHabitacion
	for _, l := range lineas {
		total += l.Importe()
	}
	return total
}

// FiltroReservas acota un listado paginado de reservas.
type FiltroReservas struct {
	Pagina    int
	PorPagina int
	Busqueda  string
	Estado    EstadoReserva
}

// ReservaRepository define las operaciones de persistencia de reservas.
// Toda operación de varios pasos (crear con chequeo de solapamiento,
// transicionar con efecto sobre la habitación, mutar líneas) se ejecuta en
// una única transacción con bloqueo de fila sobre la reserva o habitación
// objetivo.
type ReservaRepository interface {
	// CrearReserva inserta la reserva verificando el solapamiento de fechas
	// bajo bloqueo de la habitación. Falla con ErrConflictoFechas o
	// ErrNoEncontrado (habitación inexistente).
	CrearReserva(ctx context.Context, reserva *Reserva) error
	// GetReservaByID obtiene una reserva con su total derivado y sus líneas.
	GetReservaByID(ctx context.Context, id int) (*Reserva, error)
	// ListReservas devuelve un listado paginado con búsqueda y filtro de estado.
	ListReservas(ctx context.Context, filtro FiltroReservas) (*Paginacion, error)
	// GetReservasCliente obtiene todas las reservas de un cliente.
	GetReservasCliente(ctx context.Context, clienteID int) ([]Reserva, error)
	// Transicionar cambia el estado bajo bloqueo de fila, validando la tabla
	// de transiciones contra el estado vigente y aplicando el efecto sobre el
	// estado de la habitación en la misma transacción. Si desde no es nil la
	// transición además exige que el estado vigente sea exactamente ese,
	// evaluado bajo el mismo bloqueo. Falla con ErrTransicionInvalida o
	// ErrNoEncontrado.
	Transicionar(ctx context.Context, id int, hacia EstadoReserva, desde *EstadoReserva) (*Reserva, error)
	// EliminarReserva borra la reserva junto con sus líneas y facturas.
	EliminarReserva(ctx context.Context, id int) error
	// GetOperacionesDia lista reservas con entrada o salida en la fecha dada.
	GetOperacionesDia(ctx context.Context, dia time.Time) ([]Reserva, error)
	// GetHuespedesEnCasa lista reservas en estado checkin.
	GetHuespedesEnCasa(ctx context.Context, busqueda string) ([]Reserva, error)
	// GetFacturables lista reservas en estado checkout, listas para facturar.
	GetFacturables(ctx context.Context) ([]Reserva, error)
}

// LineaServicioRepository define las mutaciones de líneas de servicio. Cada
// mutación bloquea la reserva padre y valida estado y ventana de fechas en
// la misma transacción.
type LineaServicioRepository interface {
	// AgregarLinea inserta una línea congelando el precio vigente del
	// servicio. Falla con ErrReservaNoActiva, ErrFechaFueraDeEstadia o
	// ErrNoEncontrado (reserva o servicio).
	AgregarLinea(ctx context.Context, reservaID, servicioID, cantidad int, fecha time.Time) (*LineaServicio, error)
	// ActualizarLinea cambia cantidad y/o fecha bajo bloqueo de la reserva
	// padre. El precio unitario nunca se re-lee del catálogo.
	ActualizarLinea(ctx context.Context, lineaID int, cantidad *int, fecha *time.Time) (*LineaServicio, error)
	// EliminarLinea borra la línea.
	EliminarLinea(ctx context.Context, lineaID int) error
	// GetLineaByID obtiene una línea por su ID.
	GetLineaByID(ctx context.Context, lineaID int) (*LineaServicio, error)
	// ListLineas devuelve un listado paginado de líneas con datos de reserva
	// y servicio.
	ListLineas(ctx context.Context, pagina, porPagina int, busqueda string) (*Paginacion, error)
	// GetLineasCliente lista los consumos de todas las reservas de un cliente.
	GetLineasCliente(ctx context.Context, clienteID int) ([]LineaServicio, error)
}
