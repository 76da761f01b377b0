package domain

type Rol string

const (
	RolAdmin     Rol = "admin"
	RolRecepcion Rol = "recepcion"
	RolSpa       Rol = "spa"
	RolCliente   Rol = "cliente"
)

// RolValido verifica que el rol pertenezca al conjunto soportado.
func RolValido(r Rol) bool {
	switch r {
	case RolAdmin, RolRecepcion, RolSpa, RolCliente:
		return true
	}
	return false
}

// Actor identifica a quien ejecuta una operación. La autenticación real es
// responsabilidad de la capa externa; aquí solo viaja la identidad ya
// verificada.
type Actor struct {
	Rol       Rol
	ClienteID *int
}

// EsPersonal indica si el actor pertenece al personal del hotel.
func (a Actor) EsPersonal() bool {
	return a.Rol == RolAdmin || a.Rol == RolRecepcion || a.Rol == RolSpa
}

// PuedeOperarRecepcion indica si el actor puede ejecutar operaciones de
// mostrador: transiciones de reserva, facturación, altas de reservas de
// terceros.
func (a Actor) PuedeOperarRecepcion() bool {
	return a.Rol == RolAdmin || a.Rol == RolRecepcion
}

// EsDuenoDe indica si el actor es el cliente dueño del recurso.
func (a Actor) EsDuenoDe(clienteID *int) bool {
	return a.Rol == RolCliente && a.ClienteID != nil && clienteID != nil && *a.ClienteID == *clienteID
}
