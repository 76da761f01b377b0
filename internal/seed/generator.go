package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lalavale064/gestion-hotelera/internal/domain"
)

type intervalo struct {
	entrada time.Time
	salida  time.Time
}

// IndiceDisponibilidad lleva en memoria los intervalos tomados por
// habitación para que el generador no proponga reservas cruzadas. Aplica la
// misma regla de solapamiento que la base de datos.
type IndiceDisponibilidad struct {
	porHabitacion map[int][]intervalo
}

func NewIndiceDisponibilidad() *IndiceDisponibilidad {
	return &IndiceDisponibilidad{porHabitacion: make(map[int][]intervalo)}
}

// Reservar registra el intervalo si no se cruza con ninguno existente de la
// habitación. Devuelve false sin registrar si hay conflicto.
func (i *IndiceDisponibilidad) Reservar(habitacionID int, entrada, salida time.Time) bool {
	for _, tomado := range i.porHabitacion[habitacionID] {
		if domain.Solapan(entrada, salida, tomado.entrada, tomado.salida) {
			return false
		}
	}
	i.porHabitacion[habitacionID] = append(i.porHabitacion[habitacionID], intervalo{entrada, salida})
	return true
}

// Generator produce datos de demostración reproducibles a partir de una
// semilla.
type Generator struct {
	rnd    *rand.Rand
	indice *IndiceDisponibilidad
}

func NewGenerator(semilla int64) *Generator {
	return &Generator{
		rnd:    rand.New(rand.NewSource(semilla)),
		indice: NewIndiceDisponibilidad(),
	}
}

var nombres = []string{
	"Ana Pérez", "Luis García", "María Rodríguez", "Carlos López", "Lucía Fernández",
	"Jorge Martínez", "Sofía Sánchez", "Pedro Ramírez", "Valentina Torres", "Diego Flores",
}

// GenerarClientes produce n clientes de demostración
func (g *Generator) GenerarClientes(n int) []domain.Cliente {
	clientes := make([]domain.Cliente, 0, n)
	for i := 0; i < n; i++ {
		nombre := nombres[i%len(nombres)]
		clientes = append(clientes, domain.Cliente{
			NombreCompleto: nombre,
			Email:          fmt.Sprintf("cliente%d@demo.test", i+1),
			Telefono:       fmt.Sprintf("+51%08d", 90000000+g.rnd.Intn(9999999)),
		})
	}
	return clientes
}

// GenerarHabitaciones produce n habitaciones alternando tipos y pisos
func (g *Generator) GenerarHabitaciones(n int) []domain.Habitacion {
	tipos := []struct {
		tipo      domain.TipoHabitacion
		capacidad int
		precio    float64
	}{
		{domain.HabitacionSencilla, 1, 800},
		{domain.HabitacionDoble, 2, 1200},
		{domain.HabitacionSuite, 4, 2500},
	}
	habitaciones := make([]domain.Habitacion, 0, n)
	for i := 0; i < n; i++ {
		t := tipos[i%len(tipos)]
		habitaciones = append(habitaciones, domain.Habitacion{
			Numero:    101 + (i/10)*100 + i%10,
			Tipo:      t.tipo,
			Capacidad: t.capacidad,
			Precio:    t.precio,
			Estado:    domain.HabitacionDisponible,
		})
	}
	return habitaciones
}

// GenerarServicios produce el catálogo base de demostración
func (g *Generator) GenerarServicios() []domain.Servicio {
	return []domain.Servicio{
		{Codigo: "S-DESAY", Nombre: "Desayuno buffet", Precio: 80, Estado: domain.ServicioActivo},
		{Codigo: "S-SPA", Nombre: "Circuito de spa", Precio: 150, Estado: domain.ServicioActivo},
		{Codigo: "S-MASAJ", Nombre: "Masaje relajante", Precio: 200, Estado: domain.ServicioActivo},
		{Codigo: "S-LAVAN", Nombre: "Lavandería", Precio: 60, Estado: domain.ServicioActivo},
		{Codigo: "S-TRASL", Nombre: "Traslado aeropuerto", Precio: 120, Estado: domain.ServicioActivo},
	}
}

// GenerarReservas produce hasta n reservas sin cruces por habitación dentro
// de la ventana [desde, desde+dias). Las entradas caen entre las 14:00 y
// las 22:00 y las salidas entre las 07:00 y las 11:00, como en el mostrador
// real.
func (g *Generator) GenerarReservas(n int, habitaciones []domain.Habitacion, clientes []domain.Cliente, desde time.Time, dias int) []domain.Reserva {
	if len(habitaciones) == 0 || dias < 2 {
		return nil
	}
	reservas := make([]domain.Reserva, 0, n)
	for intentos := 0; len(reservas) < n && intentos < n*10; intentos++ {
		hab := habitaciones[g.rnd.Intn(len(habitaciones))]
		diaEntrada := g.rnd.Intn(dias - 1)
		noches := 1 + g.rnd.Intn(4)

		entrada := desde.AddDate(0, 0, diaEntrada)
		entrada = time.Date(entrada.Year(), entrada.Month(), entrada.Day(), 14+g.rnd.Intn(9), 0, 0, 0, time.UTC)
		salida := desde.AddDate(0, 0, diaEntrada+noches)
		salida = time.Date(salida.Year(), salida.Month(), salida.Day(), 7+g.rnd.Intn(5), 0, 0, 0, time.UTC)

		if !g.indice.Reservar(hab.ID, entrada, salida) {
			continue
		}

		reserva := domain.Reserva{
			HabitacionID: hab.ID,
			FechaEntrada: entrada,
			FechaSalida:  salida,
			Estado:       domain.ReservaReservada,
		}
		if g.rnd.Intn(3) > 0 && len(clientes) > 0 {
			c := clientes[g.rnd.Intn(len(clientes))]
			id := c.ID
			reserva.ClienteID = &id
			reserva.NombreHuesped = c.NombreCompleto
			reserva.EmailHuesped = c.Email
		} else {
			reserva.NombreHuesped = nombres[g.rnd.Intn(len(nombres))]
		}
		reservas = append(reservas, reserva)
	}
	return reservas
}
