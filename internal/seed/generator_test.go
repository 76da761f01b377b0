package seed

import (
	"testing"
	"time"

	"github.com/lalavale064/gestion-hotelera/internal/domain"
)

func TestIndiceDisponibilidad(t *testing.T) {
	indice := NewIndiceDisponibilidad()
	e1 := time.Date(2026, 1, 1, 15, 0, 0, 0, time.UTC)
	s1 := time.Date(2026, 1, 3, 10, 0, 0, 0, time.UTC)

	if !indice.Reservar(1, e1, s1) {
		t.Fatal("la primera reserva debería entrar")
	}
	if indice.Reservar(1, e1.AddDate(0, 0, 1), s1.AddDate(0, 0, 1)) {
		t.Error("un intervalo cruzado no debería entrar")
	}
	// Tocar el borde no es conflicto.
	if !indice.Reservar(1, s1, s1.AddDate(0, 0, 2)) {
		t.Error("un intervalo que empieza al terminar el anterior debería entrar")
	}
	// Otra habitación no comparte intervalos.
	if !indice.Reservar(2, e1, s1) {
		t.Error("otra habitación debería aceptar el mismo intervalo")
	}
}

func TestGenerarReservasSinCruces(t *testing.T) {
	g := NewGenerator(42)
	habitaciones := g.GenerarHabitaciones(6)
	for i := range habitaciones {
		habitaciones[i].ID = i + 1
	}
	clientes := g.GenerarClientes(5)
	for i := range clientes {
		clientes[i].ID = i + 1
	}

	desde := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	reservas := g.GenerarReservas(30, habitaciones, clientes, desde, 30)
	if len(reservas) == 0 {
		t.Fatal("esperaba reservas generadas")
	}

	porHabitacion := make(map[int][]domain.Reserva)
	for _, r := range reservas {
		if !r.FechaSalida.After(r.FechaEntrada) {
			t.Fatalf("reserva con rango invertido: %v - %v", r.FechaEntrada, r.FechaSalida)
		}
		if h := r.FechaEntrada.Hour(); h < 14 || h > 22 {
			t.Errorf("hora de entrada fuera de ventana: %d", h)
		}
		if h := r.FechaSalida.Hour(); h < 7 || h > 11 {
			t.Errorf("hora de salida fuera de ventana: %d", h)
		}
		porHabitacion[r.HabitacionID] = append(porHabitacion[r.HabitacionID], r)
	}

	for habitacionID, grupo := range porHabitacion {
		for i := 0; i < len(grupo); i++ {
			for j := i + 1; j < len(grupo); j++ {
				if domain.Solapan(grupo[i].FechaEntrada, grupo[i].FechaSalida, grupo[j].FechaEntrada, grupo[j].FechaSalida) {
					t.Errorf("habitación %d con reservas cruzadas: %v y %v", habitacionID, grupo[i], grupo[j])
				}
			}
		}
	}
}

func TestGeneradorReproducible(t *testing.T) {
	desde := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	generar := func() []domain.Reserva {
		g := NewGenerator(7)
		habitaciones := g.GenerarHabitaciones(4)
		for i := range habitaciones {
			habitaciones[i].ID = i + 1
		}
		return g.GenerarReservas(10, habitaciones, nil, desde, 20)
	}

	a, b := generar(), generar()
	if len(a) != len(b) {
		t.Fatalf("misma semilla, distinta cantidad: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].HabitacionID != b[i].HabitacionID || !a[i].FechaEntrada.Equal(b[i].FechaEntrada) {
			t.Fatalf("misma semilla, reserva %d distinta", i)
		}
	}
}
