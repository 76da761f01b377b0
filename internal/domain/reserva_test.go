package domain

import (
	"testing"
	"time"
)

func fecha(dia int, hora int) time.Time {
	return time.Date(2026, time.January, dia, hora, 0, 0, 0, time.UTC)
}

func TestTransicionPermitida(t *testing.T) {
	permitidas := []struct {
		desde, hacia EstadoReserva
	}{
		{ReservaReservada, ReservaConfirmada},
		{ReservaReservada, ReservaCheckin},
		{ReservaReservada, ReservaCancelada},
		{ReservaConfirmada, ReservaCheckin},
		{ReservaConfirmada, ReservaCancelada},
		{ReservaCheckin, ReservaCheckout},
		{ReservaCheckin, ReservaCancelada},
		{ReservaCheckout, ReservaFacturada},
	}
	for _, tc := range permitidas {
		if !TransicionPermitida(tc.desde, tc.hacia) {
			t.Errorf("TransicionPermitida(%s, %s) = false, se esperaba true", tc.desde, tc.hacia)
		}
	}

	rechazadas := []struct {
		desde, hacia EstadoReserva
	}{
		{ReservaReservada, ReservaFacturada},
		{ReservaReservada, ReservaCheckout},
		{ReservaConfirmada, ReservaCheckout},
		{ReservaCheckout, ReservaCancelada},
		{ReservaCheckout, ReservaCheckin},
		{ReservaFacturada, ReservaCancelada},
		{ReservaFacturada, ReservaCheckout},
		{ReservaCancelada, ReservaReservada},
		{ReservaReservada, EstadoReserva("ocupada")},
		{EstadoReserva("desconocido"), ReservaConfirmada},
	}
	for _, tc := range rechazadas {
		if TransicionPermitida(tc.desde, tc.hacia) {
			t.Errorf("TransicionPermitida(%s, %s) = true, se esperaba false", tc.desde, tc.hacia)
		}
	}
}

func TestEstadoReserva(t *testing.T) {
	t.Run("validez", func(t *testing.T) {
		for _, e := range []EstadoReserva{ReservaReservada, ReservaConfirmada, ReservaCheckin, ReservaCheckout, ReservaFacturada, ReservaCancelada} {
			if !e.Valido() {
				t.Errorf("%s debería ser válido", e)
			}
		}
		if EstadoReserva("pendiente").Valido() {
			t.Error("un estado desconocido no debería ser válido")
		}
	})

	t.Run("activas", func(t *testing.T) {
		activas := []EstadoReserva{ReservaReservada, ReservaConfirmada, ReservaCheckin}
		for _, e := range activas {
			if !e.EsActiva() {
				t.Errorf("%s debería ser activa", e)
			}
		}
		for _, e := range []EstadoReserva{ReservaCheckout, ReservaFacturada, ReservaCancelada} {
			if e.EsActiva() {
				t.Errorf("%s no debería ser activa", e)
			}
		}
	})

	t.Run("terminales", func(t *testing.T) {
		if !ReservaFacturada.EsTerminal() || !ReservaCancelada.EsTerminal() {
			t.Error("facturada y cancelada son terminales")
		}
		if ReservaCheckout.EsTerminal() {
			t.Error("checkout no es terminal, admite facturación")
		}
	})
}

func TestSolapan(t *testing.T) {
	casos := []struct {
		nombre         string
		a1, a2, b1, b2 time.Time
		esperado       bool
	}{
		{"intervalos disjuntos", fecha(1, 14), fecha(3, 11), fecha(5, 14), fecha(7, 11), false},
		{"cruce parcial", fecha(1, 14), fecha(3, 11), fecha(2, 14), fecha(4, 11), true},
		{"contenido", fecha(1, 14), fecha(10, 11), fecha(3, 14), fecha(5, 11), true},
		{"mismo intervalo", fecha(1, 14), fecha(3, 11), fecha(1, 14), fecha(3, 11), true},
		{"contiguos no solapan", fecha(1, 14), fecha(3, 11), fecha(3, 11), fecha(5, 11), false},
		{"contiguos invertidos", fecha(3, 11), fecha(5, 11), fecha(1, 14), fecha(3, 11), false},
	}

	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			if got := Solapan(tc.a1, tc.a2, tc.b1, tc.b2); got != tc.esperado {
				t.Fatalf("Solapan = %v, se esperaba %v", got, tc.esperado)
			}
			// El predicado es simétrico.
			if got := Solapan(tc.b1, tc.b2, tc.a1, tc.a2); got != tc.esperado {
				t.Fatalf("Solapan invertido = %v, se esperaba %v", got, tc.esperado)
			}
		})
	}
}

func TestNoches(t *testing.T) {
	casos := []struct {
		nombre          string
		entrada, salida time.Time
		esperado        int
	}{
		{"dos noches", fecha(1, 15), fecha(3, 11), 2},
		{"una noche", fecha(1, 15), fecha(2, 11), 1},
		{"mismo día cuenta una noche", fecha(1, 10), fecha(1, 18), 1},
		{"las horas no suman noches", fecha(1, 23), fecha(3, 7), 2},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			if got := Noches(tc.entrada, tc.salida); got != tc.esperado {
				t.Fatalf("Noches = %d, se esperaba %d", got, tc.esperado)
			}
		})
	}
}

func TestFechaEnEstadia(t *testing.T) {
	entrada := fecha(5, 15)
	salida := fecha(8, 11)

	dentro := []time.Time{fecha(5, 0), fecha(6, 12), fecha(8, 23)}
	for _, f := range dentro {
		if !FechaEnEstadia(f, entrada, salida) {
			t.Errorf("%s debería estar dentro de la estadía", f.Format("2006-01-02"))
		}
	}
	fuera := []time.Time{fecha(4, 23), fecha(9, 0)}
	for _, f := range fuera {
		if FechaEnEstadia(f, entrada, salida) {
			t.Errorf("%s no debería estar dentro de la estadía", f.Format("2006-01-02"))
		}
	}
}

func TestCalcularTotal(t *testing.T) {
	// Habitación de 1000 por noche, dos noches.
	cargo := 2000.0

	if got := CalcularTotal(cargo, nil); got != 2000 {
		t.Fatalf("total sin servicios = %v, se esperaba 2000", got)
	}

	linea := LineaServicio{Cantidad: 2, PrecioUnitario: 150}
	if got := CalcularTotal(cargo, []LineaServicio{linea}); got != 2300 {
		t.Fatalf("total con servicio = %v, se esperaba 2300", got)
	}

	// Quitar la línea devuelve el total al cargo base.
	if got := CalcularTotal(cargo, []LineaServicio{}); got != 2000 {
		t.Fatalf("total tras quitar servicio = %v, se esperaba 2000", got)
	}
}
