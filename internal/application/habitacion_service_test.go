package application

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/lalavale064/gestion-hotelera/internal/domain"
	"github.com/lalavale064/gestion-hotelera/internal/domain/mocks"
)

func nuevoHabitacionService(t *testing.T) (*HabitacionService, *mocks.MockHabitacionRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	habitacionRepo := mocks.NewMockHabitacionRepository(ctrl)
	return NewHabitacionService(habitacionRepo), habitacionRepo
}

func TestCrearHabitacion(t *testing.T) {
	t.Run("alta válida con estado por defecto", func(t *testing.T) {
		svc, habitacionRepo := nuevoHabitacionService(t)
		habitacionRepo.EXPECT().CrearHabitacion(gomock.Any(), gomock.Any()).Return(nil)

		h := &domain.Habitacion{Numero: 101, Tipo: domain.HabitacionDoble, Capacidad: 2, Precio: 1000}
		if err := svc.CrearHabitacion(context.Background(), h); err != nil {
			t.Fatalf("CrearHabitacion: %v", err)
		}
		if h.Estado != domain.HabitacionDisponible {
			t.Errorf("estado = %s", h.Estado)
		}
	})

	casos := []struct {
		nombre string
		h      domain.Habitacion
	}{
		{"número no positivo", domain.Habitacion{Numero: 0, Tipo: domain.HabitacionDoble, Capacidad: 2, Precio: 100}},
		{"tipo desconocido", domain.Habitacion{Numero: 101, Tipo: "penthouse", Capacidad: 2, Precio: 100}},
		{"capacidad no positiva", domain.Habitacion{Numero: 101, Tipo: domain.HabitacionSuite, Capacidad: 0, Precio: 100}},
		{"precio negativo", domain.Habitacion{Numero: 101, Tipo: domain.HabitacionSencilla, Capacidad: 1, Precio: -5}},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			svc, _ := nuevoHabitacionService(t)
			h := c.h
			if err := svc.CrearHabitacion(context.Background(), &h); !errors.Is(err, domain.ErrValidacion) {
				t.Fatalf("esperaba ErrValidacion, obtuve %v", err)
			}
		})
	}
}

func TestGetDisponibles(t *testing.T) {
	t.Run("rechaza rango invertido", func(t *testing.T) {
		svc, _ := nuevoHabitacionService(t)
		if _, err := svc.GetDisponibles(context.Background(), fecha(5), fecha(3)); !errors.Is(err, domain.ErrValidacion) {
			t.Fatalf("esperaba ErrValidacion, obtuve %v", err)
		}
	})

	t.Run("delega el rango válido", func(t *testing.T) {
		svc, habitacionRepo := nuevoHabitacionService(t)
		habitacionRepo.EXPECT().GetHabitacionesDisponibles(gomock.Any(), fecha(3), fecha(5)).
			Return([]domain.Habitacion{{ID: 1, Numero: 101}}, nil)

		habitaciones, err := svc.GetDisponibles(context.Background(), fecha(3), fecha(5))
		if err != nil {
			t.Fatalf("GetDisponibles: %v", err)
		}
		if len(habitaciones) != 1 {
			t.Fatalf("esperaba 1 habitación, obtuve %d", len(habitaciones))
		}
	})
}
