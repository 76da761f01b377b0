package application

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/lalavale064/gestion-hotelera/internal/domain"
	"github.com/lalavale064/gestion-hotelera/internal/domain/mocks"
)

func nuevoLineaService(t *testing.T) (*LineaServicioService, *mocks.MockLineaServicioRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	lineaRepo := mocks.NewMockLineaServicioRepository(ctrl)
	return NewLineaServicioService(lineaRepo), lineaRepo
}

func TestAgregarLinea(t *testing.T) {
	spa := domain.Actor{Rol: domain.RolSpa}

	t.Run("el personal registra consumos", func(t *testing.T) {
		svc, lineaRepo := nuevoLineaService(t)
		lineaRepo.EXPECT().AgregarLinea(gomock.Any(), 1, 2, 2, fecha(2)).
			Return(&domain.LineaServicio{ID: 10, ReservaID: 1, ServicioID: 2, Cantidad: 2, PrecioUnitario: 150}, nil)

		linea, err := svc.AgregarLinea(context.Background(), spa, 1, 2, 2, fecha(2))
		if err != nil {
			t.Fatalf("AgregarLinea: %v", err)
		}
		if got := linea.Importe(); got != 300 {
			t.Errorf("Importe() = %v, esperaba 300", got)
		}
	})

	t.Run("rechaza cantidad no positiva", func(t *testing.T) {
		svc, _ := nuevoLineaService(t)
		if _, err := svc.AgregarLinea(context.Background(), spa, 1, 2, 0, fecha(2)); !errors.Is(err, domain.ErrValidacion) {
			t.Fatalf("esperaba ErrValidacion, obtuve %v", err)
		}
	})

	t.Run("un cliente no registra consumos", func(t *testing.T) {
		svc, _ := nuevoLineaService(t)
		cliente := domain.Actor{Rol: domain.RolCliente, ClienteID: ptr(7)}
		if _, err := svc.AgregarLinea(context.Background(), cliente, 1, 2, 1, fecha(2)); !errors.Is(err, domain.ErrNoAutorizado) {
			t.Fatalf("esperaba ErrNoAutorizado, obtuve %v", err)
		}
	})

	t.Run("propaga reserva no activa", func(t *testing.T) {
		svc, lineaRepo := nuevoLineaService(t)
		lineaRepo.EXPECT().AgregarLinea(gomock.Any(), 1, 2, 1, fecha(2)).
			Return(nil, domain.ErrReservaNoActiva)

		if _, err := svc.AgregarLinea(context.Background(), spa, 1, 2, 1, fecha(2)); !errors.Is(err, domain.ErrReservaNoActiva) {
			t.Fatalf("esperaba ErrReservaNoActiva, obtuve %v", err)
		}
	})

	t.Run("propaga fecha fuera de la estadía", func(t *testing.T) {
		svc, lineaRepo := nuevoLineaService(t)
		lineaRepo.EXPECT().AgregarLinea(gomock.Any(), 1, 2, 1, fecha(20)).
			Return(nil, domain.ErrFechaFueraDeEstadia)

		if _, err := svc.AgregarLinea(context.Background(), spa, 1, 2, 1, fecha(20)); !errors.Is(err, domain.ErrValidacion) {
			t.Fatalf("esperaba ErrValidacion, obtuve %v", err)
		}
	})
}

func TestActualizarLinea(t *testing.T) {
	spa := domain.Actor{Rol: domain.RolSpa}

	t.Run("rechaza actualización vacía", func(t *testing.T) {
		svc, _ := nuevoLineaService(t)
		if _, err := svc.ActualizarLinea(context.Background(), spa, 10, nil, nil); !errors.Is(err, domain.ErrValidacion) {
			t.Fatalf("esperaba ErrValidacion, obtuve %v", err)
		}
	})

	t.Run("rechaza cantidad no positiva", func(t *testing.T) {
		svc, _ := nuevoLineaService(t)
		if _, err := svc.ActualizarLinea(context.Background(), spa, 10, ptr(-1), nil); !errors.Is(err, domain.ErrValidacion) {
			t.Fatalf("esperaba ErrValidacion, obtuve %v", err)
		}
	})

	t.Run("actualiza la cantidad", func(t *testing.T) {
		svc, lineaRepo := nuevoLineaService(t)
		lineaRepo.EXPECT().ActualizarLinea(gomock.Any(), 10, ptr(3), nil).
			Return(&domain.LineaServicio{ID: 10, Cantidad: 3}, nil)

		linea, err := svc.ActualizarLinea(context.Background(), spa, 10, ptr(3), nil)
		if err != nil {
			t.Fatalf("ActualizarLinea: %v", err)
		}
		if linea.Cantidad != 3 {
			t.Errorf("cantidad = %d", linea.Cantidad)
		}
	})
}

func TestEliminarLinea(t *testing.T) {
	t.Run("un cliente no elimina consumos", func(t *testing.T) {
		svc, _ := nuevoLineaService(t)
		cliente := domain.Actor{Rol: domain.RolCliente, ClienteID: ptr(7)}
		if err := svc.EliminarLinea(context.Background(), cliente, 10); !errors.Is(err, domain.ErrNoAutorizado) {
			t.Fatalf("esperaba ErrNoAutorizado, obtuve %v", err)
		}
	})

	t.Run("el personal elimina", func(t *testing.T) {
		svc, lineaRepo := nuevoLineaService(t)
		lineaRepo.EXPECT().EliminarLinea(gomock.Any(), 10).Return(nil)
		if err := svc.EliminarLinea(context.Background(), domain.Actor{Rol: domain.RolRecepcion}, 10); err != nil {
			t.Fatalf("EliminarLinea: %v", err)
		}
	})
}

func TestGetMisConsumos(t *testing.T) {
	svc, lineaRepo := nuevoLineaService(t)
	lineaRepo.EXPECT().GetLineasCliente(gomock.Any(), 7).
		Return([]domain.LineaServicio{{ID: 1, Cantidad: 1, PrecioUnitario: 50}}, nil)

	cliente := domain.Actor{Rol: domain.RolCliente, ClienteID: ptr(7)}
	lineas, err := svc.GetMisConsumos(context.Background(), cliente)
	if err != nil {
		t.Fatalf("GetMisConsumos: %v", err)
	}
	if len(lineas) != 1 {
		t.Fatalf("esperaba 1 línea, obtuve %d", len(lineas))
	}

	if _, err := svc.GetMisConsumos(context.Background(), domain.Actor{Rol: domain.RolAdmin}); !errors.Is(err, domain.ErrNoAutorizado) {
		t.Fatalf("esperaba ErrNoAutorizado, obtuve %v", err)
	}
}
