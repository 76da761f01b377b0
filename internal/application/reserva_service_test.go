package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/lalavale064/gestion-hotelera/internal/domain"
	"github.com/lalavale064/gestion-hotelera/internal/domain/mocks"
)

func fecha(dia int) time.Time {
	return time.Date(2026, time.January, dia, 0, 0, 0, 0, time.UTC)
}

func ptr(i int) *int { return &i }

func nuevoReservaService(t *testing.T) (*ReservaService, *mocks.MockReservaRepository, *mocks.MockHabitacionRepository, *mocks.MockClienteRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	reservaRepo := mocks.NewMockReservaRepository(ctrl)
	habitacionRepo := mocks.NewMockHabitacionRepository(ctrl)
	clienteRepo := mocks.NewMockClienteRepository(ctrl)
	return NewReservaService(reservaRepo, habitacionRepo, clienteRepo, nil), reservaRepo, habitacionRepo, clienteRepo
}

func TestCrearReserva(t *testing.T) {
	recepcion := domain.Actor{Rol: domain.RolRecepcion}

	t.Run("genera código y delega el alta", func(t *testing.T) {
		svc, reservaRepo, habitacionRepo, _ := nuevoReservaService(t)
		habitacionRepo.EXPECT().GetHabitacionByID(gomock.Any(), 1).Return(&domain.Habitacion{ID: 1}, nil)
		reservaRepo.EXPECT().CrearReserva(gomock.Any(), gomock.Any()).Return(nil)

		reserva := &domain.Reserva{
			HabitacionID:  1,
			NombreHuesped: "Ana Pérez",
			FechaEntrada:  fecha(1),
			FechaSalida:   fecha(3),
		}
		if err := svc.CrearReserva(context.Background(), recepcion, reserva); err != nil {
			t.Fatalf("CrearReserva: %v", err)
		}
		if !strings.HasPrefix(reserva.Codigo, "R-") || len(reserva.Codigo) != 8 {
			t.Errorf("código inesperado %q", reserva.Codigo)
		}
	})

	t.Run("rechaza habitación inexistente", func(t *testing.T) {
		svc, _, habitacionRepo, _ := nuevoReservaService(t)
		habitacionRepo.EXPECT().GetHabitacionByID(gomock.Any(), 404).
			Return(nil, domain.ErrNoEncontrado)

		reserva := &domain.Reserva{
			HabitacionID:  404,
			NombreHuesped: "Ana Pérez",
			FechaEntrada:  fecha(1),
			FechaSalida:   fecha(3),
		}
		err := svc.CrearReserva(context.Background(), recepcion, reserva)
		if !errors.Is(err, domain.ErrNoEncontrado) {
			t.Fatalf("esperaba ErrNoEncontrado, obtuve %v", err)
		}
	})

	t.Run("rechaza salida no posterior a la entrada", func(t *testing.T) {
		svc, _, _, _ := nuevoReservaService(t)
		reserva := &domain.Reserva{
			HabitacionID:  1,
			NombreHuesped: "Ana Pérez",
			FechaEntrada:  fecha(3),
			FechaSalida:   fecha(3),
		}
		err := svc.CrearReserva(context.Background(), recepcion, reserva)
		if !errors.Is(err, domain.ErrValidacion) {
			t.Fatalf("esperaba ErrValidacion, obtuve %v", err)
		}
	})

	t.Run("rechaza huésped sin nombre", func(t *testing.T) {
		svc, _, _, _ := nuevoReservaService(t)
		reserva := &domain.Reserva{HabitacionID: 1, FechaEntrada: fecha(1), FechaSalida: fecha(2)}
		if err := svc.CrearReserva(context.Background(), recepcion, reserva); !errors.Is(err, domain.ErrValidacion) {
			t.Fatalf("esperaba ErrValidacion, obtuve %v", err)
		}
	})

	t.Run("el cliente siempre reserva a su nombre", func(t *testing.T) {
		svc, reservaRepo, habitacionRepo, clienteRepo := nuevoReservaService(t)
		clienteRepo.EXPECT().GetClienteByID(gomock.Any(), 7).Return(&domain.Cliente{ID: 7}, nil)
		habitacionRepo.EXPECT().GetHabitacionByID(gomock.Any(), 1).Return(&domain.Habitacion{ID: 1}, nil)
		reservaRepo.EXPECT().CrearReserva(gomock.Any(), gomock.Any()).Return(nil)

		reserva := &domain.Reserva{
			ClienteID:     ptr(99), // intento de reservar para otro
			HabitacionID:  1,
			NombreHuesped: "Ana Pérez",
			FechaEntrada:  fecha(1),
			FechaSalida:   fecha(3),
		}
		cliente := domain.Actor{Rol: domain.RolCliente, ClienteID: ptr(7)}
		if err := svc.CrearReserva(context.Background(), cliente, reserva); err != nil {
			t.Fatalf("CrearReserva: %v", err)
		}
		if reserva.ClienteID == nil || *reserva.ClienteID != 7 {
			t.Errorf("ClienteID = %v, esperaba 7", reserva.ClienteID)
		}
	})

	t.Run("propaga el conflicto de fechas", func(t *testing.T) {
		svc, reservaRepo, habitacionRepo, _ := nuevoReservaService(t)
		habitacionRepo.EXPECT().GetHabitacionByID(gomock.Any(), 1).Return(&domain.Habitacion{ID: 1}, nil)
		reservaRepo.EXPECT().CrearReserva(gomock.Any(), gomock.Any()).Return(domain.ErrConflictoFechas)

		reserva := &domain.Reserva{
			HabitacionID:  1,
			NombreHuesped: "Ana Pérez",
			FechaEntrada:  fecha(2),
			FechaSalida:   fecha(4),
		}
		err := svc.CrearReserva(context.Background(), recepcion, reserva)
		if !errors.Is(err, domain.ErrConflicto) {
			t.Fatalf("esperaba ErrConflicto, obtuve %v", err)
		}
	})
}

func TestTransicionar(t *testing.T) {
	recepcion := domain.Actor{Rol: domain.RolRecepcion}

	t.Run("recepción confirma", func(t *testing.T) {
		svc, reservaRepo, _, _ := nuevoReservaService(t)
		confirmada := &domain.Reserva{ID: 1, Estado: domain.ReservaConfirmada}
		reservaRepo.EXPECT().Transicionar(gomock.Any(), 1, domain.ReservaConfirmada, gomock.Nil()).Return(confirmada, nil)

		reserva, err := svc.Transicionar(context.Background(), recepcion, 1, domain.ReservaConfirmada)
		if err != nil {
			t.Fatalf("Transicionar: %v", err)
		}
		if reserva.Estado != domain.ReservaConfirmada {
			t.Errorf("estado = %s", reserva.Estado)
		}
	})

	t.Run("rechaza estado desconocido", func(t *testing.T) {
		svc, _, _, _ := nuevoReservaService(t)
		if _, err := svc.Transicionar(context.Background(), recepcion, 1, "pendiente"); !errors.Is(err, domain.ErrValidacion) {
			t.Fatalf("esperaba ErrValidacion, obtuve %v", err)
		}
	})

	t.Run("facturada solo se alcanza emitiendo factura", func(t *testing.T) {
		svc, _, _, _ := nuevoReservaService(t)
		if _, err := svc.Transicionar(context.Background(), recepcion, 1, domain.ReservaFacturada); !errors.Is(err, domain.ErrTransicionInvalida) {
			t.Fatalf("esperaba ErrTransicionInvalida, obtuve %v", err)
		}
	})

	t.Run("spa no opera el mostrador", func(t *testing.T) {
		svc, _, _, _ := nuevoReservaService(t)
		spa := domain.Actor{Rol: domain.RolSpa}
		if _, err := svc.Transicionar(context.Background(), spa, 1, domain.ReservaCheckin); !errors.Is(err, domain.ErrNoAutorizado) {
			t.Fatalf("esperaba ErrNoAutorizado, obtuve %v", err)
		}
	})

	t.Run("el cliente cancela su reserva sin confirmar", func(t *testing.T) {
		svc, reservaRepo, _, _ := nuevoReservaService(t)
		reservaRepo.EXPECT().GetReservaByID(gomock.Any(), 1).
			Return(&domain.Reserva{ID: 1, ClienteID: ptr(7), Estado: domain.ReservaReservada}, nil)
		reservaRepo.EXPECT().Transicionar(gomock.Any(), 1, domain.ReservaCancelada, gomock.Any()).
			DoAndReturn(func(_ context.Context, id int, hacia domain.EstadoReserva, desde *domain.EstadoReserva) (*domain.Reserva, error) {
				// La cancelación del cliente debe exigir reservada bajo bloqueo.
				if desde == nil || *desde != domain.ReservaReservada {
					t.Errorf("desde = %v, esperaba reservada", desde)
				}
				return &domain.Reserva{ID: 1, ClienteID: ptr(7), Estado: domain.ReservaCancelada}, nil
			})

		cliente := domain.Actor{Rol: domain.RolCliente, ClienteID: ptr(7)}
		if _, err := svc.Transicionar(context.Background(), cliente, 1, domain.ReservaCancelada); err != nil {
			t.Fatalf("Transicionar: %v", err)
		}
	})

	t.Run("una confirmación concurrente invalida la cancelación del cliente", func(t *testing.T) {
		svc, reservaRepo, _, _ := nuevoReservaService(t)
		// La lectura previa aún ve reservada, pero al tomar el bloqueo la
		// reserva ya fue confirmada por recepción.
		reservaRepo.EXPECT().GetReservaByID(gomock.Any(), 1).
			Return(&domain.Reserva{ID: 1, ClienteID: ptr(7), Estado: domain.ReservaReservada}, nil)
		reservaRepo.EXPECT().Transicionar(gomock.Any(), 1, domain.ReservaCancelada, gomock.Not(gomock.Nil())).
			Return(nil, domain.ErrTransicionInvalida)

		cliente := domain.Actor{Rol: domain.RolCliente, ClienteID: ptr(7)}
		if _, err := svc.Transicionar(context.Background(), cliente, 1, domain.ReservaCancelada); !errors.Is(err, domain.ErrTransicionInvalida) {
			t.Fatalf("esperaba ErrTransicionInvalida, obtuve %v", err)
		}
	})

	t.Run("el cliente no cancela reservas ajenas", func(t *testing.T) {
		svc, reservaRepo, _, _ := nuevoReservaService(t)
		reservaRepo.EXPECT().GetReservaByID(gomock.Any(), 1).
			Return(&domain.Reserva{ID: 1, ClienteID: ptr(99), Estado: domain.ReservaReservada}, nil)

		cliente := domain.Actor{Rol: domain.RolCliente, ClienteID: ptr(7)}
		if _, err := svc.Transicionar(context.Background(), cliente, 1, domain.ReservaCancelada); !errors.Is(err, domain.ErrNoAutorizado) {
			t.Fatalf("esperaba ErrNoAutorizado, obtuve %v", err)
		}
	})

	t.Run("el cliente no cancela una reserva confirmada", func(t *testing.T) {
		svc, reservaRepo, _, _ := nuevoReservaService(t)
		reservaRepo.EXPECT().GetReservaByID(gomock.Any(), 1).
			Return(&domain.Reserva{ID: 1, ClienteID: ptr(7), Estado: domain.ReservaConfirmada}, nil)

		cliente := domain.Actor{Rol: domain.RolCliente, ClienteID: ptr(7)}
		if _, err := svc.Transicionar(context.Background(), cliente, 1, domain.ReservaCancelada); !errors.Is(err, domain.ErrTransicionInvalida) {
			t.Fatalf("esperaba ErrTransicionInvalida, obtuve %v", err)
		}
	})

	t.Run("el cliente no hace checkin", func(t *testing.T) {
		svc, _, _, _ := nuevoReservaService(t)
		cliente := domain.Actor{Rol: domain.RolCliente, ClienteID: ptr(7)}
		if _, err := svc.Transicionar(context.Background(), cliente, 1, domain.ReservaCheckin); !errors.Is(err, domain.ErrNoAutorizado) {
			t.Fatalf("esperaba ErrNoAutorizado, obtuve %v", err)
		}
	})

	t.Run("propaga la transición inválida del repositorio", func(t *testing.T) {
		svc, reservaRepo, _, _ := nuevoReservaService(t)
		reservaRepo.EXPECT().Transicionar(gomock.Any(), 1, domain.ReservaCheckout, gomock.Nil()).
			Return(nil, domain.ErrTransicionInvalida)

		if _, err := svc.Transicionar(context.Background(), recepcion, 1, domain.ReservaCheckout); !errors.Is(err, domain.ErrTransicionInvalida) {
			t.Fatalf("esperaba ErrTransicionInvalida, obtuve %v", err)
		}
	})
}

func TestGetReserva(t *testing.T) {
	t.Run("el cliente solo ve las propias", func(t *testing.T) {
		svc, reservaRepo, _, _ := nuevoReservaService(t)
		reservaRepo.EXPECT().GetReservaByID(gomock.Any(), 5).
			Return(&domain.Reserva{ID: 5, ClienteID: ptr(99)}, nil)

		cliente := domain.Actor{Rol: domain.RolCliente, ClienteID: ptr(7)}
		if _, err := svc.GetReserva(context.Background(), cliente, 5); !errors.Is(err, domain.ErrNoAutorizado) {
			t.Fatalf("esperaba ErrNoAutorizado, obtuve %v", err)
		}
	})

	t.Run("el personal ve cualquiera", func(t *testing.T) {
		svc, reservaRepo, _, _ := nuevoReservaService(t)
		reservaRepo.EXPECT().GetReservaByID(gomock.Any(), 5).
			Return(&domain.Reserva{ID: 5, ClienteID: ptr(99)}, nil)

		if _, err := svc.GetReserva(context.Background(), domain.Actor{Rol: domain.RolAdmin}, 5); err != nil {
			t.Fatalf("GetReserva: %v", err)
		}
	})
}

func TestListReservas(t *testing.T) {
	t.Run("normaliza la paginación", func(t *testing.T) {
		svc, reservaRepo, _, _ := nuevoReservaService(t)
		reservaRepo.EXPECT().
			ListReservas(gomock.Any(), domain.FiltroReservas{Pagina: 1, PorPagina: 20}).
			Return(domain.NuevaPaginacion([]domain.Reserva{}, 0, 1, 20), nil)

		if _, err := svc.ListReservas(context.Background(), domain.FiltroReservas{Pagina: 0, PorPagina: 500}); err != nil {
			t.Fatalf("ListReservas: %v", err)
		}
	})

	t.Run("rechaza filtro de estado desconocido", func(t *testing.T) {
		svc, _, _, _ := nuevoReservaService(t)
		_, err := svc.ListReservas(context.Background(), domain.FiltroReservas{Estado: "archivada"})
		if !errors.Is(err, domain.ErrValidacion) {
			t.Fatalf("esperaba ErrValidacion, obtuve %v", err)
		}
	})
}
