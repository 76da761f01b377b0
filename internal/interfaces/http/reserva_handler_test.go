package http

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/mock/gomock"

	"github.com/lalavale064/gestion-hotelera/internal/application"
	"github.com/lalavale064/gestion-hotelera/internal/domain"
	"github.com/lalavale064/gestion-hotelera/internal/domain/mocks"
)

func nuevaAppReservas(t *testing.T) (*fiber.App, *mocks.MockReservaRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	reservaRepo := mocks.NewMockReservaRepository(ctrl)
	habitacionRepo := mocks.NewMockHabitacionRepository(ctrl)
	habitacionRepo.EXPECT().GetHabitacionByID(gomock.Any(), gomock.Any()).
		Return(&domain.Habitacion{ID: 1}, nil).AnyTimes()
	clienteRepo := mocks.NewMockClienteRepository(ctrl)
	service := application.NewReservaService(reservaRepo, habitacionRepo, clienteRepo, nil)
	handler := NewReservaHandler(service)

	app := fiber.New()
	app.Use(ActorMiddleware())
	app.Post("/api/reservas", handler.Create)
	app.Get("/api/reservas/:id", handler.Get)
	app.Patch("/api/reservas/:id/estado", handler.Transicion)
	return app, reservaRepo
}

func TestCreateReservaEndpoint(t *testing.T) {
	t.Run("201 con el código generado", func(t *testing.T) {
		app, reservaRepo := nuevaAppReservas(t)
		reservaRepo.EXPECT().CrearReserva(gomock.Any(), gomock.Any()).Return(nil)

		body := `{"habitacionId":1,"nombreHuesped":"Ana Pérez","fechaEntrada":"2026-01-01","fechaSalida":"2026-01-03"}`
		req := httptest.NewRequest("POST", "/api/reservas", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-Role", "recepcion")

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != fiber.StatusCreated {
			t.Fatalf("status = %d", resp.StatusCode)
		}

		var reserva domain.Reserva
		if err := json.NewDecoder(resp.Body).Decode(&reserva); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(reserva.Codigo, "R-") {
			t.Errorf("código = %q", reserva.Codigo)
		}
	})

	t.Run("409 cuando las fechas chocan", func(t *testing.T) {
		app, reservaRepo := nuevaAppReservas(t)
		reservaRepo.EXPECT().CrearReserva(gomock.Any(), gomock.Any()).Return(domain.ErrConflictoFechas)

		body := `{"habitacionId":1,"nombreHuesped":"Ana Pérez","fechaEntrada":"2026-01-02","fechaSalida":"2026-01-04"}`
		req := httptest.NewRequest("POST", "/api/reservas", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-Role", "recepcion")

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != fiber.StatusConflict {
			t.Fatalf("status = %d", resp.StatusCode)
		}
	})

	t.Run("400 con fechas mal formadas", func(t *testing.T) {
		app, _ := nuevaAppReservas(t)
		body := `{"habitacionId":1,"nombreHuesped":"Ana Pérez","fechaEntrada":"01/01/2026","fechaSalida":"2026-01-03"}`
		req := httptest.NewRequest("POST", "/api/reservas", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-Role", "recepcion")

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("status = %d", resp.StatusCode)
		}
	})
}

func TestTransicionEndpoint(t *testing.T) {
	t.Run("409 ante transición inválida", func(t *testing.T) {
		app, reservaRepo := nuevaAppReservas(t)
		reservaRepo.EXPECT().Transicionar(gomock.Any(), 5, domain.ReservaCheckout, gomock.Nil()).
			Return(nil, domain.ErrTransicionInvalida)

		req := httptest.NewRequest("PATCH", "/api/reservas/5/estado", strings.NewReader(`{"estado":"checkout"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-Role", "recepcion")

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != fiber.StatusConflict {
			t.Fatalf("status = %d", resp.StatusCode)
		}
	})

	t.Run("403 cuando el rol no alcanza", func(t *testing.T) {
		app, _ := nuevaAppReservas(t)
		req := httptest.NewRequest("PATCH", "/api/reservas/5/estado", strings.NewReader(`{"estado":"checkin"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-Role", "spa")

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != fiber.StatusForbidden {
			t.Fatalf("status = %d", resp.StatusCode)
		}
	})
}

func TestGetReservaEndpoint(t *testing.T) {
	t.Run("404 cuando no existe", func(t *testing.T) {
		app, reservaRepo := nuevaAppReservas(t)
		reservaRepo.EXPECT().GetReservaByID(gomock.Any(), 99).Return(nil, domain.ErrNoEncontrado)

		req := httptest.NewRequest("GET", "/api/reservas/99", nil)
		req.Header.Set("X-User-Role", "admin")

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != fiber.StatusNotFound {
			t.Fatalf("status = %d", resp.StatusCode)
		}
	})

	t.Run("el cliente no ve reservas ajenas", func(t *testing.T) {
		app, reservaRepo := nuevaAppReservas(t)
		otro := 99
		reservaRepo.EXPECT().GetReservaByID(gomock.Any(), 5).
			Return(&domain.Reserva{ID: 5, ClienteID: &otro}, nil)

		req := httptest.NewRequest("GET", "/api/reservas/5", nil)
		req.Header.Set("X-User-Role", "cliente")
		req.Header.Set("X-Client-Id", "7")

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != fiber.StatusForbidden {
			t.Fatalf("status = %d", resp.StatusCode)
		}
	})
}
