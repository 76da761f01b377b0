package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/lalavale064/gestion-hotelera/internal/domain"
	"github.com/lalavale064/gestion-hotelera/internal/domain/mocks"
)

func nuevoFacturaService(t *testing.T) (*FacturaService, *mocks.MockFacturaRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	facturaRepo := mocks.NewMockFacturaRepository(ctrl)
	return NewFacturaService(facturaRepo), facturaRepo
}

func TestEmitirFactura(t *testing.T) {
	recepcion := domain.Actor{Rol: domain.RolRecepcion}

	t.Run("genera código y delega la emisión", func(t *testing.T) {
		svc, facturaRepo := nuevoFacturaService(t)
		facturaRepo.EXPECT().EmitirFactura(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f *domain.Factura) error {
				f.ID = 1
				f.Total = 2300
				return nil
			})

		factura, err := svc.EmitirFactura(context.Background(), recepcion, 1, domain.PagoTarjeta)
		if err != nil {
			t.Fatalf("EmitirFactura: %v", err)
		}
		if !strings.HasPrefix(factura.Codigo, "I-") || len(factura.Codigo) != 8 {
			t.Errorf("código inesperado %q", factura.Codigo)
		}
		if factura.Total != 2300 {
			t.Errorf("total = %v", factura.Total)
		}
	})

	t.Run("rechaza método de pago desconocido", func(t *testing.T) {
		svc, _ := nuevoFacturaService(t)
		if _, err := svc.EmitirFactura(context.Background(), recepcion, 1, "cheque"); !errors.Is(err, domain.ErrValidacion) {
			t.Fatalf("esperaba ErrValidacion, obtuve %v", err)
		}
	})

	t.Run("spa no factura", func(t *testing.T) {
		svc, _ := nuevoFacturaService(t)
		if _, err := svc.EmitirFactura(context.Background(), domain.Actor{Rol: domain.RolSpa}, 1, domain.PagoEfectivo); !errors.Is(err, domain.ErrNoAutorizado) {
			t.Fatalf("esperaba ErrNoAutorizado, obtuve %v", err)
		}
	})

	t.Run("propaga factura duplicada", func(t *testing.T) {
		svc, facturaRepo := nuevoFacturaService(t)
		facturaRepo.EXPECT().EmitirFactura(gomock.Any(), gomock.Any()).Return(domain.ErrFacturaDuplicada)

		_, err := svc.EmitirFactura(context.Background(), recepcion, 1, domain.PagoEfectivo)
		if !errors.Is(err, domain.ErrFacturaDuplicada) || !errors.Is(err, domain.ErrConflicto) {
			t.Fatalf("esperaba ErrFacturaDuplicada, obtuve %v", err)
		}
	})

	t.Run("propaga reserva no facturable", func(t *testing.T) {
		svc, facturaRepo := nuevoFacturaService(t)
		facturaRepo.EXPECT().EmitirFactura(gomock.Any(), gomock.Any()).Return(domain.ErrReservaNoFacturable)

		_, err := svc.EmitirFactura(context.Background(), recepcion, 1, domain.PagoEfectivo)
		if !errors.Is(err, domain.ErrTransicionInvalida) {
			t.Fatalf("esperaba ErrTransicionInvalida, obtuve %v", err)
		}
	})
}
