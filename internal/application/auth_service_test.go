package application

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/lalavale064/gestion-hotelera/internal/domain"
	"github.com/lalavale064/gestion-hotelera/internal/domain/mocks"
)

func TestLogin(t *testing.T) {
	t.Run("autentica con el hash de la contraseña", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		usuarioRepo := mocks.NewMockUsuarioRepository(ctrl)
		svc := NewAuthService(usuarioRepo)

		usuarioRepo.EXPECT().
			Autenticar(gomock.Any(), "ana@hotel.test", HashPassword("secreto")).
			Return(&domain.Usuario{ID: 1, Email: "ana@hotel.test", Rol: domain.RolRecepcion}, nil)

		usuario, err := svc.Login(context.Background(), "ana@hotel.test", "secreto")
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if usuario.Rol != domain.RolRecepcion {
			t.Errorf("rol = %s", usuario.Rol)
		}
	})

	t.Run("rechaza credenciales vacías", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewAuthService(mocks.NewMockUsuarioRepository(ctrl))

		if _, err := svc.Login(context.Background(), "", "secreto"); !errors.Is(err, domain.ErrValidacion) {
			t.Fatalf("esperaba ErrValidacion, obtuve %v", err)
		}
	})

	t.Run("propaga credenciales inválidas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		usuarioRepo := mocks.NewMockUsuarioRepository(ctrl)
		svc := NewAuthService(usuarioRepo)

		usuarioRepo.EXPECT().Autenticar(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrNoAutorizado)

		if _, err := svc.Login(context.Background(), "ana@hotel.test", "mala"); !errors.Is(err, domain.ErrNoAutorizado) {
			t.Fatalf("esperaba ErrNoAutorizado, obtuve %v", err)
		}
	})
}

func TestRegistrar(t *testing.T) {
	t.Run("crea perfil y cuenta con el hash de la contraseña", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		usuarioRepo := mocks.NewMockUsuarioRepository(ctrl)
		svc := NewAuthService(usuarioRepo)

		cliente := &domain.Cliente{NombreCompleto: "Ana Pérez", Email: "ana@hotel.test"}
		usuarioRepo.EXPECT().
			Registrar(gomock.Any(), cliente, HashPassword("contraseña1")).
			Return(&domain.Usuario{ID: 3, Email: "ana@hotel.test", Rol: domain.RolCliente, ClienteID: ptr(9)}, nil)

		usuario, err := svc.Registrar(context.Background(), cliente, "contraseña1")
		if err != nil {
			t.Fatalf("Registrar: %v", err)
		}
		if usuario.Rol != domain.RolCliente || usuario.ClienteID == nil {
			t.Errorf("usuario = %+v", usuario)
		}
	})

	t.Run("rechaza email duplicado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		usuarioRepo := mocks.NewMockUsuarioRepository(ctrl)
		svc := NewAuthService(usuarioRepo)

		usuarioRepo.EXPECT().Registrar(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrConflicto)

		cliente := &domain.Cliente{NombreCompleto: "Ana Pérez", Email: "ana@hotel.test"}
		if _, err := svc.Registrar(context.Background(), cliente, "contraseña1"); !errors.Is(err, domain.ErrConflicto) {
			t.Fatalf("esperaba ErrConflicto, obtuve %v", err)
		}
	})

	t.Run("exige email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewAuthService(mocks.NewMockUsuarioRepository(ctrl))

		cliente := &domain.Cliente{NombreCompleto: "Ana Pérez"}
		if _, err := svc.Registrar(context.Background(), cliente, "contraseña1"); !errors.Is(err, domain.ErrValidacion) {
			t.Fatalf("esperaba ErrValidacion, obtuve %v", err)
		}
	})

	t.Run("exige contraseña de al menos 8 caracteres", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewAuthService(mocks.NewMockUsuarioRepository(ctrl))

		cliente := &domain.Cliente{NombreCompleto: "Ana Pérez", Email: "ana@hotel.test"}
		if _, err := svc.Registrar(context.Background(), cliente, "corta"); !errors.Is(err, domain.ErrValidacion) {
			t.Fatalf("esperaba ErrValidacion, obtuve %v", err)
		}
	})
}

func TestHashPassword(t *testing.T) {
	// SHA-256 en hexadecimal, estable entre ejecuciones.
	const esperado = "2bb80d537b1da3e38bd30361aa855686bde0eacd7162fef6a25fe97bf527a25b"
	if got := HashPassword("secret"); got != esperado {
		t.Errorf("HashPassword = %s", got)
	}
}
