package application

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/lalavale064/gestion-hotelera/internal/domain"
)

type AuthService struct {
	usuarioRepo domain.UsuarioRepository
}

// NewAuthService crea una nueva instancia del servicio de autenticación
func NewAuthService(usuarioRepo domain.UsuarioRepository) *AuthService {
	return &AuthService{usuarioRepo: usuarioRepo}
}

// Login valida credenciales y devuelve la cuenta con su rol. La gestión de
// sesiones y tokens corre por cuenta de la capa externa de autenticación.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Usuario, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email y contraseña son requeridos", domain.ErrValidacion)
	}
	return s.usuarioRepo.Autenticar(ctx, email, HashPassword(password))
}

// Registrar da de alta el perfil de cliente junto con su cuenta de acceso.
// El email, opcional en clientes creados por recepción, aquí es obligatorio
// porque identifica la cuenta.
func (s *AuthService) Registrar(ctx context.Context, cliente *domain.Cliente, password string) (*domain.Usuario, error) {
	if cliente.NombreCompleto == "" {
		return nil, fmt.Errorf("%w: el nombre completo es requerido", domain.ErrValidacion)
	}
	if cliente.Email == "" {
		return nil, fmt.Errorf("%w: el email es requerido", domain.ErrValidacion)
	}
	if err := validarEmail(cliente.Email); err != nil {
		return nil, err
	}
	if err := validarTelefono(cliente.Telefono); err != nil {
		return nil, err
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: la contraseña debe tener al menos 8 caracteres", domain.ErrValidacion)
	}
	return s.usuarioRepo.Registrar(ctx, cliente, HashPassword(password))
}

// HashPassword devuelve el hash SHA-256 en hexadecimal de la contraseña.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
