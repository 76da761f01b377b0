package domain

import "context"

// Usuario es una cuenta de acceso al sistema. La contraseña se guarda como
// hash SHA-256 en hexadecimal; la verificación real de sesiones corresponde
// a la capa externa de autenticación.
type Usuario struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	Rol       Rol    `json:"rol"`
	ClienteID *int   `json:"clienteId,omitempty"`
}

// UsuarioRepository define las operaciones de datos de cuentas.
type UsuarioRepository interface {
	// Autenticar busca la cuenta por email y hash de contraseña. Si el rol es
	// cliente resuelve además su ClienteID. Falla con ErrNoAutorizado cuando
	// las credenciales no coinciden.
	Autenticar(ctx context.Context, email, hashPassword string) (*Usuario, error)
	// Registrar crea el perfil de cliente y su cuenta de acceso con rol
	// cliente en una sola transacción. Falla con ErrConflicto si el email ya
	// tiene cuenta.
	Registrar(ctx context.Context, cliente *Cliente, hashPassword string) (*Usuario, error)
}
