package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/lalavale064/gestion-hotelera/internal/domain"
)

type usuarioRepository struct {
	db *sql.DB
}

// NewUsuarioRepository crea una nueva instancia del repositorio de usuarios
func NewUsuarioRepository(db *sql.DB) domain.UsuarioRepository {
	return &usuarioRepository{db: db}
}

// Autenticar busca la cuenta por email y hash de contraseña
func (r *usuarioRepository) Autenticar(ctx context.Context, email, hashPassword string) (*domain.Usuario, error) {
	var (
		u         domain.Usuario
		clienteID sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT user_id, email, role, client_id
		FROM users
		WHERE email = $1 AND password_hash = $2`,
		email, hashPassword,
	).Scan(&u.ID, &u.Email, &u.Rol, &clienteID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNoAutorizado
		}
		return nil, fmt.Errorf("error al autenticar usuario: %w", err)
	}
	if clienteID.Valid {
		id := int(clienteID.Int64)
		u.ClienteID = &id
	}
	return &u, nil
}

// Registrar crea el perfil de cliente y su cuenta de acceso en una sola
// transacción
func (r *usuarioRepository) Registrar(ctx context.Context, cliente *domain.Cliente, hashPassword string) (*domain.Usuario, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error al iniciar transacción: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO clients (full_name, email, phone, address)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''))
		RETURNING client_id`,
		cliente.NombreCompleto, cliente.Email, cliente.Telefono, cliente.Direccion,
	).Scan(&cliente.ID)
	if err != nil {
		return nil, fmt.Errorf("error al crear cliente: %w", err)
	}

	usuario := &domain.Usuario{
		Email:     cliente.Email,
		Rol:       domain.RolCliente,
		ClienteID: &cliente.ID,
	}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO users (email, password_hash, role, client_id)
		VALUES ($1, $2, $3, $4)
		RETURNING user_id`,
		usuario.Email, hashPassword, usuario.Rol, cliente.ID,
	).Scan(&usuario.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, fmt.Errorf("%w: el email %s ya tiene cuenta", domain.ErrConflicto, usuario.Email)
		}
		return nil, fmt.Errorf("error al crear cuenta: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("error al confirmar transacción: %w", err)
	}
	return usuario, nil
}
