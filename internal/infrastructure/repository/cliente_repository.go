package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lalavale064/gestion-hotelera/internal/domain"
)

type clienteRepository struct {
	db *sql.DB
}

// NewClienteRepository crea una nueva instancia del repositorio de clientes
func NewClienteRepository(db *sql.DB) domain.ClienteRepository {
	return &clienteRepository{db: db}
}

const clienteSelect = `
	SELECT client_id, full_name, COALESCE(email, ''), COALESCE(phone, ''), COALESCE(address, '')
	FROM clients
`

// GetClienteByID obtiene un cliente por su id
func (r *clienteRepository) GetClienteByID(ctx context.Context, id int) (*domain.Cliente, error) {
	var c domain.Cliente
	err := r.db.QueryRowContext(ctx, clienteSelect+` WHERE client_id = $1`, id).
		Scan(&c.ID, &c.NombreCompleto, &c.Email, &c.Telefono, &c.Direccion)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("cliente %d: %w", id, domain.ErrNoEncontrado)
		}
		return nil, fmt.Errorf("error al obtener cliente: %w", err)
	}
	return &c, nil
}

// ListClientes devuelve un listado paginado con búsqueda por nombre, email o
// teléfono
func (r *clienteRepository) ListClientes(ctx context.Context, pagina, porPagina int, busqueda string) (*domain.Paginacion, error) {
	where := ""
	var params []interface{}
	if busqueda != "" {
		where = ` WHERE full_name ILIKE $1 OR email ILIKE $1 OR phone ILIKE $1`
		params = append(params, "%"+busqueda+"%")
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM clients`+where, params...).Scan(&total); err != nil {
		return nil, fmt.Errorf("error al contar clientes: %w", err)
	}

	params = append(params, porPagina, (pagina-1)*porPagina)
	query := clienteSelect + where + fmt.Sprintf(" ORDER BY full_name LIMIT $%d OFFSET $%d", len(params)-1, len(params))

	rows, err := r.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("error al listar clientes: %w", err)
	}
	defer rows.Close()

	clientes := make([]domain.Cliente, 0)
	for rows.Next() {
		var c domain.Cliente
		if err := rows.Scan(&c.ID, &c.NombreCompleto, &c.Email, &c.Telefono, &c.Direccion); err != nil {
			return nil, fmt.Errorf("error al escanear cliente: %w", err)
		}
		clientes = append(clientes, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar clientes: %w", err)
	}

	return domain.NuevaPaginacion(clientes, total, pagina, porPagina), nil
}

// CrearCliente inserta un cliente nuevo
func (r *clienteRepository) CrearCliente(ctx context.Context, c *domain.Cliente) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO clients (full_name, email, phone, address)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''))
		RETURNING client_id`,
		c.NombreCompleto, c.Email, c.Telefono, c.Direccion,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("error al crear cliente: %w", err)
	}
	return nil
}

// ActualizarCliente actualiza un cliente existente
func (r *clienteRepository) ActualizarCliente(ctx context.Context, c *domain.Cliente) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE clients
		SET full_name = $1, email = NULLIF($2, ''), phone = NULLIF($3, ''), address = NULLIF($4, '')
		WHERE client_id = $5`,
		c.NombreCompleto, c.Email, c.Telefono, c.Direccion, c.ID,
	)
	if err != nil {
		return fmt.Errorf("error al actualizar cliente: %w", err)
	}
	filas, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar filas afectadas: %w", err)
	}
	if filas == 0 {
		return fmt.Errorf("cliente %d: %w", c.ID, domain.ErrNoEncontrado)
	}
	return nil
}

// EliminarCliente borra el cliente y todo su historial en una transacción
func (r *clienteRepository) EliminarCliente(ctx context.Context, id int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error al iniciar transacción: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM reservation_services
		WHERE reservation_id IN (SELECT reservation_id FROM reservations WHERE client_id = $1)`,
		id,
	); err != nil {
		return fmt.Errorf("error al eliminar consumos del cliente: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM invoices
		WHERE reservation_id IN (SELECT reservation_id FROM reservations WHERE client_id = $1)`,
		id,
	); err != nil {
		return fmt.Errorf("error al eliminar facturas del cliente: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM reservations WHERE client_id = $1`, id); err != nil {
		return fmt.Errorf("error al eliminar reservas del cliente: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM users WHERE client_id = $1`, id); err != nil {
		return fmt.Errorf("error al eliminar cuenta del cliente: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM clients WHERE client_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error al eliminar cliente: %w", err)
	}
	filas, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar filas afectadas: %w", err)
	}
	if filas == 0 {
		return fmt.Errorf("cliente %d: %w", id, domain.ErrNoEncontrado)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error al confirmar transacción: %w", err)
	}
	return nil
}
