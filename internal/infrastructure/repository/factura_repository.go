package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/lalavale064/gestion-hotelera/internal/domain"
)

type facturaRepository struct {
	db *sql.DB
}

// NewFacturaRepository crea una nueva instancia del repositorio de facturas
func NewFacturaRepository(db *sql.DB) domain.FacturaRepository {
	return &facturaRepository{db: db}
}

// EmitirFactura captura el total de la reserva bajo bloqueo de fila, inserta
// la factura y pasa la reserva a facturada, todo en una transacción. El índice
// único sobre reservation_id respalda el chequeo de duplicados ante carreras.
func (r *facturaRepository) EmitirFactura(ctx context.Context, f *domain.Factura) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error al iniciar transacción: %w", err)
	}
	defer tx.Rollback()

	var (
		estado domain.EstadoReserva
		total  float64
	)
	err = tx.QueryRowContext(ctx, `
		SELECT
			status,
			room_charge + COALESCE((
				SELECT SUM(rs.quantity * rs.unit_price)
				FROM reservation_services rs
				WHERE rs.reservation_id = reservations.reservation_id
			), 0)
		FROM reservations
		WHERE reservation_id = $1
		FOR UPDATE`,
		f.ReservaID,
	).Scan(&estado, &total)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("reserva %d: %w", f.ReservaID, domain.ErrNoEncontrado)
		}
		return fmt.Errorf("error al bloquear reserva: %w", err)
	}

	if estado == domain.ReservaFacturada {
		return domain.ErrFacturaDuplicada
	}
	if estado != domain.ReservaCheckout {
		return fmt.Errorf("%w: estado %s", domain.ErrReservaNoFacturable, estado)
	}

	f.Total = total
	f.FechaEmision = time.Now()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO invoices (invoice_code, reservation_id, total, payment_method, issued_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING invoice_id`,
		f.Codigo, f.ReservaID, f.Total, f.Metodo, f.FechaEmision,
	).Scan(&f.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrFacturaDuplicada
		}
		return fmt.Errorf("error al emitir factura: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE reservations SET status = $1 WHERE reservation_id = $2`,
		domain.ReservaFacturada, f.ReservaID,
	); err != nil {
		return fmt.Errorf("error al marcar reserva como facturada: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error al confirmar transacción: %w", err)
	}
	return nil
}

const facturaSelect = `
	SELECT
		f.invoice_id,
		f.invoice_code,
		f.reservation_id,
		r.reservation_code,
		f.total,
		f.payment_method,
		f.issued_at
	FROM invoices f
	INNER JOIN reservations r ON r.reservation_id = f.reservation_id
`

// GetFacturaByID obtiene una factura por su id
func (r *facturaRepository) GetFacturaByID(ctx context.Context, id int) (*domain.Factura, error) {
	var f domain.Factura
	err := r.db.QueryRowContext(ctx, facturaSelect+` WHERE f.invoice_id = $1`, id).
		Scan(&f.ID, &f.Codigo, &f.ReservaID, &f.CodigoReserva, &f.Total, &f.Metodo, &f.FechaEmision)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("factura %d: %w", id, domain.ErrNoEncontrado)
		}
		return nil, fmt.Errorf("error al obtener factura: %w", err)
	}
	return &f, nil
}

// ListFacturas devuelve un listado paginado con búsqueda por código de
// factura o de reserva
func (r *facturaRepository) ListFacturas(ctx context.Context, pagina, porPagina int, busqueda string) (*domain.Paginacion, error) {
	where := ""
	var params []interface{}
	if busqueda != "" {
		where = ` WHERE f.invoice_code ILIKE $1 OR r.reservation_code ILIKE $1`
		params = append(params, "%"+busqueda+"%")
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM invoices f INNER JOIN reservations r ON r.reservation_id = f.reservation_id` + where
	if err := r.db.QueryRowContext(ctx, countQuery, params...).Scan(&total); err != nil {
		return nil, fmt.Errorf("error al contar facturas: %w", err)
	}

	params = append(params, porPagina, (pagina-1)*porPagina)
	query := facturaSelect + where + fmt.Sprintf(" ORDER BY f.issued_at DESC LIMIT $%d OFFSET $%d", len(params)-1, len(params))

	rows, err := r.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("error al listar facturas: %w", err)
	}
	defer rows.Close()

	facturas := make([]domain.Factura, 0)
	for rows.Next() {
		var f domain.Factura
		if err := rows.Scan(&f.ID, &f.Codigo, &f.ReservaID, &f.CodigoReserva, &f.Total, &f.Metodo, &f.FechaEmision); err != nil {
			return nil, fmt.Errorf("error al escanear factura: %w", err)
		}
		facturas = append(facturas, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar facturas: %w", err)
	}

	return domain.NuevaPaginacion(facturas, total, pagina, porPagina), nil
}
