package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lalavale064/gestion-hotelera/internal/domain"
)

type lineaServicioRepository struct {
	db *sql.DB
}

// NewLineaServicioRepository crea una nueva instancia del repositorio de líneas de servicio
func NewLineaServicioRepository(db *sql.DB) domain.LineaServicioRepository {
	return &lineaServicioRepository{db: db}
}

const lineaSelect = `
	SELECT
		rs.reservation_service_id,
		rs.reservation_id,
		rs.service_id,
		s.name,
		r.reservation_code,
		rs.quantity,
		rs.unit_price,
		rs.service_date
	FROM reservation_services rs
	INNER JOIN services s ON s.service_id = rs.service_id
	INNER JOIN reservations r ON r.reservation_id = rs.reservation_id
`

func escanearLinea(row interface{ Scan(...interface{}) error }) (*domain.LineaServicio, error) {
	var l domain.LineaServicio
	err := row.Scan(&l.ID, &l.ReservaID, &l.ServicioID, &l.NombreServicio, &l.CodigoReserva, &l.Cantidad, &l.PrecioUnitario, &l.FechaServicio)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// bloquearReservaActiva toma el bloqueo de fila de la reserva y valida que
// admita cargos. Toda mutación de líneas pasa por aquí.
func bloquearReservaActiva(ctx context.Context, tx *sql.Tx, reservaID int) (entrada, salida time.Time, err error) {
	var estado domain.EstadoReserva
	err = tx.QueryRowContext(ctx,
		`SELECT status, checkin_date, checkout_date FROM reservations WHERE reservation_id = $1 FOR UPDATE`,
		reservaID,
	).Scan(&estado, &entrada, &salida)
	if err != nil {
		if err == sql.ErrNoRows {
			return entrada, salida, fmt.Errorf("reserva %d: %w", reservaID, domain.ErrNoEncontrado)
		}
		return entrada, salida, fmt.Errorf("error al bloquear reserva: %w", err)
	}
	if !estado.EsActiva() {
		return entrada, salida, fmt.Errorf("%w: estado %s", domain.ErrReservaNoActiva, estado)
	}
	return entrada, salida, nil
}

// AgregarLinea agrega un consumo de servicio a una reserva activa, congelando
// el precio unitario vigente del servicio
func (r *lineaServicioRepository) AgregarLinea(ctx context.Context, reservaID, servicioID, cantidad int, fecha time.Time) (*domain.LineaServicio, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error al iniciar transacción: %w", err)
	}
	defer tx.Rollback()

	entrada, salida, err := bloquearReservaActiva(ctx, tx, reservaID)
	if err != nil {
		return nil, err
	}
	if !domain.FechaEnEstadia(fecha, entrada, salida) {
		return nil, fmt.Errorf("%w: %s", domain.ErrFechaFueraDeEstadia, fecha.Format("2006-01-02"))
	}

	var (
		precio float64
		estado domain.EstadoServicio
		nombre string
	)
	err = tx.QueryRowContext(ctx,
		`SELECT price, status, name FROM services WHERE service_id = $1`,
		servicioID,
	).Scan(&precio, &estado, &nombre)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("servicio %d: %w", servicioID, domain.ErrNoEncontrado)
		}
		return nil, fmt.Errorf("error al obtener servicio: %w", err)
	}
	if estado != domain.ServicioActivo {
		return nil, fmt.Errorf("%w: el servicio %s no está activo", domain.ErrValidacion, nombre)
	}

	linea := &domain.LineaServicio{
		ReservaID:      reservaID,
		ServicioID:     servicioID,
		NombreServicio: nombre,
		Cantidad:       cantidad,
		PrecioUnitario: precio,
		FechaServicio:  fecha,
	}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO reservation_services (reservation_id, service_id, quantity, unit_price, service_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING reservation_service_id`,
		reservaID, servicioID, cantidad, precio, fecha,
	).Scan(&linea.ID)
	if err != nil {
		return nil, fmt.Errorf("error al agregar servicio a la reserva: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("error al confirmar transacción: %w", err)
	}
	return linea, nil
}

// ActualizarLinea modifica cantidad y/o fecha de una línea existente. El
// precio unitario congelado no se toca.
func (r *lineaServicioRepository) ActualizarLinea(ctx context.Context, lineaID int, cantidad *int, fecha *time.Time) (*domain.LineaServicio, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error al iniciar transacción: %w", err)
	}
	defer tx.Rollback()

	var reservaID int
	err = tx.QueryRowContext(ctx,
		`SELECT reservation_id FROM reservation_services WHERE reservation_service_id = $1`,
		lineaID,
	).Scan(&reservaID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("línea de servicio %d: %w", lineaID, domain.ErrNoEncontrado)
		}
		return nil, fmt.Errorf("error al obtener línea de servicio: %w", err)
	}

	entrada, salida, err := bloquearReservaActiva(ctx, tx, reservaID)
	if err != nil {
		return nil, err
	}

	if cantidad != nil {
		if _, err := tx.ExecContext(ctx,
			`UPDATE reservation_services SET quantity = $1 WHERE reservation_service_id = $2`,
			*cantidad, lineaID,
		); err != nil {
			return nil, fmt.Errorf("error al actualizar cantidad: %w", err)
		}
	}
	if fecha != nil {
		if !domain.FechaEnEstadia(*fecha, entrada, salida) {
			return nil, fmt.Errorf("%w: %s", domain.ErrFechaFueraDeEstadia, fecha.Format("2006-01-02"))
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE reservation_services SET service_date = $1 WHERE reservation_service_id = $2`,
			*fecha, lineaID,
		); err != nil {
			return nil, fmt.Errorf("error al actualizar fecha del servicio: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("error al confirmar transacción: %w", err)
	}
	return r.GetLineaByID(ctx, lineaID)
}

// EliminarLinea quita una línea de una reserva activa
func (r *lineaServicioRepository) EliminarLinea(ctx context.Context, lineaID int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error al iniciar transacción: %w", err)
	}
	defer tx.Rollback()

	var reservaID int
	err = tx.QueryRowContext(ctx,
		`SELECT reservation_id FROM reservation_services WHERE reservation_service_id = $1`,
		lineaID,
	).Scan(&reservaID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("línea de servicio %d: %w", lineaID, domain.ErrNoEncontrado)
		}
		return fmt.Errorf("error al obtener línea de servicio: %w", err)
	}

	if _, _, err := bloquearReservaActiva(ctx, tx, reservaID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM reservation_services WHERE reservation_service_id = $1`, lineaID,
	); err != nil {
		return fmt.Errorf("error al eliminar línea de servicio: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error al confirmar transacción: %w", err)
	}
	return nil
}

// GetLineaByID obtiene una línea de servicio por su id
func (r *lineaServicioRepository) GetLineaByID(ctx context.Context, lineaID int) (*domain.LineaServicio, error) {
	linea, err := escanearLinea(r.db.QueryRowContext(ctx, lineaSelect+` WHERE rs.reservation_service_id = $1`, lineaID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("línea de servicio %d: %w", lineaID, domain.ErrNoEncontrado)
		}
		return nil, fmt.Errorf("error al obtener línea de servicio: %w", err)
	}
	return linea, nil
}

// ListLineas devuelve un listado paginado con búsqueda por servicio o código
// de reserva
func (r *lineaServicioRepository) ListLineas(ctx context.Context, pagina, porPagina int, busqueda string) (*domain.Paginacion, error) {
	where := ""
	var params []interface{}
	if busqueda != "" {
		where = ` WHERE s.name ILIKE $1 OR r.reservation_code ILIKE $1`
		params = append(params, "%"+busqueda+"%")
	}

	var total int
	countQuery := `
		SELECT COUNT(*)
		FROM reservation_services rs
		INNER JOIN services s ON s.service_id = rs.service_id
		INNER JOIN reservations r ON r.reservation_id = rs.reservation_id` + where
	if err := r.db.QueryRowContext(ctx, countQuery, params...).Scan(&total); err != nil {
		return nil, fmt.Errorf("error al contar líneas de servicio: %w", err)
	}

	params = append(params, porPagina, (pagina-1)*porPagina)
	query := lineaSelect + where + fmt.Sprintf(" ORDER BY rs.service_date DESC LIMIT $%d OFFSET $%d", len(params)-1, len(params))

	lineas, err := r.consultarLineas(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	return domain.NuevaPaginacion(lineas, total, pagina, porPagina), nil
}

// GetLineasCliente lista los consumos de servicios en reservas de un cliente
func (r *lineaServicioRepository) GetLineasCliente(ctx context.Context, clienteID int) ([]domain.LineaServicio, error) {
	return r.consultarLineas(ctx, lineaSelect+` WHERE r.client_id = $1 ORDER BY rs.service_date DESC`, clienteID)
}

func (r *lineaServicioRepository) consultarLineas(ctx context.Context, query string, params ...interface{}) ([]domain.LineaServicio, error) {
	rows, err := r.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("error al consultar líneas de servicio: %w", err)
	}
	defer rows.Close()

	lineas := make([]domain.LineaServicio, 0)
	for rows.Next() {
		linea, err := escanearLinea(rows)
		if err != nil {
			return nil, fmt.Errorf("error al escanear línea de servicio: %w", err)
		}
		lineas = append(lineas, *linea)
	}
	return lineas, rows.Err()
}
