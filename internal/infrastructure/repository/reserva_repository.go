package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lalavale064/gestion-hotelera/internal/domain"
)

type reservaRepository struct {
	db *sql.DB
}

// NewReservaRepository crea una nueva instancia del repositorio de reservas
func NewReservaRepository(db *sql.DB) domain.ReservaRepository {
	return &reservaRepository{db: db}
}

// columnas comunes de lectura de reservas, con el total derivado de las
// líneas vigentes en la misma consulta.
const reservaSelect = `
	SELECT
		r.reservation_id,
		r.reservation_code,
		r.client_id,
		r.room_id,
		r.guest_name,
		r.guest_email,
		r.guest_phone,
		r.checkin_date,
		r.checkout_date,
		r.room_charge,
		r.status,
		ro.room_num,
		ro.room_type,
		r.room_charge + COALESCE((
			SELECT SUM(rs.quantity * rs.unit_price)
			FROM reservation_services rs
			WHERE rs.reservation_id = r.reservation_id
		), 0) AS total
	FROM reservations r
	INNER JOIN rooms ro ON ro.room_id = r.room_id
`

func escanearReserva(row interface{ Scan(...interface{}) error }) (*domain.Reserva, error) {
	var (
		reserva    domain.Reserva
		clienteID  sql.NullInt64
		guestEmail sql.NullString
		guestPhone sql.NullString
	)
	err := row.Scan(
		&reserva.ID,
		&reserva.Codigo,
		&clienteID,
		&reserva.HabitacionID,
		&reserva.NombreHuesped,
		&guestEmail,
		&guestPhone,
		&reserva.FechaEntrada,
		&reserva.FechaSalida,
		&reserva.CargoHabitacion,
		&reserva.Estado,
		&reserva.NumeroHabitacion,
		&reserva.TipoHabitacion,
		&reserva.Total,
	)
	if err != nil {
		return nil, err
	}
	if clienteID.Valid {
		id := int(clienteID.Int64)
		reserva.ClienteID = &id
	}
	reserva.EmailHuesped = guestEmail.String
	reserva.FonoHuesped = guestPhone.String
	return &reserva, nil
}

// CrearReserva inserta una reserva verificando disponibilidad bajo bloqueo
// de la fila de la habitación, de modo que dos altas concurrentes sobre la
// misma habitación se serialicen.
func (r *reservaRepository) CrearReserva(ctx context.Context, reserva *domain.Reserva) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error al iniciar transacción: %w", err)
	}
	defer tx.Rollback()

	// Bloquear la habitación serializa los chequeos de solapamiento.
	var precio float64
	err = tx.QueryRowContext(ctx,
		`SELECT price FROM rooms WHERE room_id = $1 FOR UPDATE`,
		reserva.HabitacionID,
	).Scan(&precio)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("habitación %d: %w", reserva.HabitacionID, domain.ErrNoEncontrado)
		}
		return fmt.Errorf("error al bloquear habitación: %w", err)
	}

	// Intervalos semiabiertos: una salida que coincide con la entrada de
	// otra reserva no es conflicto.
	var ocupada bool
	err = tx.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM reservations
			WHERE room_id = $1
			  AND status <> 'cancelada'
			  AND NOT (checkout_date <= $2 OR checkin_date >= $3)
		)`,
		reserva.HabitacionID, reserva.FechaEntrada, reserva.FechaSalida,
	).Scan(&ocupada)
	if err != nil {
		return fmt.Errorf("error al verificar disponibilidad: %w", err)
	}
	if ocupada {
		return domain.ErrConflictoFechas
	}

	reserva.CargoHabitacion = precio * float64(domain.Noches(reserva.FechaEntrada, reserva.FechaSalida))
	reserva.Estado = domain.ReservaReservada
	reserva.Total = reserva.CargoHabitacion

	var clienteID sql.NullInt64
	if reserva.ClienteID != nil {
		clienteID = sql.NullInt64{Int64: int64(*reserva.ClienteID), Valid: true}
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO reservations (
			reservation_code,
			client_id,
			room_id,
			guest_name,
			guest_email,
			guest_phone,
			checkin_date,
			checkout_date,
			room_charge,
			status
		) VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7, $8, $9, $10)
		RETURNING reservation_id`,
		reserva.Codigo,
		clienteID,
		reserva.HabitacionID,
		reserva.NombreHuesped,
		reserva.EmailHuesped,
		reserva.FonoHuesped,
		reserva.FechaEntrada,
		reserva.FechaSalida,
		reserva.CargoHabitacion,
		reserva.Estado,
	).Scan(&reserva.ID)
	if err != nil {
		return fmt.Errorf("error al crear reserva: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error al confirmar transacción: %w", err)
	}
	return nil
}

// GetReservaByID obtiene una reserva con su total derivado y sus líneas
func (r *reservaRepository) GetReservaByID(ctx context.Context, id int) (*domain.Reserva, error) {
	row := r.db.QueryRowContext(ctx, reservaSelect+` WHERE r.reservation_id = $1`, id)
	reserva, err := escanearReserva(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("reserva %d: %w", id, domain.ErrNoEncontrado)
		}
		return nil, fmt.Errorf("error al obtener reserva: %w", err)
	}

	lineas, err := r.lineasDeReserva(ctx, id)
	if err != nil {
		return nil, err
	}
	reserva.Lineas = lineas
	return reserva, nil
}

func (r *reservaRepository) lineasDeReserva(ctx context.Context, reservaID int) ([]domain.LineaServicio, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			rs.reservation_service_id,
			rs.reservation_id,
			rs.service_id,
			s.name,
			rs.quantity,
			rs.unit_price,
			rs.service_date
		FROM reservation_services rs
		INNER JOIN services s ON s.service_id = rs.service_id
		WHERE rs.reservation_id = $1
		ORDER BY rs.service_date`,
		reservaID,
	)
	if err != nil {
		return nil, fmt.Errorf("error al obtener servicios de la reserva: %w", err)
	}
	defer rows.Close()

	var lineas []domain.LineaServicio
	for rows.Next() {
		var l domain.LineaServicio
		if err := rows.Scan(&l.ID, &l.ReservaID, &l.ServicioID, &l.NombreServicio, &l.Cantidad, &l.PrecioUnitario, &l.FechaServicio); err != nil {
			return nil, fmt.Errorf("error al escanear línea de servicio: %w", err)
		}
		lineas = append(lineas, l)
	}
	return lineas, rows.Err()
}

// ListReservas devuelve un listado paginado con búsqueda y filtro de estado
func (r *reservaRepository) ListReservas(ctx context.Context, filtro domain.FiltroReservas) (*domain.Paginacion, error) {
	var condiciones []string
	var params []interface{}

	if filtro.Busqueda != "" {
		params = append(params, "%"+filtro.Busqueda+"%")
		n := len(params)
		condiciones = append(condiciones, fmt.Sprintf(
			"(r.reservation_code ILIKE $%d OR r.guest_name ILIKE $%d OR CAST(ro.room_num AS TEXT) ILIKE $%d)", n, n, n))
	}
	if filtro.Estado != "" {
		params = append(params, filtro.Estado)
		condiciones = append(condiciones, fmt.Sprintf("r.status = $%d", len(params)))
	}

	where := ""
	if len(condiciones) > 0 {
		where = " WHERE " + strings.Join(condiciones, " AND ")
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM reservations r INNER JOIN rooms ro ON ro.room_id = r.room_id` + where
	if err := r.db.QueryRowContext(ctx, countQuery, params...).Scan(&total); err != nil {
		return nil, fmt.Errorf("error al contar reservas: %w", err)
	}

	params = append(params, filtro.PorPagina, (filtro.Pagina-1)*filtro.PorPagina)
	query := reservaSelect + where + fmt.Sprintf(" ORDER BY r.checkin_date DESC LIMIT $%d OFFSET $%d", len(params)-1, len(params))

	rows, err := r.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("error al listar reservas: %w", err)
	}
	defer rows.Close()

	reservas := make([]domain.Reserva, 0)
	for rows.Next() {
		reserva, err := escanearReserva(rows)
		if err != nil {
			return nil, fmt.Errorf("error al escanear reserva: %w", err)
		}
		reservas = append(reservas, *reserva)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar reservas: %w", err)
	}

	return domain.NuevaPaginacion(reservas, total, filtro.Pagina, filtro.PorPagina), nil
}

// GetReservasCliente obtiene todas las reservas de un cliente
func (r *reservaRepository) GetReservasCliente(ctx context.Context, clienteID int) ([]domain.Reserva, error) {
	return r.consultarReservas(ctx, ` WHERE r.client_id = $1 ORDER BY r.checkin_date DESC`, clienteID)
}

// Transicionar cambia el estado bajo bloqueo de fila y sincroniza el estado
// de la habitación en la misma transacción
func (r *reservaRepository) Transicionar(ctx context.Context, id int, hacia domain.EstadoReserva, desde *domain.EstadoReserva) (*domain.Reserva, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error al iniciar transacción: %w", err)
	}
	defer tx.Rollback()

	var (
		actual       domain.EstadoReserva
		habitacionID int
	)
	err = tx.QueryRowContext(ctx,
		`SELECT status, room_id FROM reservations WHERE reservation_id = $1 FOR UPDATE`,
		id,
	).Scan(&actual, &habitacionID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("reserva %d: %w", id, domain.ErrNoEncontrado)
		}
		return nil, fmt.Errorf("error al bloquear reserva: %w", err)
	}

	if desde != nil && actual != *desde {
		return nil, fmt.Errorf("%w: la reserva ya no está en %s", domain.ErrTransicionInvalida, *desde)
	}
	if !domain.TransicionPermitida(actual, hacia) {
		return nil, fmt.Errorf("%w: de %s a %s", domain.ErrTransicionInvalida, actual, hacia)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE reservations SET status = $1 WHERE reservation_id = $2`,
		hacia, id,
	); err != nil {
		return nil, fmt.Errorf("error al actualizar estado de reserva: %w", err)
	}

	// Sincronizar la caché de ocupación de la habitación.
	var estadoHabitacion domain.EstadoHabitacion
	switch {
	case hacia == domain.ReservaCheckin:
		estadoHabitacion = domain.HabitacionOcupada
	case hacia == domain.ReservaCheckout:
		estadoHabitacion = domain.HabitacionDisponible
	case hacia == domain.ReservaCancelada && actual == domain.ReservaCheckin:
		estadoHabitacion = domain.HabitacionDisponible
	}
	if estadoHabitacion != "" {
		if _, err := tx.ExecContext(ctx,
			`UPDATE rooms SET status = $1 WHERE room_id = $2`,
			estadoHabitacion, habitacionID,
		); err != nil {
			return nil, fmt.Errorf("error al actualizar estado de habitación: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("error al confirmar transacción: %w", err)
	}

	return r.GetReservaByID(ctx, id)
}

// EliminarReserva borra la reserva junto con sus líneas y facturas
func (r *reservaRepository) EliminarReserva(ctx context.Context, id int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error al iniciar transacción: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM reservation_services WHERE reservation_id = $1`, id); err != nil {
		return fmt.Errorf("error al eliminar servicios de la reserva: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM invoices WHERE reservation_id = $1`, id); err != nil {
		return fmt.Errorf("error al eliminar facturas de la reserva: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM reservations WHERE reservation_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error al eliminar reserva: %w", err)
	}
	filas, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar filas afectadas: %w", err)
	}
	if filas == 0 {
		return fmt.Errorf("reserva %d: %w", id, domain.ErrNoEncontrado)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error al confirmar transacción: %w", err)
	}
	return nil
}

// GetOperacionesDia lista reservas con entrada o salida en la fecha dada
func (r *reservaRepository) GetOperacionesDia(ctx context.Context, dia time.Time) ([]domain.Reserva, error) {
	return r.consultarReservas(ctx,
		` WHERE r.checkin_date::date = $1::date OR r.checkout_date::date = $1::date ORDER BY r.checkin_date`,
		dia,
	)
}

// GetHuespedesEnCasa lista reservas en estado checkin
func (r *reservaRepository) GetHuespedesEnCasa(ctx context.Context, busqueda string) ([]domain.Reserva, error) {
	if busqueda == "" {
		return r.consultarReservas(ctx, ` WHERE r.status = 'checkin' ORDER BY ro.room_num`)
	}
	return r.consultarReservas(ctx, `
		WHERE r.status = 'checkin'
		  AND (r.guest_name ILIKE $1 OR r.reservation_code ILIKE $1 OR CAST(ro.room_num AS TEXT) ILIKE $1)
		ORDER BY ro.room_num`,
		"%"+busqueda+"%",
	)
}

// GetFacturables lista reservas en estado checkout, listas para facturar
func (r *reservaRepository) GetFacturables(ctx context.Context) ([]domain.Reserva, error) {
	return r.consultarReservas(ctx, ` WHERE r.status = 'checkout' ORDER BY r.checkin_date DESC`)
}

func (r *reservaRepository) consultarReservas(ctx context.Context, sufijo string, params ...interface{}) ([]domain.Reserva, error) {
	rows, err := r.db.QueryContext(ctx, reservaSelect+sufijo, params...)
	if err != nil {
		return nil, fmt.Errorf("error al consultar reservas: %w", err)
	}
	defer rows.Close()

	reservas := make([]domain.Reserva, 0)
	for rows.Next() {
		reserva, err := escanearReserva(rows)
		if err != nil {
			return nil, fmt.Errorf("error al escanear reserva: %w", err)
		}
		reservas = append(reservas, *reserva)
	}
	return reservas, rows.Err()
}
