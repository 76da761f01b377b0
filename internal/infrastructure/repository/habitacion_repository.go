package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/lalavale064/gestion-hotelera/internal/domain"
)

type habitacionRepository struct {
	db *sql.DB
}

// NewHabitacionRepository crea una nueva instancia del repositorio de habitaciones
func NewHabitacionRepository(db *sql.DB) domain.HabitacionRepository {
	return &habitacionRepository{db: db}
}

const habitacionSelect = `
	SELECT room_id, room_num, room_type, capacity, price, status
	FROM rooms
`

// GetHabitacionByID obtiene una habitación por su id
func (r *habitacionRepository) GetHabitacionByID(ctx context.Context, id int) (*domain.Habitacion, error) {
	var h domain.Habitacion
	err := r.db.QueryRowContext(ctx, habitacionSelect+` WHERE room_id = $1`, id).
		Scan(&h.ID, &h.Numero, &h.Tipo, &h.Capacidad, &h.Precio, &h.Estado)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("habitación %d: %w", id, domain.ErrNoEncontrado)
		}
		return nil, fmt.Errorf("error al obtener habitación: %w", err)
	}
	return &h, nil
}

// ListHabitaciones devuelve un listado paginado con búsqueda y filtro de estado
func (r *habitacionRepository) ListHabitaciones(ctx context.Context, pagina, porPagina int, busqueda string, estado domain.EstadoHabitacion) (*domain.Paginacion, error) {
	var condiciones []string
	var params []interface{}

	if busqueda != "" {
		params = append(params, "%"+busqueda+"%")
		n := len(params)
		condiciones = append(condiciones, fmt.Sprintf(
			"(CAST(room_num AS TEXT) ILIKE $%d OR room_type ILIKE $%d)", n, n))
	}
	if estado != "" {
		params = append(params, estado)
		condiciones = append(condiciones, fmt.Sprintf("status = $%d", len(params)))
	}

	where := ""
	if len(condiciones) > 0 {
		where = " WHERE " + strings.Join(condiciones, " AND ")
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rooms`+where, params...).Scan(&total); err != nil {
		return nil, fmt.Errorf("error al contar habitaciones: %w", err)
	}

	params = append(params, porPagina, (pagina-1)*porPagina)
	query := habitacionSelect + where + fmt.Sprintf(" ORDER BY room_num LIMIT $%d OFFSET $%d", len(params)-1, len(params))

	habitaciones, err := r.consultarHabitaciones(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	return domain.NuevaPaginacion(habitaciones, total, pagina, porPagina), nil
}

// GetHabitacionesDisponibles devuelve las habitaciones libres para el rango
// pedido. La disponibilidad por fechas se calcula contra las reservas no
// canceladas; el estado mantenimiento excluye siempre.
func (r *habitacionRepository) GetHabitacionesDisponibles(ctx context.Context, entrada, salida time.Time) ([]domain.Habitacion, error) {
	return r.consultarHabitaciones(ctx, habitacionSelect+`
		WHERE status <> 'mantenimiento'
		  AND NOT EXISTS (
			SELECT 1
			FROM reservations r
			WHERE r.room_id = rooms.room_id
			  AND r.status <> 'cancelada'
			  AND NOT (r.checkout_date <= $1 OR r.checkin_date >= $2)
		  )
		ORDER BY room_num`,
		entrada, salida,
	)
}

// CrearHabitacion inserta una habitación nueva
func (r *habitacionRepository) CrearHabitacion(ctx context.Context, h *domain.Habitacion) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO rooms (room_num, room_type, capacity, price, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING room_id`,
		h.Numero, h.Tipo, h.Capacidad, h.Precio, h.Estado,
	).Scan(&h.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fmt.Errorf("%w: ya existe la habitación %d", domain.ErrConflicto, h.Numero)
		}
		return fmt.Errorf("error al crear habitación: %w", err)
	}
	return nil
}

// ActualizarHabitacion actualiza los campos editables de la habitación
func (r *habitacionRepository) ActualizarHabitacion(ctx context.Context, h *domain.Habitacion) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE rooms
		SET room_num = $1, room_type = $2, capacity = $3, price = $4, status = $5
		WHERE room_id = $6`,
		h.Numero, h.Tipo, h.Capacidad, h.Precio, h.Estado, h.ID,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fmt.Errorf("%w: ya existe la habitación %d", domain.ErrConflicto, h.Numero)
		}
		return fmt.Errorf("error al actualizar habitación: %w", err)
	}
	filas, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar filas afectadas: %w", err)
	}
	if filas == 0 {
		return fmt.Errorf("habitación %d: %w", h.ID, domain.ErrNoEncontrado)
	}
	return nil
}

// EliminarHabitacion borra la habitación si no tiene reservas asociadas
func (r *habitacionRepository) EliminarHabitacion(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE room_id = $1`, id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return fmt.Errorf("%w: la habitación tiene reservas asociadas", domain.ErrConflicto)
		}
		return fmt.Errorf("error al eliminar habitación: %w", err)
	}
	filas, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar filas afectadas: %w", err)
	}
	if filas == 0 {
		return fmt.Errorf("habitación %d: %w", id, domain.ErrNoEncontrado)
	}
	return nil
}

func (r *habitacionRepository) consultarHabitaciones(ctx context.Context, query string, params ...interface{}) ([]domain.Habitacion, error) {
	rows, err := r.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("error al consultar habitaciones: %w", err)
	}
	defer rows.Close()

	habitaciones := make([]domain.Habitacion, 0)
	for rows.Next() {
		var h domain.Habitacion
		if err := rows.Scan(&h.ID, &h.Numero, &h.Tipo, &h.Capacidad, &h.Precio, &h.Estado); err != nil {
			return nil, fmt.Errorf("error al escanear habitación: %w", err)
		}
		habitaciones = append(habitaciones, h)
	}
	return habitaciones, rows.Err()
}
