package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/lalavale064/gestion-hotelera/internal/domain"
)

type servicioRepository struct {
	db *sql.DB
}

// NewServicioRepository crea una nueva instancia del repositorio de servicios
func NewServicioRepository(db *sql.DB) domain.ServicioRepository {
	return &servicioRepository{db: db}
}

const servicioSelect = `
	SELECT service_id, service_code, name, COALESCE(description, ''), price, status
	FROM services
`

// GetServicioByID obtiene un servicio por su id
func (r *servicioRepository) GetServicioByID(ctx context.Context, id int) (*domain.Servicio, error) {
	var s domain.Servicio
	err := r.db.QueryRowContext(ctx, servicioSelect+` WHERE service_id = $1`, id).
		Scan(&s.ID, &s.Codigo, &s.Nombre, &s.Descripcion, &s.Precio, &s.Estado)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("servicio %d: %w", id, domain.ErrNoEncontrado)
		}
		return nil, fmt.Errorf("error al obtener servicio: %w", err)
	}
	return &s, nil
}

// ListServicios devuelve un listado paginado con búsqueda y filtro de estado
func (r *servicioRepository) ListServicios(ctx context.Context, pagina, porPagina int, busqueda string, estado domain.EstadoServicio) (*domain.Paginacion, error) {
	var condiciones []string
	var params []interface{}

	if busqueda != "" {
		params = append(params, "%"+busqueda+"%")
		n := len(params)
		condiciones = append(condiciones, fmt.Sprintf("(name ILIKE $%d OR service_code ILIKE $%d)", n, n))
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
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM services`+where, params...).Scan(&total); err != nil {
		return nil, fmt.Errorf("error al contar servicios: %w", err)
	}

	params = append(params, porPagina, (pagina-1)*porPagina)
	query := servicioSelect + where + fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", len(params)-1, len(params))

	rows, err := r.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("error al listar servicios: %w", err)
	}
	defer rows.Close()

	servicios := make([]domain.Servicio, 0)
	for rows.Next() {
		var s domain.Servicio
		if err := rows.Scan(&s.ID, &s.Codigo, &s.Nombre, &s.Descripcion, &s.Precio, &s.Estado); err != nil {
			return nil, fmt.Errorf("error al escanear servicio: %w", err)
		}
		servicios = append(servicios, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar servicios: %w", err)
	}

	return domain.NuevaPaginacion(servicios, total, pagina, porPagina), nil
}

// CrearServicio inserta un servicio en el catálogo
func (r *servicioRepository) CrearServicio(ctx context.Context, s *domain.Servicio) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO services (service_code, name, description, price, status)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5)
		RETURNING service_id`,
		s.Codigo, s.Nombre, s.Descripcion, s.Precio, s.Estado,
	).Scan(&s.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fmt.Errorf("%w: ya existe el servicio con código %s", domain.ErrConflicto, s.Codigo)
		}
		return fmt.Errorf("error al crear servicio: %w", err)
	}
	return nil
}

// ActualizarServicio actualiza un servicio existente
func (r *servicioRepository) ActualizarServicio(ctx context.Context, s *domain.Servicio) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE services
		SET name = $1, description = NULLIF($2, ''), price = $3, status = $4
		WHERE service_id = $5`,
		s.Nombre, s.Descripcion, s.Precio, s.Estado, s.ID,
	)
	if err != nil {
		return fmt.Errorf("error al actualizar servicio: %w", err)
	}
	filas, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar filas afectadas: %w", err)
	}
	if filas == 0 {
		return fmt.Errorf("servicio %d: %w", s.ID, domain.ErrNoEncontrado)
	}
	return nil
}

// EliminarServicio borra un servicio sin consumos asociados
func (r *servicioRepository) EliminarServicio(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE service_id = $1`, id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return fmt.Errorf("%w: el servicio tiene consumos registrados", domain.ErrConflicto)
		}
		return fmt.Errorf("error al eliminar servicio: %w", err)
	}
	filas, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar filas afectadas: %w", err)
	}
	if filas == 0 {
		return fmt.Errorf("servicio %d: %w", id, domain.ErrNoEncontrado)
	}
	return nil
}
