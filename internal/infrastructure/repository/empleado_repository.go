package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lalavale064/gestion-hotelera/internal/domain"
)

type empleadoRepository struct {
	db *sql.DB
}

// NewEmpleadoRepository crea una nueva instancia del repositorio de empleados
func NewEmpleadoRepository(db *sql.DB) domain.EmpleadoRepository {
	return &empleadoRepository{db: db}
}

const empleadoSelect = `
	SELECT staff_id, full_name, position, COALESCE(area, ''), hired_at, active
	FROM staff
`

// GetEmpleadoByID obtiene un empleado por su id
func (r *empleadoRepository) GetEmpleadoByID(ctx context.Context, id int) (*domain.Empleado, error) {
	var e domain.Empleado
	err := r.db.QueryRowContext(ctx, empleadoSelect+` WHERE staff_id = $1`, id).
		Scan(&e.ID, &e.NombreCompleto, &e.Cargo, &e.Area, &e.FechaIngreso, &e.Activo)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("empleado %d: %w", id, domain.ErrNoEncontrado)
		}
		return nil, fmt.Errorf("error al obtener empleado: %w", err)
	}
	return &e, nil
}

// ListEmpleados devuelve un listado paginado con búsqueda por nombre, cargo o
// área
func (r *empleadoRepository) ListEmpleados(ctx context.Context, pagina, porPagina int, busqueda string) (*domain.Paginacion, error) {
	where := ""
	var params []interface{}
	if busqueda != "" {
		where = ` WHERE full_name ILIKE $1 OR position ILIKE $1 OR area ILIKE $1`
		params = append(params, "%"+busqueda+"%")
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM staff`+where, params...).Scan(&total); err != nil {
		return nil, fmt.Errorf("error al contar empleados: %w", err)
	}

	params = append(params, porPagina, (pagina-1)*porPagina)
	query := empleadoSelect + where + fmt.Sprintf(" ORDER BY full_name LIMIT $%d OFFSET $%d", len(params)-1, len(params))

	rows, err := r.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("error al listar empleados: %w", err)
	}
	defer rows.Close()

	empleados := make([]domain.Empleado, 0)
	for rows.Next() {
		var e domain.Empleado
		if err := rows.Scan(&e.ID, &e.NombreCompleto, &e.Cargo, &e.Area, &e.FechaIngreso, &e.Activo); err != nil {
			return nil, fmt.Errorf("error al escanear empleado: %w", err)
		}
		empleados = append(empleados, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar empleados: %w", err)
	}

	return domain.NuevaPaginacion(empleados, total, pagina, porPagina), nil
}

// CrearEmpleado inserta un empleado nuevo
func (r *empleadoRepository) CrearEmpleado(ctx context.Context, e *domain.Empleado) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO staff (full_name, position, area, hired_at, active)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5)
		RETURNING staff_id`,
		e.NombreCompleto, e.Cargo, e.Area, e.FechaIngreso, e.Activo,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("error al crear empleado: %w", err)
	}
	return nil
}

// ActualizarEmpleado actualiza un empleado existente
func (r *empleadoRepository) ActualizarEmpleado(ctx context.Context, e *domain.Empleado) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE staff
		SET full_name = $1, position = $2, area = NULLIF($3, ''), hired_at = $4, active = $5
		WHERE staff_id = $6`,
		e.NombreCompleto, e.Cargo, e.Area, e.FechaIngreso, e.Activo, e.ID,
	)
	if err != nil {
		return fmt.Errorf("error al actualizar empleado: %w", err)
	}
	filas, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar filas afectadas: %w", err)
	}
	if filas == 0 {
		return fmt.Errorf("empleado %d: %w", e.ID, domain.ErrNoEncontrado)
	}
	return nil
}

// EliminarEmpleado borra el empleado
func (r *empleadoRepository) EliminarEmpleado(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM staff WHERE staff_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error al eliminar empleado: %w", err)
	}
	filas, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar filas afectadas: %w", err)
	}
	if filas == 0 {
		return fmt.Errorf("empleado %d: %w", id, domain.ErrNoEncontrado)
	}
	return nil
}
