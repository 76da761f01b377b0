package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lalavale064/gestion-hotelera/internal/domain"
)

type reporteRepository struct {
	db *sql.DB
}

// NewReporteRepository crea una nueva instancia del repositorio de reportes
func NewReporteRepository(db *sql.DB) domain.ReporteRepository {
	return &reporteRepository{db: db}
}

// GetResumenDashboard agrega los indicadores del panel en una sola consulta
func (r *reporteRepository) GetResumenDashboard(ctx context.Context) (*domain.ResumenDashboard, error) {
	var resumen domain.ResumenDashboard
	err := r.db.QueryRowContext(ctx, `
		SELECT
			COALESCE((SELECT SUM(total) FROM invoices), 0),
			(SELECT COUNT(*) FROM clients),
			(SELECT COUNT(*) FROM rooms),
			(SELECT COUNT(*) FROM reservations WHERE status IN ('reservada', 'confirmada', 'checkin')),
			(SELECT COUNT(*) FROM rooms WHERE status = 'ocupada')`,
	).Scan(
		&resumen.IngresosTotales,
		&resumen.TotalClientes,
		&resumen.TotalHabitaciones,
		&resumen.ReservasActivas,
		&resumen.HabitacionesOcupadas,
	)
	if err != nil {
		return nil, fmt.Errorf("error al obtener resumen del panel: %w", err)
	}

	if resumen.TotalHabitaciones > 0 {
		resumen.TasaOcupacion = float64(resumen.HabitacionesOcupadas) / float64(resumen.TotalHabitaciones) * 100
	}
	return &resumen, nil
}
