package domain

import "context"

// ResumenDashboard agrega indicadores operativos para el panel de
// administración. Lectura pura, sin efectos.
type ResumenDashboard struct {
	IngresosTotales      float64 `json:"ingresosTotales"`
	TotalClientes        int     `json:"totalClientes"`
	TotalHabitaciones    int     `json:"totalHabitaciones"`
	ReservasActivas      int     `json:"reservasActivas"`
	HabitacionesOcupadas int     `json:"habitacionesOcupadas"`
	TasaOcupacion        float64 `json:"tasaOcupacion"`
}

// ReporteRepository define las lecturas agregadas del panel.
type ReporteRepository interface {
	GetResumenDashboard(ctx context.Context) (*ResumenDashboard, error)
}
