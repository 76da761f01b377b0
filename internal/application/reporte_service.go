package application

import (
	"context"

	"github.com/lalavale064/gestion-hotelera/internal/domain"
)

type ReporteService struct {
	reporteRepo domain.ReporteRepository
}

// NewReporteService crea una nueva instancia del servicio de reportes
func NewReporteService(reporteRepo domain.ReporteRepository) *ReporteService {
	return &ReporteService{reporteRepo: reporteRepo}
}

// GetResumenDashboard devuelve los indicadores del panel de administración
func (s *ReporteService) GetResumenDashboard(ctx context.Context) (*domain.ResumenDashboard, error) {
	return s.reporteRepo.GetResumenDashboard(ctx)
}
