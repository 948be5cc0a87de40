package cache

import (
	"context"
	"time"

	"github.com/farmabol/farmacia-api/internal/application/dto"
)

// DashboardCache combina lectura/escritura del resumen del dashboard con la
// invalidación que disparan las mutaciones de stock y ventas.
type DashboardCache interface {
	GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, bool, error)
	SetSummary(ctx context.Context, value *dto.DashboardSummaryDTO, ttl time.Duration) error
	InvalidateDashboard(ctx context.Context)
}

// NoopDashboardCache implementación vacía para despliegues sin Redis.
type NoopDashboardCache struct{}

func (NoopDashboardCache) GetSummary(_ context.Context) (*dto.DashboardSummaryDTO, bool, error) {
	return nil, false, nil
}

func (NoopDashboardCache) SetSummary(_ context.Context, _ *dto.DashboardSummaryDTO, _ time.Duration) error {
	return nil
}

func (NoopDashboardCache) InvalidateDashboard(_ context.Context) {}
