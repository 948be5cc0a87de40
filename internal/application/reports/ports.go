package reports

import (
	"context"
	"time"

	"github.com/farmabol/farmacia-api/internal/application/dto"
)

// SummaryCache guarda el resumen del dashboard con TTL corto para no
// recalcular agregados en cada carga del panel. La implementación Redis vive
// en infrastructure/cache; sin Redis configurado se usa el noop.
type SummaryCache interface {
	GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, bool, error)
	SetSummary(ctx context.Context, value *dto.DashboardSummaryDTO, ttl time.Duration) error
}
