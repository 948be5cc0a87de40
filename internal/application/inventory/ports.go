package inventory

import (
	"context"

	"github.com/farmabol/farmacia-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que stock y movimiento de auditoría
// se confirmen o se reviertan juntos: un Product nunca queda sin su Movement.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// CacheInvalidator invalida el resumen cacheado del dashboard tras una
// mutación de stock; un noop cuando no hay cache configurado.
type CacheInvalidator interface {
	InvalidateDashboard(ctx context.Context)
}
