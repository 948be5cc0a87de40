package sales

import (
	"context"

	"github.com/farmabol/farmacia-api/internal/domain/repository"
)

// SaleTxRunner ejecuta el procesamiento de una venta dentro de una única
// transacción: venta, movimientos SALE y decrementos de stock se confirman o
// se revierten juntos. Reemplaza la secuencia no atómica de insert venta +
// insert movimientos + update productos.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// CacheInvalidator invalida el resumen cacheado del dashboard tras una venta.
type CacheInvalidator interface {
	InvalidateDashboard(ctx context.Context)
}
