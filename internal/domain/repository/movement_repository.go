package repository

import (
	"time"

	"github.com/farmabol/farmacia-api/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para movimientos de stock.
// Solo inserción y lectura: los movimientos son inmutables.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error)
	List(from, to *time.Time, limit, offset int) ([]*entity.Movement, error)
}
