package repository

import (
	"time"

	"github.com/farmabol/farmacia-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas.
// No hay Update ni Delete: una venta persistida es inmutable.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	List(limit, offset int) ([]*entity.Sale, error)
	ListBetween(from, to *time.Time) ([]*entity.Sale, error)
}
