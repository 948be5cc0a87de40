package repository

import "github.com/farmabol/farmacia-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// UpdateQuantity es de uso exclusivo de los casos de uso que emiten movimientos;
// Update no toca Quantity.
type ProductRepository interface {
	Create(product *entity.Product) error
	CreateBatch(products []*entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByBarcode(barcode string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateQuantity(productID string, quantity int64) error
	List(limit, offset int) ([]*entity.Product, error)
	ListAll() ([]*entity.Product, error)
	Delete(id string) error
}
