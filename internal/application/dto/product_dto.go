package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto. Quantity es el stock
// inicial y produce el movimiento IN "Registro inicial".
type CreateProductRequest struct {
	Name       string          `json:"name" validate:"required,min=1,max=200"`
	Form       string          `json:"form" validate:"required"`
	Content    string          `json:"content"`
	Line       string          `json:"line"`
	Price      decimal.Decimal `json:"price"`
	Cost       decimal.Decimal `json:"cost"`
	Quantity   int64           `json:"quantity"`
	Batch      string          `json:"batch"`
	ExpiryDate string          `json:"expiry_date"` // YYYY-MM-DD
	Location   string          `json:"location"`
	Barcode    string          `json:"barcode"`
	MinStock   int64           `json:"min_stock"`
	MaxStock   int64           `json:"max_stock"`
}

// UpdateProductRequest entrada para actualizar un producto.
// No incluye Quantity: todo cambio de stock pasa por restock o ajuste,
// que emiten su movimiento de auditoría.
type UpdateProductRequest struct {
	Name       *string          `json:"name"`
	Form       *string          `json:"form"`
	Content    *string          `json:"content"`
	Line       *string          `json:"line"`
	Price      *decimal.Decimal `json:"price"`
	Cost       *decimal.Decimal `json:"cost"`
	Batch      *string          `json:"batch"`
	ExpiryDate *string          `json:"expiry_date"`
	Location   *string          `json:"location"`
	Barcode    *string          `json:"barcode"`
	MinStock   *int64           `json:"min_stock"`
	MaxStock   *int64           `json:"max_stock"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Form       string          `json:"form"`
	Content    string          `json:"content"`
	Line       string          `json:"line"`
	Price      decimal.Decimal `json:"price"`
	Cost       decimal.Decimal `json:"cost"`
	Quantity   int64           `json:"quantity"`
	Batch      string          `json:"batch"`
	ExpiryDate string          `json:"expiry_date"`
	Location   string          `json:"location"`
	Barcode    string          `json:"barcode"`
	MinStock   int64           `json:"min_stock"`
	MaxStock   int64           `json:"max_stock"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ImportProductsRequest carga masiva de productos (sin movimientos por ítem;
// excepción documentada de la carga inicial).
type ImportProductsRequest struct {
	Products []CreateProductRequest `json:"products" validate:"required,min=1"`
}
