package dto

import "github.com/shopspring/decimal"

// SaleItemRequest línea del carrito. UnitPrice es el precio congelado al
// agregar al carrito; si viene en cero se usa el precio actual del producto.
type SaleItemRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  int64           `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// ClientRequest identidad libre del comprador.
type ClientRequest struct {
	Name       string `json:"name"`
	LastName   string `json:"last_name"`
	DocumentID string `json:"document_id"`
	NIT        string `json:"nit,omitempty"`
}

// ProcessSaleRequest body para POST /api/sales.
type ProcessSaleRequest struct {
	Items  []SaleItemRequest `json:"items" validate:"required,min=1"`
	Client ClientRequest     `json:"client"`
}

// SaleItemResponse línea denormalizada de una venta persistida.
type SaleItemResponse struct {
	ProductID    string          `json:"product_id"`
	Name         string          `json:"name"`
	Form         string          `json:"form"`
	Content      string          `json:"content"`
	Price        decimal.Decimal `json:"price"`
	Cost         decimal.Decimal `json:"cost"`
	SaleQuantity int64           `json:"sale_quantity"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// SaleResponse salida de una venta (suficiente para imprimir el recibo sin
// volver a consultar productos).
type SaleResponse struct {
	ID        string             `json:"id"`
	Timestamp string             `json:"timestamp"`
	Items     []SaleItemResponse `json:"items"`
	Total     decimal.Decimal    `json:"total"`
	Client    ClientRequest      `json:"client"`
	UserID    string             `json:"user_id"`
	UserName  string             `json:"user_name"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
