package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem es la foto del producto en el momento de la venta, extendida con
// la cantidad vendida y el subtotal. Al estar denormalizada, las ediciones o
// eliminaciones posteriores del producto nunca alteran ventas históricas.
type SaleItem struct {
	ProductID    string          `json:"product_id"`
	Name         string          `json:"name"`
	Form         string          `json:"form"`
	Content      string          `json:"content"`
	Price        decimal.Decimal `json:"price"` // precio unitario congelado al agregar al carrito
	Cost         decimal.Decimal `json:"cost"`  // costo al momento de la venta; cero si no estaba registrado
	SaleQuantity int64           `json:"sale_quantity"`
	Subtotal     decimal.Decimal `json:"subtotal"` // SaleQuantity × Price
}

// Client identidad libre del comprador; no es una entidad gestionada.
type Client struct {
	Name       string `json:"name"`
	LastName   string `json:"last_name"`
	DocumentID string `json:"document_id"`
	NIT        string `json:"nit,omitempty"`
}

// Info formatea la identidad del cliente para el campo ClientInfo de los movimientos.
func (c Client) Info() string {
	return c.Name + " " + c.LastName + " (" + c.DocumentID + ")"
}

// Sale es una venta persistida. Inmutable: el dominio no tiene operación de
// eliminación ni anulación; una venta errónea se corrige con un ajuste de inventario.
type Sale struct {
	ID        string
	Timestamp time.Time
	Items     []SaleItem
	Total     decimal.Decimal
	Client    Client
	UserID    string
	UserName  string
}
