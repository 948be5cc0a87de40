package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario de la farmacia.
// Quantity solo cambia a través de un Movement emparejado (IN, SALE, ADJUSTMENT);
// la edición genérica nunca toca el stock.
type Product struct {
	ID         string
	Name       string
	Form       string // comprimido, jarabe, crema...
	Content    string // ej. "500mg"
	Line       string
	Price      decimal.Decimal // precio de venta unitario
	Cost       decimal.Decimal // costo de adquisición; puede ser cero en filas legadas
	Quantity   int64           // stock actual en unidades
	Batch      string
	ExpiryDate time.Time
	Location   string
	Barcode    string
	MinStock   int64
	MaxStock   int64
}
