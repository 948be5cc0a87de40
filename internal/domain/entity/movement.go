package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIN         = "IN"         // ingreso (registro inicial, reposición)
	MovementTypeOUT        = "OUT"        // salida manual
	MovementTypeSALE       = "SALE"       // venta
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste con motivo obligatorio
)

// Movement es el registro de auditoría inmutable de un cambio de stock.
// Quantity es la magnitud del cambio; la dirección la da Type, no el signo.
// Nunca se actualiza ni se elimina desde la aplicación.
type Movement struct {
	ID          string
	Type        string
	ProductID   string
	ProductName string // denormalizado: legible aunque el producto se elimine
	Quantity    int64
	Timestamp   time.Time
	UserID      string
	UserName    string
	Reason      string
	ClientInfo  string
}
