package dto

// RestockRequest body para POST /api/products/{id}/restock. Quantity > 0.
type RestockRequest struct {
	Quantity int64 `json:"quantity" validate:"required,gt=0"`
}

// AdjustStockRequest body para POST /api/products/{id}/adjust.
// Delta con signo; Reason obligatorio: todo ajuste debe ser atribuible.
type AdjustStockRequest struct {
	Delta  int64  `json:"delta" validate:"required"`
	Reason string `json:"reason" validate:"required,min=3"`
}

// MovementResponse salida de un movimiento de stock.
type MovementResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int64  `json:"quantity"`
	Timestamp   string `json:"timestamp"`
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name"`
	Reason      string `json:"reason,omitempty"`
	ClientInfo  string `json:"client_info,omitempty"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
