package dto

import "github.com/shopspring/decimal"

// SalesReportRequest filtros por fecha (YYYY-MM-DD, inclusivos; vacío = sin límite).
type SalesReportRequest struct {
	StartDate string `query:"start"`
	EndDate   string `query:"end"`
}

// DailySalesDTO total vendido en un día calendario.
type DailySalesDTO struct {
	Date  string          `json:"date"` // YYYY-MM-DD
	Total decimal.Decimal `json:"total"`
}

// SalesReportDTO reporte de ventas del período.
type SalesReportDTO struct {
	StartDate       string          `json:"start_date,omitempty"`
	EndDate         string          `json:"end_date,omitempty"`
	SaleCount       int             `json:"sale_count"`
	TotalIncome     decimal.Decimal `json:"total_income"`
	EstimatedProfit decimal.Decimal `json:"estimated_profit"`
	SalesByDay      []DailySalesDTO `json:"sales_by_day"`
}

// StockAlertDTO producto en alerta de stock o vencimiento.
type StockAlertDTO struct {
	ProductID  string `json:"product_id"`
	Name       string `json:"name"`
	Quantity   int64  `json:"quantity"`
	MinStock   int64  `json:"min_stock,omitempty"`
	ExpiryDate string `json:"expiry_date,omitempty"`
}

// InventoryReportDTO valoración del inventario y alertas.
type InventoryReportDTO struct {
	ProductCount int             `json:"product_count"`
	Patrimony    decimal.Decimal `json:"patrimony"` // Σ quantity × cost
	LowStock     []StockAlertDTO `json:"low_stock"`
	ExpiringSoon []StockAlertDTO `json:"expiring_soon"`
}

// DashboardSummaryDTO resumen del panel principal; cacheable.
type DashboardSummaryDTO struct {
	TodayIncome       decimal.Decimal `json:"today_income"`
	TodaySaleCount    int             `json:"today_sale_count"`
	ProductCount      int             `json:"product_count"`
	LowStockCount     int             `json:"low_stock_count"`
	ExpiringSoonCount int             `json:"expiring_soon_count"`
}
