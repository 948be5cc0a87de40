package reports

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/farmabol/farmacia-api/internal/application/dto"
	"github.com/farmabol/farmacia-api/internal/domain/entity"
	"github.com/farmabol/farmacia-api/internal/domain/repository"
)

const expiryAlertWindowDays = 30

// ReportUseCase agregación de solo lectura: ingresos, ganancia estimada,
// valoración de inventario (patrimonio) y alertas. No muta estado.
type ReportUseCase struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	cache       SummaryCache
	cacheTTL    time.Duration
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	cache SummaryCache,
	cacheTTL time.Duration,
) *ReportUseCase {
	return &ReportUseCase{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
	}
}

// parseDateBound convierte YYYY-MM-DD en *time.Time; vacío = sin límite.
func parseDateBound(s string, endOfDay bool) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return nil, fmt.Errorf("fecha inválida %q: %w", s, err)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond) // inclusivo hasta el final del día
	}
	return &t, nil
}

// SalesReport filtra ventas por rango de fechas (componente fecha, inclusivo;
// límite vacío = abierto) y calcula ingreso total, ganancia estimada y la
// serie de ventas por día ordenada ascendente.
//
// Ganancia estimada = Σ (total − Σ costo_al_vender × cantidad). Los ítems sin
// costo registrado aportan costo cero: comportamiento definido para filas
// legadas, no un error.
func (uc *ReportUseCase) SalesReport(in dto.SalesReportRequest) (*dto.SalesReportDTO, error) {
	from, err := parseDateBound(in.StartDate, false)
	if err != nil {
		return nil, err
	}
	to, err := parseDateBound(in.EndDate, true)
	if err != nil {
		return nil, err
	}
	sales, err := uc.saleRepo.ListBetween(from, to)
	if err != nil {
		return nil, err
	}

	totalIncome := decimal.Zero
	estimatedProfit := decimal.Zero
	byDay := make(map[string]decimal.Decimal)

	for _, s := range sales {
		totalIncome = totalIncome.Add(s.Total)

		saleCost := decimal.Zero
		for _, item := range s.Items {
			saleCost = saleCost.Add(item.Cost.Mul(decimal.NewFromInt(item.SaleQuantity)))
		}
		estimatedProfit = estimatedProfit.Add(s.Total.Sub(saleCost))

		day := s.Timestamp.Format("2006-01-02")
		byDay[day] = byDay[day].Add(s.Total)
	}

	series := make([]dto.DailySalesDTO, 0, len(byDay))
	for day, total := range byDay {
		series = append(series, dto.DailySalesDTO{Date: day, Total: total})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date < series[j].Date })

	return &dto.SalesReportDTO{
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
		SaleCount:       len(sales),
		TotalIncome:     totalIncome,
		EstimatedProfit: estimatedProfit,
		SalesByDay:      series,
	}, nil
}

// lowStock incluye el límite: quantity ≤ minStock.
func lowStock(p *entity.Product) bool {
	return p.Quantity <= p.MinStock
}

// expiringSoon: vencimiento estrictamente futuro y a 30 días o menos.
// Lo ya vencido se excluye: la alerta señala "aún vendible, actuar pronto".
func expiringSoon(p *entity.Product, now time.Time) bool {
	if p.ExpiryDate.IsZero() || !p.ExpiryDate.After(now) {
		return false
	}
	limit := now.AddDate(0, 0, expiryAlertWindowDays)
	return !p.ExpiryDate.After(limit)
}

// InventoryReport patrimonio (Σ quantity × cost) y alertas de stock/vencimiento.
func (uc *ReportUseCase) InventoryReport() (*dto.InventoryReportDTO, error) {
	products, err := uc.productRepo.ListAll()
	if err != nil {
		return nil, err
	}
	now := time.Now()

	patrimony := decimal.Zero
	var low, expiring []dto.StockAlertDTO
	for _, p := range products {
		patrimony = patrimony.Add(p.Cost.Mul(decimal.NewFromInt(p.Quantity)))
		if lowStock(p) {
			low = append(low, dto.StockAlertDTO{
				ProductID: p.ID,
				Name:      p.Name,
				Quantity:  p.Quantity,
				MinStock:  p.MinStock,
			})
		}
		if expiringSoon(p, now) {
			expiring = append(expiring, dto.StockAlertDTO{
				ProductID:  p.ID,
				Name:       p.Name,
				Quantity:   p.Quantity,
				ExpiryDate: p.ExpiryDate.Format("2006-01-02"),
			})
		}
	}
	return &dto.InventoryReportDTO{
		ProductCount: len(products),
		Patrimony:    patrimony,
		LowStock:     low,
		ExpiringSoon: expiring,
	}, nil
}

// DashboardSummary resumen del panel, servido desde cache si está vigente.
// Las mutaciones de stock y las ventas invalidan la clave; el TTL cubre el
// resto de los casos.
func (uc *ReportUseCase) DashboardSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	if cached, ok, err := uc.cache.GetSummary(ctx); err == nil && ok {
		return cached, nil
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)

	sales, err := uc.saleRepo.ListBetween(&dayStart, &dayEnd)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.ListAll()
	if err != nil {
		return nil, err
	}

	todayIncome := decimal.Zero
	for _, s := range sales {
		todayIncome = todayIncome.Add(s.Total)
	}
	lowCount, expCount := 0, 0
	for _, p := range products {
		if lowStock(p) {
			lowCount++
		}
		if expiringSoon(p, now) {
			expCount++
		}
	}

	summary := &dto.DashboardSummaryDTO{
		TodayIncome:       todayIncome,
		TodaySaleCount:    len(sales),
		ProductCount:      len(products),
		LowStockCount:     lowCount,
		ExpiringSoonCount: expCount,
	}
	_ = uc.cache.SetSummary(ctx, summary, uc.cacheTTL)
	return summary, nil
}
