package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmabol/farmacia-api/internal/application/dto"
	"github.com/farmabol/farmacia-api/internal/application/reports"
	"github.com/farmabol/farmacia-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de lectura
// ──────────────────────────────────────────────────────────────────────────────

type fakeSaleRepo struct{ sales []*entity.Sale }

func (r *fakeSaleRepo) Create(*entity.Sale) error             { return nil }
func (r *fakeSaleRepo) GetByID(string) (*entity.Sale, error)  { return nil, nil }
func (r *fakeSaleRepo) List(int, int) ([]*entity.Sale, error) { return r.sales, nil }
func (r *fakeSaleRepo) ListBetween(from, to *time.Time) ([]*entity.Sale, error) {
	var list []*entity.Sale
	for _, s := range r.sales {
		if from != nil && s.Timestamp.Before(*from) {
			continue
		}
		if to != nil && s.Timestamp.After(*to) {
			continue
		}
		list = append(list, s)
	}
	return list, nil
}

type fakeProductRepo struct{ products []*entity.Product }

func (r *fakeProductRepo) Create(*entity.Product) error                  { return nil }
func (r *fakeProductRepo) CreateBatch([]*entity.Product) error           { return nil }
func (r *fakeProductRepo) GetByID(string) (*entity.Product, error)       { return nil, nil }
func (r *fakeProductRepo) GetByBarcode(string) (*entity.Product, error)  { return nil, nil }
func (r *fakeProductRepo) GetForUpdate(string) (*entity.Product, error)  { return nil, nil }
func (r *fakeProductRepo) Update(*entity.Product) error                  { return nil }
func (r *fakeProductRepo) UpdateQuantity(string, int64) error            { return nil }
func (r *fakeProductRepo) List(int, int) ([]*entity.Product, error)      { return r.products, nil }
func (r *fakeProductRepo) ListAll() ([]*entity.Product, error)           { return r.products, nil }
func (r *fakeProductRepo) Delete(string) error                           { return nil }

// fakeSummaryCache cache en memoria que cuenta hits y sets.
type fakeSummaryCache struct {
	stored *dto.DashboardSummaryDTO
	sets   int
}

func (c *fakeSummaryCache) GetSummary(_ context.Context) (*dto.DashboardSummaryDTO, bool, error) {
	if c.stored == nil {
		return nil, false, nil
	}
	return c.stored, true, nil
}

func (c *fakeSummaryCache) SetSummary(_ context.Context, v *dto.DashboardSummaryDTO, _ time.Duration) error {
	c.stored = v
	c.sets++
	return nil
}

func saleAt(ts time.Time, total int64, items ...entity.SaleItem) *entity.Sale {
	return &entity.Sale{
		ID:        "s-" + ts.Format("20060102150405"),
		Timestamp: ts,
		Items:     items,
		Total:     decimal.NewFromInt(total),
	}
}

func item(cost, qty int64) entity.SaleItem {
	return entity.SaleItem{Cost: decimal.NewFromInt(cost), SaleQuantity: qty}
}

func newUseCase(saleRepo *fakeSaleRepo, productRepo *fakeProductRepo, cache *fakeSummaryCache) *reports.ReportUseCase {
	if cache == nil {
		cache = &fakeSummaryCache{}
	}
	return reports.NewReportUseCase(saleRepo, productRepo, cache, time.Minute)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte de ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestSalesReport_IngresoYGananciaEstimada(t *testing.T) {
	day := time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local)
	saleRepo := &fakeSaleRepo{sales: []*entity.Sale{
		// total 15, costo 2×3=6
		saleAt(day, 15, item(2, 3)),
		// total 20, costo 3×2=6
		saleAt(day.Add(time.Hour), 20, item(3, 2)),
	}}
	uc := newUseCase(saleRepo, &fakeProductRepo{}, nil)

	out, err := uc.SalesReport(dto.SalesReportRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, out.SaleCount)
	assert.True(t, decimal.NewFromInt(35).Equal(out.TotalIncome), "ingreso total 35, fue %s", out.TotalIncome)
	// ganancia = 35 − (6 + 6) = 23
	assert.True(t, decimal.NewFromInt(23).Equal(out.EstimatedProfit), "ganancia 23, fue %s", out.EstimatedProfit)
}

// Los ítems sin costo registrado aportan costo cero, no invalidan el reporte.
func TestSalesReport_CostoCeroEsValido(t *testing.T) {
	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	saleRepo := &fakeSaleRepo{sales: []*entity.Sale{
		saleAt(day, 10, item(0, 2)), // fila legada sin costo
	}}
	uc := newUseCase(saleRepo, &fakeProductRepo{}, nil)

	out, err := uc.SalesReport(dto.SalesReportRequest{})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(10).Equal(out.EstimatedProfit),
		"sin costo registrado la ganancia estimada es el ingreso completo")
}

func TestSalesReport_SeriePorDiaOrdenada(t *testing.T) {
	d1 := time.Date(2026, 3, 9, 10, 0, 0, 0, time.Local)
	d2 := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
	saleRepo := &fakeSaleRepo{sales: []*entity.Sale{
		saleAt(d2, 20),
		saleAt(d1, 5),
		saleAt(d1.Add(2*time.Hour), 7),
	}}
	uc := newUseCase(saleRepo, &fakeProductRepo{}, nil)

	out, err := uc.SalesReport(dto.SalesReportRequest{})
	require.NoError(t, err)
	require.Len(t, out.SalesByDay, 2)
	assert.Equal(t, "2026-03-09", out.SalesByDay[0].Date)
	assert.True(t, decimal.NewFromInt(12).Equal(out.SalesByDay[0].Total))
	assert.Equal(t, "2026-03-10", out.SalesByDay[1].Date)
	assert.True(t, decimal.NewFromInt(20).Equal(out.SalesByDay[1].Total))
}

// El extremo final del rango incluye el día completo.
func TestSalesReport_RangoInclusivo(t *testing.T) {
	lateSale := time.Date(2026, 3, 10, 23, 30, 0, 0, time.Local)
	saleRepo := &fakeSaleRepo{sales: []*entity.Sale{saleAt(lateSale, 9)}}
	uc := newUseCase(saleRepo, &fakeProductRepo{}, nil)

	out, err := uc.SalesReport(dto.SalesReportRequest{StartDate: "2026-03-10", EndDate: "2026-03-10"})
	require.NoError(t, err)
	assert.Equal(t, 1, out.SaleCount, "una venta a las 23:30 del día final cuenta")
}

func TestSalesReport_FechaInvalida(t *testing.T) {
	uc := newUseCase(&fakeSaleRepo{}, &fakeProductRepo{}, nil)
	_, err := uc.SalesReport(dto.SalesReportRequest{StartDate: "10/03/2026"})
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte de inventario
// ──────────────────────────────────────────────────────────────────────────────

func product(id string, qty, minStock int64, cost int64, expiry time.Time) *entity.Product {
	return &entity.Product{
		ID:         id,
		Name:       "Producto " + id,
		Quantity:   qty,
		MinStock:   minStock,
		Cost:       decimal.NewFromInt(cost),
		ExpiryDate: expiry,
	}
}

func TestInventoryReport_PatrimonioYAlertas(t *testing.T) {
	now := time.Now()
	productRepo := &fakeProductRepo{products: []*entity.Product{
		product("a", 10, 5, 3, now.AddDate(1, 0, 0)), // patrimonio 30, sin alertas
		product("b", 5, 5, 2, now.AddDate(1, 0, 0)),  // límite exacto: alerta de stock
		product("c", 6, 5, 0, time.Time{}),           // justo arriba del límite, sin fecha
	}}
	uc := newUseCase(&fakeSaleRepo{}, productRepo, nil)

	out, err := uc.InventoryReport()
	require.NoError(t, err)
	assert.Equal(t, 3, out.ProductCount)
	assert.True(t, decimal.NewFromInt(40).Equal(out.Patrimony), "30 + 10 + 0")
	require.Len(t, out.LowStock, 1)
	assert.Equal(t, "b", out.LowStock[0].ProductID, "quantity == minStock dispara la alerta")
	assert.Empty(t, out.ExpiringSoon)
}

func TestInventoryReport_VencimientoProximo(t *testing.T) {
	now := time.Now()
	productRepo := &fakeProductRepo{products: []*entity.Product{
		product("en-ventana", 10, 1, 1, now.AddDate(0, 0, 29)),
		product("borde", 10, 1, 1, now.AddDate(0, 0, 30).Add(-time.Hour)),
		product("lejano", 10, 1, 1, now.AddDate(0, 0, 45)),
		product("ya-vencido", 10, 1, 1, now.AddDate(0, 0, -1)),
		product("sin-fecha", 10, 1, 1, time.Time{}),
	}}
	uc := newUseCase(&fakeSaleRepo{}, productRepo, nil)

	out, err := uc.InventoryReport()
	require.NoError(t, err)
	ids := make([]string, 0, len(out.ExpiringSoon))
	for _, a := range out.ExpiringSoon {
		ids = append(ids, a.ProductID)
	}
	assert.ElementsMatch(t, []string{"en-ventana", "borde"}, ids,
		"solo lo vigente que vence dentro de 30 días alerta; lo vencido queda fuera")
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboardSummary_CalculaYGuardaEnCache(t *testing.T) {
	now := time.Now()
	saleRepo := &fakeSaleRepo{sales: []*entity.Sale{
		saleAt(now.Add(-time.Hour), 25),
		saleAt(now.AddDate(0, 0, -2), 99), // ayer no cuenta para hoy
	}}
	productRepo := &fakeProductRepo{products: []*entity.Product{
		product("a", 2, 5, 1, time.Time{}), // stock bajo
		product("b", 50, 5, 1, now.AddDate(0, 0, 10)),
	}}
	cache := &fakeSummaryCache{}
	uc := newUseCase(saleRepo, productRepo, cache)

	out, err := uc.DashboardSummary(context.Background())
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(25).Equal(out.TodayIncome))
	assert.Equal(t, 1, out.TodaySaleCount)
	assert.Equal(t, 2, out.ProductCount)
	assert.Equal(t, 1, out.LowStockCount)
	assert.Equal(t, 1, out.ExpiringSoonCount)
	assert.Equal(t, 1, cache.sets, "el resumen calculado se guarda en cache")

	// Segunda llamada: servida desde cache, sin recalcular.
	out2, err := uc.DashboardSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, out, out2)
	assert.Equal(t, 1, cache.sets)
}
