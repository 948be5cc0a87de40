package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmabol/farmacia-api/internal/application/dto"
	"github.com/farmabol/farmacia-api/internal/application/sales"
	"github.com/farmabol/farmacia-api/internal/domain"
	"github.com/farmabol/farmacia-api/internal/domain/entity"
	"github.com/farmabol/farmacia-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	products  map[string]*entity.Product
	movements []*entity.Movement
	sales     map[string]*entity.Sale
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products: map[string]*entity.Product{},
		sales:    map[string]*entity.Sale{},
	}
}

func (s *fakeStore) clone() *fakeStore {
	cp := newFakeStore()
	for id, p := range s.products {
		pp := *p
		cp.products[id] = &pp
	}
	for id, sale := range s.sales {
		ss := *sale
		cp.sales[id] = &ss
	}
	cp.movements = append(cp.movements, s.movements...)
	return cp
}

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}
func (r *fakeProductRepo) CreateBatch(ps []*entity.Product) error {
	for _, p := range ps {
		_ = r.Create(p)
	}
	return nil
}
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *fakeProductRepo) GetByBarcode(string) (*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}
func (r *fakeProductRepo) Update(p *entity.Product) error { return nil }
func (r *fakeProductRepo) UpdateQuantity(productID string, quantity int64) error {
	p, ok := r.s.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	return nil
}
func (r *fakeProductRepo) List(int, int) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) ListAll() ([]*entity.Product, error)      { return nil, nil }
func (r *fakeProductRepo) Delete(string) error                      { return nil }

type fakeMovementRepo struct{ s *fakeStore }

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	cp := *m
	r.s.movements = append(r.s.movements, &cp)
	return nil
}
func (r *fakeMovementRepo) ListByProduct(string, *time.Time, *time.Time, int, int) ([]*entity.Movement, error) {
	return r.s.movements, nil
}
func (r *fakeMovementRepo) List(*time.Time, *time.Time, int, int) ([]*entity.Movement, error) {
	return r.s.movements, nil
}

type fakeSaleRepo struct{ s *fakeStore }

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	cp := *sale
	r.s.sales[sale.ID] = &cp
	return nil
}
func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	sale, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *sale
	return &cp, nil
}
func (r *fakeSaleRepo) List(int, int) ([]*entity.Sale, error) {
	var list []*entity.Sale
	for _, s := range r.s.sales {
		cp := *s
		list = append(list, &cp)
	}
	return list, nil
}
func (r *fakeSaleRepo) ListBetween(*time.Time, *time.Time) ([]*entity.Sale, error) {
	return r.List(0, 0)
}

// fakeTxRunner emula commit/rollback: si fn falla, el estado previo se restaura.
type fakeTxRunner struct{ s *fakeStore }

func (t *fakeTxRunner) RunSale(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	snapshot := t.s.clone()
	if err := fn(&fakeMovementRepo{s: t.s}, &fakeProductRepo{s: t.s}, &fakeSaleRepo{s: t.s}); err != nil {
		*t.s = *snapshot
		return err
	}
	return nil
}

type noopCache struct{}

func (noopCache) InvalidateDashboard(_ context.Context) {}

func newUseCase(s *fakeStore) *sales.SaleUseCase {
	return sales.NewSaleUseCase(&fakeTxRunner{s: s}, &fakeSaleRepo{s: s}, noopCache{})
}

func seedProduct(s *fakeStore, id, name string, qty int64, price, cost int64) {
	s.products[id] = &entity.Product{
		ID:       id,
		Name:     name,
		Form:     "comprimido",
		Price:    decimal.NewFromInt(price),
		Cost:     decimal.NewFromInt(cost),
		Quantity: qty,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestProcessSale_Exitosa(t *testing.T) {
	s := newFakeStore()
	seedProduct(s, "p-1", "Paracetamol 500mg", 20, 5, 2)
	seedProduct(s, "p-2", "Jarabe para la tos", 8, 10, 4)
	uc := newUseCase(s)

	out, err := uc.ProcessSale(context.Background(), dto.ProcessSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: "p-1", Quantity: 3, UnitPrice: decimal.NewFromInt(5)},
			{ProductID: "p-2", Quantity: 2, UnitPrice: decimal.NewFromInt(10)},
		},
		Client: dto.ClientRequest{Name: "Juan", LastName: "Lopez", DocumentID: "123456"},
	}, "u-1", "Maria Perez")
	require.NoError(t, err)

	// Total = 3×5 + 2×10 = 35
	assert.True(t, decimal.NewFromInt(35).Equal(out.Total), "total esperado 35, fue %s", out.Total)
	require.Len(t, out.Items, 2)

	// Stock descontado
	assert.Equal(t, int64(17), s.products["p-1"].Quantity)
	assert.Equal(t, int64(6), s.products["p-2"].Quantity)

	// Un movimiento SALE por ítem, atado a la venta y al cliente
	require.Len(t, s.movements, 2)
	for _, m := range s.movements {
		assert.Equal(t, entity.MovementTypeSALE, m.Type)
		assert.Equal(t, "Venta ID: "+out.ID, m.Reason)
		assert.Equal(t, "Juan Lopez (123456)", m.ClientInfo)
		assert.Equal(t, "Maria Perez", m.UserName)
	}

	// Venta persistida con items congelados (incluye costo al vender)
	stored := s.sales[out.ID]
	require.NotNil(t, stored)
	assert.True(t, decimal.NewFromInt(2).Equal(stored.Items[0].Cost),
		"el costo se fotografía al momento de la venta")
}

// Si un solo ítem no alcanza, la venta entera se revierte: ni venta, ni
// movimientos, ni descuento parcial de stock.
func TestProcessSale_StockInsuficienteReviertTodo(t *testing.T) {
	s := newFakeStore()
	seedProduct(s, "p-1", "Paracetamol 500mg", 20, 5, 2)
	seedProduct(s, "p-2", "Jarabe para la tos", 1, 10, 4)
	uc := newUseCase(s)

	_, err := uc.ProcessSale(context.Background(), dto.ProcessSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: "p-1", Quantity: 3},
			{ProductID: "p-2", Quantity: 2}, // solo queda 1
		},
	}, "u-1", "Maria")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(20), s.products["p-1"].Quantity, "el primer ítem también se revirtió")
	assert.Equal(t, int64(1), s.products["p-2"].Quantity)
	assert.Empty(t, s.movements)
	assert.Empty(t, s.sales)
}

func TestProcessSale_ProductoInexistente(t *testing.T) {
	s := newFakeStore()
	uc := newUseCase(s)

	_, err := uc.ProcessSale(context.Background(), dto.ProcessSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: "fantasma", Quantity: 1}},
	}, "u-1", "Maria")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProcessSale_ValidaEntrada(t *testing.T) {
	s := newFakeStore()
	seedProduct(s, "p-1", "Paracetamol 500mg", 20, 5, 2)
	uc := newUseCase(s)

	cases := []struct {
		name  string
		items []dto.SaleItemRequest
	}{
		{"sin items", nil},
		{"cantidad cero", []dto.SaleItemRequest{{ProductID: "p-1", Quantity: 0}}},
		{"cantidad negativa", []dto.SaleItemRequest{{ProductID: "p-1", Quantity: -2}}},
		{"precio negativo", []dto.SaleItemRequest{{ProductID: "p-1", Quantity: 1, UnitPrice: decimal.NewFromInt(-3)}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.ProcessSale(context.Background(), dto.ProcessSaleRequest{Items: tc.items}, "u-1", "M")
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// El precio unitario del carrito manda; si llega en cero se toma el vigente.
func TestProcessSale_PrecioCongeladoDelCarrito(t *testing.T) {
	s := newFakeStore()
	seedProduct(s, "p-1", "Paracetamol 500mg", 20, 7, 2) // precio vigente 7
	uc := newUseCase(s)

	out, err := uc.ProcessSale(context.Background(), dto.ProcessSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: "p-1", Quantity: 2, UnitPrice: decimal.NewFromInt(5)}, // congelado en 5
		},
	}, "u-1", "Maria")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(10).Equal(out.Total), "2 × 5 congelado, no 2 × 7")

	out2, err := uc.ProcessSale(context.Background(), dto.ProcessSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: "p-1", Quantity: 1}, // sin precio: usa el vigente
		},
	}, "u-1", "Maria")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(7).Equal(out2.Total))
}

func TestGetSale_Inexistente(t *testing.T) {
	uc := newUseCase(newFakeStore())
	out, err := uc.GetSale("no-existe")
	require.NoError(t, err)
	assert.Nil(t, out)
}
