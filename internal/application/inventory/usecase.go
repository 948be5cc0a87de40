package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/farmabol/farmacia-api/internal/application/dto"
	"github.com/farmabol/farmacia-api/internal/domain"
	"github.com/farmabol/farmacia-api/internal/domain/entity"
	"github.com/farmabol/farmacia-api/internal/domain/repository"
)

// Motivos estándar de los movimientos generados por este caso de uso.
const (
	ReasonInitialRegistration = "Registro inicial"
	ReasonRestock             = "Reposición de stock"
)

// InventoryUseCase gestiona productos y todas las mutaciones de stock.
// Invariante: cada cambio de Quantity se confirma en la misma transacción que
// su Movement; la edición genérica de producto no puede tocar el stock.
type InventoryUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
	cache       CacheInvalidator
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
	cache CacheInvalidator,
) *InventoryUseCase {
	return &InventoryUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		movRepo:     movRepo,
		cache:       cache,
	}
}

func parseExpiry(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return t, nil
}

func validateProductInput(in dto.CreateProductRequest) error {
	if in.Name == "" || in.Form == "" {
		return domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || in.Cost.IsNegative() {
		return domain.ErrInvalidInput
	}
	if in.Quantity < 0 || in.MinStock < 0 || in.MaxStock < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

func buildProduct(in dto.CreateProductRequest) (*entity.Product, error) {
	if err := validateProductInput(in); err != nil {
		return nil, err
	}
	expiry, err := parseExpiry(in.ExpiryDate)
	if err != nil {
		return nil, err
	}
	return &entity.Product{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Form:       in.Form,
		Content:    in.Content,
		Line:       in.Line,
		Price:      in.Price,
		Cost:       in.Cost,
		Quantity:   in.Quantity,
		Batch:      in.Batch,
		ExpiryDate: expiry,
		Location:   in.Location,
		Barcode:    in.Barcode,
		MinStock:   in.MinStock,
		MaxStock:   in.MaxStock,
	}, nil
}

// CreateProduct valida, persiste el producto con su stock inicial y emite el
// movimiento IN "Registro inicial" en la misma transacción.
func (uc *InventoryUseCase) CreateProduct(ctx context.Context, in dto.CreateProductRequest, userID, userName string) (*dto.ProductResponse, error) {
	product, err := buildProduct(in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		mov := &entity.Movement{
			ID:          uuid.New().String(),
			Type:        entity.MovementTypeIN,
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    product.Quantity,
			Timestamp:   now,
			UserID:      userID,
			UserName:    userName,
			Reason:      ReasonInitialRegistration,
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	uc.cache.InvalidateDashboard(ctx)
	return toProductResponse(product), nil
}

// UpdateProduct actualiza los campos editables. Quantity queda fuera de esta
// ruta: cualquier cambio de stock pasa por Restock o AdjustStock.
func (uc *InventoryUseCase) UpdateProduct(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Form != nil {
		product.Form = *in.Form
	}
	if in.Content != nil {
		product.Content = *in.Content
	}
	if in.Line != nil {
		product.Line = *in.Line
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Cost != nil {
		if in.Cost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Cost = *in.Cost
	}
	if in.Batch != nil {
		product.Batch = *in.Batch
	}
	if in.ExpiryDate != nil {
		expiry, err := parseExpiry(*in.ExpiryDate)
		if err != nil {
			return nil, err
		}
		product.ExpiryDate = expiry
	}
	if in.Location != nil {
		product.Location = *in.Location
	}
	if in.Barcode != nil {
		product.Barcode = *in.Barcode
	}
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinStock = *in.MinStock
	}
	if in.MaxStock != nil {
		if *in.MaxStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MaxStock = *in.MaxStock
	}
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	// MinStock o ExpiryDate editados cambian las alertas del panel.
	uc.cache.InvalidateDashboard(ctx)
	return toProductResponse(product), nil
}

// DeleteProduct elimina el producto definitivamente. Ventas y movimientos
// históricos conservan nombre y cantidades denormalizados, así que siguen
// siendo legibles.
func (uc *InventoryUseCase) DeleteProduct(ctx context.Context, id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := uc.productRepo.Delete(id); err != nil {
		return err
	}
	uc.cache.InvalidateDashboard(ctx)
	return nil
}

// Restock suma stock (delta > 0) y emite el movimiento IN "Reposición de stock".
// La fila del producto se bloquea (SELECT FOR UPDATE): la cantidad base nunca
// proviene de un snapshot del cliente.
func (uc *InventoryUseCase) Restock(ctx context.Context, productID string, quantity int64, userID, userName string) error {
	if quantity <= 0 {
		return domain.ErrInvalidInput
	}
	now := time.Now()
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := productRepo.UpdateQuantity(productID, product.Quantity+quantity); err != nil {
			return err
		}
		mov := &entity.Movement{
			ID:          uuid.New().String(),
			Type:        entity.MovementTypeIN,
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    quantity,
			Timestamp:   now,
			UserID:      userID,
			UserName:    userName,
			Reason:      ReasonRestock,
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return err
	}
	uc.cache.InvalidateDashboard(ctx)
	return nil
}

// AdjustStock aplica un delta con signo y emite un movimiento ADJUSTMENT con
// motivo obligatorio. Es la única vía para corregir stock fuera de ventas y
// reposiciones; el formulario de edición no tiene acceso al campo Quantity.
// En ADJUSTMENT el movimiento registra el delta con signo (IN y SALE registran
// magnitudes, la dirección la da el tipo).
func (uc *InventoryUseCase) AdjustStock(ctx context.Context, productID string, delta int64, reason, userID, userName string) error {
	if delta == 0 || reason == "" {
		return domain.ErrInvalidInput
	}
	now := time.Now()
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		newQty := product.Quantity + delta
		if newQty < 0 {
			return domain.ErrInsufficientStock
		}
		if err := productRepo.UpdateQuantity(productID, newQty); err != nil {
			return err
		}
		mov := &entity.Movement{
			ID:          uuid.New().String(),
			Type:        entity.MovementTypeADJUSTMENT,
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    delta,
			Timestamp:   now,
			UserID:      userID,
			UserName:    userName,
			Reason:      reason,
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return err
	}
	uc.cache.InvalidateDashboard(ctx)
	return nil
}

// ImportProducts carga masiva: valida todas las filas y las inserta en lote.
// Excepción deliberada de la carga inicial: no se emiten movimientos por ítem.
func (uc *InventoryUseCase) ImportProducts(ctx context.Context, in dto.ImportProductsRequest) (int, error) {
	if len(in.Products) == 0 {
		return 0, domain.ErrInvalidInput
	}
	products := make([]*entity.Product, 0, len(in.Products))
	for _, row := range in.Products {
		p, err := buildProduct(row)
		if err != nil {
			return 0, err
		}
		products = append(products, p)
	}
	if err := uc.productRepo.CreateBatch(products); err != nil {
		return 0, err
	}
	uc.cache.InvalidateDashboard(ctx)
	return len(products), nil
}

// GetProduct obtiene un producto por ID.
func (uc *InventoryUseCase) GetProduct(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// ListProducts lista productos con paginación.
func (uc *InventoryUseCase) ListProducts(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.productRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListMovements historial de auditoría, opcionalmente filtrado por producto y fechas.
func (uc *InventoryUseCase) ListMovements(productID string, from, to *time.Time, limit, offset int) (*dto.MovementListResponse, error) {
	var (
		list []*entity.Movement
		err  error
	)
	if productID != "" {
		list, err = uc.movRepo.ListByProduct(productID, from, to, limit, offset)
	} else {
		list, err = uc.movRepo.List(from, to, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementResponse{
			ID:          m.ID,
			Type:        m.Type,
			ProductID:   m.ProductID,
			ProductName: m.ProductName,
			Quantity:    m.Quantity,
			Timestamp:   m.Timestamp.Format(time.RFC3339),
			UserID:      m.UserID,
			UserName:    m.UserName,
			Reason:      m.Reason,
			ClientInfo:  m.ClientInfo,
		})
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	expiry := ""
	if !p.ExpiryDate.IsZero() {
		expiry = p.ExpiryDate.Format("2006-01-02")
	}
	return &dto.ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Form:       p.Form,
		Content:    p.Content,
		Line:       p.Line,
		Price:      p.Price,
		Cost:       p.Cost,
		Quantity:   p.Quantity,
		Batch:      p.Batch,
		ExpiryDate: expiry,
		Location:   p.Location,
		Barcode:    p.Barcode,
		MinStock:   p.MinStock,
		MaxStock:   p.MaxStock,
	}
}
