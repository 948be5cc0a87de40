package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmabol/farmacia-api/internal/application/dto"
	"github.com/farmabol/farmacia-api/internal/domain"
	"github.com/farmabol/farmacia-api/internal/domain/entity"
	"github.com/farmabol/farmacia-api/internal/domain/repository"
)

// SaleUseCase procesa ventas. Todo ocurre en una transacción con bloqueo de
// fila por producto (SELECT FOR UPDATE): la suficiencia de stock se verifica
// contra la BD al confirmar, nunca contra una cantidad cacheada en el cliente.
// Dos cajeros vendiendo la última unidad no pueden tener éxito ambos.
type SaleUseCase struct {
	txRunner SaleTxRunner
	saleRepo repository.SaleRepository
	cache    CacheInvalidator
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(txRunner SaleTxRunner, saleRepo repository.SaleRepository, cache CacheInvalidator) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, saleRepo: saleRepo, cache: cache}
}

// ProcessSale crea la venta, un movimiento SALE por ítem y descuenta el stock,
// atómicamente. El precio unitario viene congelado del carrito (si llega en
// cero se toma el precio vigente del producto); el costo se fotografía al
// momento de la venta para el cálculo de ganancia.
func (uc *SaleUseCase) ProcessSale(ctx context.Context, in dto.ProcessSaleRequest, userID, userName string) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if item.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	saleID := uuid.New().String()
	client := entity.Client{
		Name:       in.Client.Name,
		LastName:   in.Client.LastName,
		DocumentID: in.Client.DocumentID,
		NIT:        in.Client.NIT,
	}
	var sale *entity.Sale

	err := uc.txRunner.RunSale(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		items := make([]entity.SaleItem, 0, len(in.Items))
		total := decimal.Zero

		for _, req := range in.Items {
			// Bloquea la fila del producto y verifica stock dentro de la tx
			product, err := productRepo.GetForUpdate(req.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if product.Quantity < req.Quantity {
				return domain.ErrInsufficientStock
			}

			unitPrice := req.UnitPrice
			if unitPrice.IsZero() {
				unitPrice = product.Price
			}
			subtotal := unitPrice.Mul(decimal.NewFromInt(req.Quantity))

			if err := productRepo.UpdateQuantity(product.ID, product.Quantity-req.Quantity); err != nil {
				return err
			}

			mov := &entity.Movement{
				ID:          uuid.New().String(),
				Type:        entity.MovementTypeSALE,
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    req.Quantity,
				Timestamp:   now,
				UserID:      userID,
				UserName:    userName,
				Reason:      "Venta ID: " + saleID,
				ClientInfo:  client.Info(),
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}

			items = append(items, entity.SaleItem{
				ProductID:    product.ID,
				Name:         product.Name,
				Form:         product.Form,
				Content:      product.Content,
				Price:        unitPrice,
				Cost:         product.Cost,
				SaleQuantity: req.Quantity,
				Subtotal:     subtotal,
			})
			total = total.Add(subtotal)
		}

		sale = &entity.Sale{
			ID:        saleID,
			Timestamp: now,
			Items:     items,
			Total:     total,
			Client:    client,
			UserID:    userID,
			UserName:  userName,
		}
		return saleRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}

	uc.cache.InvalidateDashboard(ctx)
	return toSaleResponse(sale), nil
}

// GetSale obtiene una venta por ID.
func (uc *SaleUseCase) GetSale(id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	return toSaleResponse(sale), nil
}

// ListSales lista ventas con paginación (más recientes primero).
func (uc *SaleUseCase) ListSales(limit, offset int) (*dto.SaleListResponse, error) {
	list, err := uc.saleRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID:    it.ProductID,
			Name:         it.Name,
			Form:         it.Form,
			Content:      it.Content,
			Price:        it.Price,
			Cost:         it.Cost,
			SaleQuantity: it.SaleQuantity,
			Subtotal:     it.Subtotal,
		})
	}
	return &dto.SaleResponse{
		ID:        s.ID,
		Timestamp: s.Timestamp.Format(time.RFC3339),
		Items:     items,
		Total:     s.Total,
		Client: dto.ClientRequest{
			Name:       s.Client.Name,
			LastName:   s.Client.LastName,
			DocumentID: s.Client.DocumentID,
			NIT:        s.Client.NIT,
		},
		UserID:   s.UserID,
		UserName: s.UserName,
	}
}
