package sales

import (
	"context"
	"fmt"

	"github.com/farmabol/farmacia-api/internal/domain"
	"github.com/farmabol/farmacia-api/internal/domain/entity"
	"github.com/farmabol/farmacia-api/internal/domain/repository"
)

// ReceiptGenerator produce el PDF del recibo de una venta.
// La implementación Maroto vive en infrastructure/pdf.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, sale *entity.Sale, pharmacy *entity.PharmacyConfig) ([]byte, error)
}

// ReceiptUseCase genera el recibo en PDF de una venta persistida.
type ReceiptUseCase struct {
	saleRepo   repository.SaleRepository
	configRepo repository.ConfigRepository
	generator  ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	saleRepo repository.SaleRepository,
	configRepo repository.ConfigRepository,
	generator ReceiptGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{saleRepo: saleRepo, configRepo: configRepo, generator: generator}
}

// DownloadReceipt recupera la venta y la configuración de la farmacia y genera
// el PDF. La configuración puede no existir todavía; el recibo sale igual con
// los datos mínimos.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la venta no existe.
func (uc *ReceiptUseCase) DownloadReceipt(ctx context.Context, saleID string) (pdfBytes []byte, filename string, err error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}

	pharmacy, err := uc.configRepo.Get()
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener configuración: %w", err)
	}

	pdfBytes, err = uc.generator.GenerateReceipt(ctx, sale, pharmacy)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("recibo_%s.pdf", sale.ID)
	return pdfBytes, filename, nil
}
