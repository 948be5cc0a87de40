package usecase

import (
	"github.com/farmabol/farmacia-api/internal/application/dto"
	"github.com/farmabol/farmacia-api/internal/domain"
	"github.com/farmabol/farmacia-api/internal/domain/entity"
	"github.com/farmabol/farmacia-api/internal/domain/repository"
)

// ConfigUseCase lectura y actualización del singleton PharmacyConfig.
type ConfigUseCase struct {
	repo repository.ConfigRepository
}

// NewConfigUseCase construye el caso de uso.
func NewConfigUseCase(repo repository.ConfigRepository) *ConfigUseCase {
	return &ConfigUseCase{repo: repo}
}

// Get devuelve la configuración de la farmacia.
func (uc *ConfigUseCase) Get() (*dto.PharmacyConfigResponse, error) {
	cfg, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, domain.ErrNotFound
	}
	return toConfigResponse(cfg), nil
}

// Update reemplaza la configuración (upsert sobre la única fila).
func (uc *ConfigUseCase) Update(in dto.PharmacyConfigRequest) (*dto.PharmacyConfigResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	cfg := &entity.PharmacyConfig{
		Name:    in.Name,
		Address: in.Address,
		Phone:   in.Phone,
		Email:   in.Email,
		NIT:     in.NIT,
		Socials: in.Socials,
	}
	if err := uc.repo.Upsert(cfg); err != nil {
		return nil, err
	}
	return toConfigResponse(cfg), nil
}

func toConfigResponse(c *entity.PharmacyConfig) *dto.PharmacyConfigResponse {
	return &dto.PharmacyConfigResponse{
		Name:    c.Name,
		Address: c.Address,
		Phone:   c.Phone,
		Email:   c.Email,
		NIT:     c.NIT,
		Socials: c.Socials,
	}
}
