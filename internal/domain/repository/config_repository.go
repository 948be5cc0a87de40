package repository

import "github.com/farmabol/farmacia-api/internal/domain/entity"

// ConfigRepository define el puerto de persistencia para el singleton PharmacyConfig.
type ConfigRepository interface {
	Get() (*entity.PharmacyConfig, error)
	Upsert(cfg *entity.PharmacyConfig) error
}
