package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/farmabol/farmacia-api/internal/domain/entity"
	"github.com/farmabol/farmacia-api/internal/domain/repository"
)

var _ repository.ConfigRepository = (*ConfigRepo)(nil)

// configRowID la tabla pharmacy_config tiene una única fila.
const configRowID = 1

// ConfigRepo implementación del puerto ConfigRepository sobre PostgreSQL.
type ConfigRepo struct {
	q Querier
}

// NewConfigRepository construye el adaptador de persistencia para la configuración.
func NewConfigRepository(q Querier) *ConfigRepo {
	return &ConfigRepo{q: q}
}

// Get obtiene la configuración de la farmacia. (nil, nil) si todavía no se registró.
func (r *ConfigRepo) Get() (*entity.PharmacyConfig, error) {
	query := `
		SELECT id, name, address, phone, email, nit, socials
		FROM pharmacy_config WHERE id = $1`
	var c entity.PharmacyConfig
	err := r.q.QueryRow(context.Background(), query, configRowID).Scan(
		&c.ID, &c.Name, &c.Address, &c.Phone, &c.Email, &c.NIT, &c.Socials,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pharmacy config: %w", err)
	}
	return &c, nil
}

// Upsert crea o reemplaza la fila única de configuración.
func (r *ConfigRepo) Upsert(cfg *entity.PharmacyConfig) error {
	query := `
		INSERT INTO pharmacy_config (id, name, address, phone, email, nit, socials)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, address = EXCLUDED.address, phone = EXCLUDED.phone,
			email = EXCLUDED.email, nit = EXCLUDED.nit, socials = EXCLUDED.socials`
	_, err := r.q.Exec(context.Background(), query,
		configRowID, cfg.Name, cfg.Address, cfg.Phone, cfg.Email, cfg.NIT, cfg.Socials,
	)
	if err != nil {
		return fmt.Errorf("upsert pharmacy config: %w", err)
	}
	return nil
}
