package cache

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/farmabol/farmacia-api/internal/application/dto"
)

const dashboardSummaryKey = "farmacia:dashboard:summary"

// RedisDashboardCache cachea el resumen del dashboard en Redis con TTL corto.
type RedisDashboardCache struct {
	client *redis.Client
}

// NewRedisDashboardCache abre el cliente Redis para el cache del dashboard.
func NewRedisDashboardCache(addr, password string, db int) *RedisDashboardCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisDashboardCache{client: client}
}

// Ping verifica la conexión; se usa al arrancar para decidir noop vs Redis.
func (c *RedisDashboardCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close cierra el cliente Redis.
func (c *RedisDashboardCache) Close() error {
	return c.client.Close()
}

// GetSummary lee el resumen cacheado. (nil, false, nil) en miss.
func (c *RedisDashboardCache) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, bool, error) {
	val, err := c.client.Get(ctx, dashboardSummaryKey).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var summary dto.DashboardSummaryDTO
	if err := json.Unmarshal([]byte(val), &summary); err != nil {
		return nil, false, err
	}
	return &summary, true, nil
}

// SetSummary guarda el resumen con el TTL indicado.
func (c *RedisDashboardCache) SetSummary(ctx context.Context, value *dto.DashboardSummaryDTO, ttl time.Duration) error {
	if value == nil {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, dashboardSummaryKey, payload, ttl).Err()
}

// InvalidateDashboard borra el resumen tras una mutación de stock o una venta.
// Best effort: un fallo del cache no debe fallar la operación de negocio.
func (c *RedisDashboardCache) InvalidateDashboard(ctx context.Context) {
	_ = c.client.Del(ctx, dashboardSummaryKey).Err()
}
