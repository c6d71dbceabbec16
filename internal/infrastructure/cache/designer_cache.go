// Package cache implementa el cache read-through del directorio de
// diseñadores sobre Redis. El directorio es la lectura más caliente del API y
// cambia poco (alta de diseñadores y recálculo de rating).
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/styleverse/marketplace-api/internal/application/usecase"
	"github.com/styleverse/marketplace-api/internal/domain/repository"
	"github.com/styleverse/marketplace-api/pkg/config"
	"github.com/styleverse/marketplace-api/pkg/logger"
)

const designersKey = "designers:profiles"

var _ usecase.DirectoryCache = (*DesignerCache)(nil)

// DesignerCache guarda el listado serializado en una sola clave con TTL.
// Todos los fallos de Redis degradan a cache-miss; nunca rompen la petición.
type DesignerCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

// NewClient crea el cliente Redis y verifica conectividad.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// NewDesignerCache construye el cache con el TTL configurado.
func NewDesignerCache(client *redis.Client, cfg config.RedisConfig, log *logger.Logger) *DesignerCache {
	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &DesignerCache{client: client, ttl: ttl, log: log}
}

// GetProfiles devuelve el listado cacheado y true, o (nil, false) en miss.
func (c *DesignerCache) GetProfiles(ctx context.Context) ([]repository.DesignerProfile, bool) {
	raw, err := c.client.Get(ctx, designersKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("cache de diseñadores: fallo de lectura")
		}
		return nil, false
	}
	var profiles []repository.DesignerProfile
	if err := json.Unmarshal(raw, &profiles); err != nil {
		c.log.Warn().Err(err).Msg("cache de diseñadores: payload corrupto, se invalida")
		c.Invalidate(ctx)
		return nil, false
	}
	return profiles, true
}

// SetProfiles guarda el listado con TTL.
func (c *DesignerCache) SetProfiles(ctx context.Context, profiles []repository.DesignerProfile) {
	raw, err := json.Marshal(profiles)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, designersKey, raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("cache de diseñadores: fallo de escritura")
	}
}

// Invalidate borra la clave (alta de diseñador o cambio de rating).
func (c *DesignerCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, designersKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("cache de diseñadores: fallo al invalidar")
	}
}
