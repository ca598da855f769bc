package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/UpServices02/service-booking/internal/models"
)

const (
	catalogKey = "catalog:categories"
	catalogTTL = 12 * time.Hour
)

// CatalogCache: catálogo de categorias com contrato explícito
// de cache + invalidate (nada de estado mutável global).
type CatalogCache struct {
	rdb *redis.Client
	db  *gorm.DB
}

func NewCatalogCache(rdb *redis.Client, db *gorm.DB) *CatalogCache {
	return &CatalogCache{rdb: rdb, db: db}
}

func (c *CatalogCache) List(ctx context.Context) ([]models.Category, error) {
	if raw, err := c.rdb.Get(ctx, catalogKey).Result(); err == nil {
		var cats []models.Category
		if jsonErr := json.Unmarshal([]byte(raw), &cats); jsonErr == nil {
			return cats, nil
		}
	}

	var cats []models.Category
	if err := c.db.WithContext(ctx).
		Order("name ASC").
		Find(&cats).Error; err != nil {
		return nil, err
	}

	if b, err := json.Marshal(cats); err == nil {
		c.rdb.Set(ctx, catalogKey, b, catalogTTL)
	}

	return cats, nil
}

func (c *CatalogCache) Invalidate(ctx context.Context) {
	c.rdb.Del(ctx, catalogKey)
}
