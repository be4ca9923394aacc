package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
)

const catalogKey = "templates:catalog"

// TemplateCacheStore caches the assembled template catalog in Redis.
type TemplateCacheStore struct {
	rdb        *redis.Client
	catalogTTL time.Duration
}

var _ usecasecontract.ITemplateCache = (*TemplateCacheStore)(nil)

func NewTemplateCacheStore(rdb *redis.Client) *TemplateCacheStore {
	return &TemplateCacheStore{
		rdb:        rdb,
		catalogTTL: 30 * time.Minute,
	}
}

func (c *TemplateCacheStore) GetCatalog(ctx context.Context) ([]entity.Template, bool, error) {
	b, err := c.rdb.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var templates []entity.Template
	if err := json.Unmarshal(b, &templates); err != nil {
		return nil, false, nil
	}
	return templates, true, nil
}

func (c *TemplateCacheStore) SetCatalog(ctx context.Context, templates []entity.Template) error {
	data, err := json.Marshal(templates)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, catalogKey, data, c.catalogTTL).Err()
}

func (c *TemplateCacheStore) InvalidateCatalog(ctx context.Context) error {
	return c.rdb.Del(ctx, catalogKey).Err()
}
