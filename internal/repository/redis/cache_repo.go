package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/eastlane-store/go-backend/internal/cfg"
	"github.com/eastlane-store/go-backend/internal/repository/redis/converter"
	"github.com/eastlane-store/go-backend/internal/usecase"
	"github.com/eastlane-store/go-backend/pkg/clients"
	"github.com/eastlane-store/go-backend/pkg/e"
	"github.com/eastlane-store/go-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// CacheRepo кэширует карточки товаров в Redis поверх PostgreSQL.
type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.ProductCardConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.ProductCardConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetProduct возвращает карточку из кэша. Промах — это (nil, nil):
// вызывающий код идёт в БД и наполняет кэш сам.
func (c *CacheRepo) GetProduct(ctx context.Context, id int64) (*usecase.ProductCard, error) {
	key := productKey(id)

	data, err := c.client.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, nil // cache miss
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.ProductCardRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		c.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, nil
	}

	// Защита от битой записи: ключ и содержимое должны сходиться
	if model.ID != id {
		c.logger.Warnf("Cache ID mismatch: key_id: %d, model_id: %d", id, model.ID)
		if err := c.client.Client.Del(context.Background(), key).Err(); err != nil {
			c.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, nil
	}

	return c.conv.ToUseCase(&model), nil
}

// SetProduct кэширует карточку с TTL из конфигурации.
func (c *CacheRepo) SetProduct(ctx context.Context, card *usecase.ProductCard) error {
	data, err := json.Marshal(c.conv.ToRedisModel(card))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, productKey(card.ID), data, c.cfg.ProductTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// DeleteProducts выбивает карточки из кэша по ID.
// Ошибки не фатальны: записи сами истекут по TTL.
func (c *CacheRepo) DeleteProducts(ctx context.Context, ids []int64) error {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = productKey(id)
	}

	if err := c.client.Client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// productKey возвращает Redis-ключ карточки товара.
func productKey(id int64) string {
	return fmt.Sprintf("product:%d", id)
}
