package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DRSN-tech/inventory-service/internal/cfg"
	"github.com/DRSN-tech/inventory-service/internal/domain"
	"github.com/DRSN-tech/inventory-service/internal/repository/redis/converter"
	"github.com/DRSN-tech/inventory-service/pkg/clients"
	"github.com/DRSN-tech/inventory-service/pkg/e"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// CartRepo хранит незакрытые заказы в Redis в виде JSON с TTL.
// Каждое сохранение продлевает TTL.
type CartRepo struct {
	client *clients.RedisClient
	conv   converter.CartConverter
	cfg    *cfg.RedisCfg
}

func NewCartRepo(client *clients.RedisClient, conv converter.CartConverter, cfg *cfg.RedisCfg) *CartRepo {
	return &CartRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
	}
}

func (c *CartRepo) Save(ctx context.Context, order *domain.Order) error {
	data, err := json.Marshal(c.conv.ToRedisModel(order))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, cartKey(order.ID), data, c.cfg.CartTTL).Err(); err != nil {
		return e.Storage(whereami.WhereAmI(), err)
	}

	return nil
}

// Get возвращает незакрытый заказ; истёкший или удалённый — e.ErrCartNotFound.
func (c *CartRepo) Get(ctx context.Context, id int64) (*domain.Order, error) {
	data, err := c.client.Client.Get(ctx, cartKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCartNotFound)
		}
		return nil, e.Storage(whereami.WhereAmI(), err)
	}

	var model converter.CartRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, e.Storage(fmt.Sprintf("%s: corrupted cart %d", whereami.WhereAmI(), id), err)
	}

	return c.conv.ToDomain(&model), nil
}

func (c *CartRepo) Delete(ctx context.Context, id int64) error {
	if err := c.client.Client.Del(ctx, cartKey(id)).Err(); err != nil {
		return e.Storage(whereami.WhereAmI(), err)
	}

	return nil
}

// cartKey возвращает Redis-ключ незакрытого заказа
func cartKey(id int64) string {
	return fmt.Sprintf("cart:%d", id)
}
