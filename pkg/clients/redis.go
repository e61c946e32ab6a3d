package clients

import (
	"context"

	"github.com/DRSN-tech/inventory-service/internal/cfg"
	"github.com/DRSN-tech/inventory-service/pkg/e"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

const redisClientName = "inventory-carts"

// RedisClient — соединение с Redis, где живут незакрытые заказы.
type RedisClient struct {
	Client *r.Client
}

func NewRedisClient(c *cfg.RedisCfg) *RedisClient {
	return &RedisClient{
		Client: r.NewClient(&r.Options{
			Addr:         c.Addr,
			Username:     c.User,
			Password:     c.Password,
			DB:           c.DB,
			ClientName:   redisClientName,
			MaxRetries:   c.MaxRetries,
			DialTimeout:  c.DialTimeout,
			ReadTimeout:  c.Timeout,
			WriteTimeout: c.Timeout,
		}),
	}
}

func (rc *RedisClient) Ping(ctx context.Context) error {
	if err := rc.Client.Ping(ctx).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	return nil
}

func (rc *RedisClient) Close() error {
	return rc.Client.Close()
}
