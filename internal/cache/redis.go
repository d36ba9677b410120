package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/aerolinea/config"
	"github.com/Domenick1991/aerolinea/internal/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the lock only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisCache struct {
	client     *redis.Client
	namespace  string
	datasetTTL time.Duration
	owner      string
}

func NewRedisCache(cfg config.RedisConfig, namespace string, datasetTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		namespace:  namespace,
		datasetTTL: datasetTTL,
		owner:      uuid.NewString(),
	}
}

func (c *RedisCache) GetDataset(ctx context.Context) (*domain.Dataset, error) {
	data, err := c.client.Get(ctx, c.datasetKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var ds domain.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, err
	}
	return ds.Normalize(), nil
}

func (c *RedisCache) SetDataset(ctx context.Context, ds *domain.Dataset) error {
	payload, err := json.Marshal(ds)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.datasetKey(), payload, c.datasetTTL).Err()
}

func (c *RedisCache) InvalidateDataset(ctx context.Context) error {
	return c.client.Del(ctx, c.datasetKey()).Err()
}

func (c *RedisCache) AcquireLock(ctx context.Context, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, c.lockKey(), c.owner, ttl).Result()
}

func (c *RedisCache) ReleaseLock(ctx context.Context) error {
	return releaseScript.Run(ctx, c.client, []string{c.lockKey()}, c.owner).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) datasetKey() string {
	return fmt.Sprintf("cache:dataset:%s", c.namespace)
}

func (c *RedisCache) lockKey() string {
	return fmt.Sprintf("lock:dataset:%s", c.namespace)
}
