package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/marcos-nsantos/thumbgate/internal/domain/valueobject"
	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/config"
	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/metrics"
)

const (
	fieldBody        = "body"
	fieldContentType = "content_type"
	keyPrefix        = "thumbnail:"
)

func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return client, nil
}

// RedisThumbnailCache stores rendered thumbnails as redis hashes.
type RedisThumbnailCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisThumbnailCache(client *redis.Client, ttl time.Duration) *RedisThumbnailCache {
	return &RedisThumbnailCache{client: client, ttl: ttl}
}

func (c *RedisThumbnailCache) Get(ctx context.Context, key string) (valueobject.Image, bool, error) {
	values, err := c.client.HGetAll(ctx, keyPrefix+key).Result()
	if err != nil {
		return valueobject.Image{}, false, fmt.Errorf("reading cached thumbnail: %w", err)
	}

	body, ok := values[fieldBody]
	metrics.RecordCacheLookup("redis", ok)
	if !ok {
		return valueobject.Image{}, false, nil
	}
	return valueobject.NewImage([]byte(body), values[fieldContentType]), true, nil
}

func (c *RedisThumbnailCache) Set(ctx context.Context, key string, img valueobject.Image) error {
	pipe := c.client.TxPipeline()
	pipe.HSet(ctx, keyPrefix+key, fieldBody, img.Body, fieldContentType, img.ContentType)
	if c.ttl > 0 {
		pipe.Expire(ctx, keyPrefix+key, c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("caching thumbnail: %w", err)
	}
	return nil
}
