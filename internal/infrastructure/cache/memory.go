package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/marcos-nsantos/thumbgate/internal/domain/valueobject"
	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/metrics"
)

// MemoryThumbnailCache keeps the most recently rendered thumbnails in process.
type MemoryThumbnailCache struct {
	lru *expirable.LRU[string, valueobject.Image]
}

func NewMemoryThumbnailCache(size int, ttl time.Duration) (*MemoryThumbnailCache, error) {
	if size <= 0 {
		return nil, fmt.Errorf("creating memory cache: size must be positive, got %d", size)
	}
	return &MemoryThumbnailCache{
		lru: expirable.NewLRU[string, valueobject.Image](size, nil, ttl),
	}, nil
}

func (c *MemoryThumbnailCache) Get(_ context.Context, key string) (valueobject.Image, bool, error) {
	img, ok := c.lru.Get(key)
	metrics.RecordCacheLookup("memory", ok)
	return img, ok, nil
}

func (c *MemoryThumbnailCache) Set(_ context.Context, key string, img valueobject.Image) error {
	c.lru.Add(key, img)
	return nil
}

func (c *MemoryThumbnailCache) Len() int {
	return c.lru.Len()
}

// NoopCache never stores anything.
type NoopCache struct{}

func (NoopCache) Get(context.Context, string) (valueobject.Image, bool, error) {
	return valueobject.Image{}, false, nil
}

func (NoopCache) Set(context.Context, string, valueobject.Image) error {
	return nil
}
