package repository

import (
	"context"
	"time"
)

// CacheRepository - key/value кеш с TTL для ответов транспортного API
type CacheRepository interface {
	// Get возвращает nil, nil при промахе
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
