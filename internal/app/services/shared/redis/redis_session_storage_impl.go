package redis

import (
	"context"
	"saude-connect/internal/app/contracts"
	"saude-connect/internal/pkg/constvars"
	"saude-connect/internal/pkg/exceptions"
	"saude-connect/internal/pkg/utils"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// redisAPI is the slice of *redis.Client the storage uses.
type redisAPI interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisSessionStorage struct {
	client    redisAPI
	keyPrefix string
	Log       *zap.Logger
}

// NewRedisSessionStorage keeps session keys under keyPrefix. Keys never
// expire; the session ends on logout or when the backend rejects the token.
func NewRedisSessionStorage(client *redis.Client, logger *zap.Logger, keyPrefix string) contracts.SessionStorage {
	return newRedisSessionStorage(client, logger, keyPrefix)
}

func newRedisSessionStorage(client redisAPI, logger *zap.Logger, keyPrefix string) *redisSessionStorage {
	return &redisSessionStorage{
		client:    client,
		keyPrefix: keyPrefix,
		Log:       logger,
	}
}

func (r *redisSessionStorage) key(key string) string {
	return r.keyPrefix + key
}

func (r *redisSessionStorage) Get(ctx context.Context, key string) (string, bool, error) {
	data, err := r.client.Get(ctx, r.key(key)).Result()
	if err == redis.Nil {
		return "", false, nil
	} else if err != nil {
		r.Log.Error("redisSessionStorage.Get error",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingStorageKey, key),
			zap.Error(err),
		)
		return "", false, exceptions.ErrRedisGet(err)
	}
	return data, true, nil
}

func (r *redisSessionStorage) Set(ctx context.Context, key, value string) error {
	err := r.client.Set(ctx, r.key(key), value, 0).Err()
	if err != nil {
		r.Log.Error("redisSessionStorage.Set error",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingStorageKey, key),
			zap.Error(err),
		)
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (r *redisSessionStorage) Remove(ctx context.Context, key string) error {
	err := r.client.Del(ctx, r.key(key)).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}
