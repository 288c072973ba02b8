package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStorage 以设备 ID 作为命名空间，多台设备可共用一个 redis
type RedisStorage struct {
	redis    *redis.Client
	deviceID string
}

func NewRedisStorage(rdb *redis.Client, deviceID string) *RedisStorage {
	return &RedisStorage{redis: rdb, deviceID: deviceID}
}

func (r *RedisStorage) GetItem(ctx context.Context, key string) (string, error) {
	v, err := r.redis.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotExist
	}
	return v, err
}

func (r *RedisStorage) SetItem(ctx context.Context, key, value string) error {
	return r.redis.Set(ctx, r.key(key), value, 0).Err()
}

func (r *RedisStorage) RemoveItem(ctx context.Context, key string) error {
	return r.redis.Del(ctx, r.key(key)).Err()
}

func (r *RedisStorage) key(key string) string {
	return fmt.Sprintf("tripnote:storage:%s:%s", r.deviceID, key)
}
