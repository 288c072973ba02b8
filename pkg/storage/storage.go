// Package storage 本地键值存储，接口与移动端 AsyncStorage 对齐。
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"

	"Tripnote/config"
	"Tripnote/pkg/client"
)

// ErrNotExist key 不存在
var ErrNotExist = errors.New("storage: key not exist")

type Storage interface {
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
}

// New 按配置选择存储驱动
func New(conf *config.Config) (Storage, error) {
	switch conf.Storage.Driver {
	case config.StorageDriverFile:
		return NewFileStorage(conf.Storage.Path), nil
	case config.StorageDriverMemory:
		return NewMemoryStorage(), nil
	case config.StorageDriverRedis:
		rdb, err := client.NewRedisClient(conf)
		if err != nil {
			return nil, err
		}
		return NewRedisStorage(rdb, deviceID(conf.Storage)), nil
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", conf.Storage.Driver)
	}
}

func deviceID(conf *config.Storage) string {
	if conf.DeviceID != "" {
		return conf.DeviceID
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return "default"
}
