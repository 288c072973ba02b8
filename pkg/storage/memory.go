package storage

import (
	"context"

	cmap "github.com/orcaman/concurrent-map/v2"
)

// MemoryStorage 进程内存储，进程退出即丢失
type MemoryStorage struct {
	items cmap.ConcurrentMap[string, string]
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{items: cmap.New[string]()}
}

func (m *MemoryStorage) GetItem(_ context.Context, key string) (string, error) {
	v, ok := m.items.Get(key)
	if !ok {
		return "", ErrNotExist
	}
	return v, nil
}

func (m *MemoryStorage) SetItem(_ context.Context, key, value string) error {
	m.items.Set(key, value)
	return nil
}

func (m *MemoryStorage) RemoveItem(_ context.Context, key string) error {
	m.items.Remove(key)
	return nil
}

func (m *MemoryStorage) Keys() []string {
	return m.items.Keys()
}
