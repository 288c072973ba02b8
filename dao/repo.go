package dao

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"Tripnote/pkg/storage"
)

// ErrCorrupt 本地记录无法解析
var ErrCorrupt = errors.New("dao: corrupt record")

// Repo 单个 key 下的 JSON 记录
type Repo[T any] struct {
	Storage storage.Storage
	Key     string
}

func NewRepo[T any](s storage.Storage, key string) Repo[T] {
	return Repo[T]{Storage: s, Key: key}
}

// Get 记录不存在时返回 (nil, nil)
func (r *Repo[T]) Get(ctx context.Context) (*T, error) {
	raw, err := r.Storage.GetItem(ctx, r.Key)
	if errors.Is(err, storage.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, r.Key, err)
	}
	return &v, nil
}

func (r *Repo[T]) Set(ctx context.Context, v *T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.Storage.SetItem(ctx, r.Key, string(raw))
}

func (r *Repo[T]) Delete(ctx context.Context) error {
	return r.Storage.RemoveItem(ctx, r.Key)
}
