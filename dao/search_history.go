package dao

import (
	"context"

	"Tripnote/pkg/storage"
)

const SearchHistoryKey = "user_search_history"

// SearchHistoryDAO 搜索历史，最近的在前
type SearchHistoryDAO struct {
	Repo[[]string]
}

func NewSearchHistoryDAO(s storage.Storage) *SearchHistoryDAO {
	return &SearchHistoryDAO{Repo: NewRepo[[]string](s, SearchHistoryKey)}
}

// List 记录不存在或损坏都按空历史处理
func (d *SearchHistoryDAO) List(ctx context.Context) ([]string, error) {
	v, err := d.Get(ctx)
	if err != nil || v == nil {
		return []string{}, err
	}
	return *v, nil
}

func (d *SearchHistoryDAO) Save(ctx context.Context, items []string) error {
	return d.Set(ctx, &items)
}

func (d *SearchHistoryDAO) Clear(ctx context.Context) error {
	return d.Delete(ctx)
}
