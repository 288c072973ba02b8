package service

import (
	"context"
	"errors"
	"strings"

	"Tripnote/config"
	"Tripnote/dao"
	"Tripnote/pkg/api"
	"Tripnote/pkg/log"
	"Tripnote/pkg/utils"
	"Tripnote/types"

	"go.uber.org/zap"
)

var _ ISearchService = (*SearchService)(nil)

type ISearchService interface {
	Search(ctx context.Context, keyword string) ([]types.SearchItem, error)
	History(ctx context.Context) ([]string, error)
	ClearHistory(ctx context.Context) error
}

type SearchService struct {
	Notes      api.INoteClient
	Loader     *UserLoader
	HistoryDAO *dao.SearchHistoryDAO
	Config     *config.Config
}

// Search 空关键词直接返回；接口失败时返回空结果和错误
func (s *SearchService) Search(ctx context.Context, keyword string) ([]types.SearchItem, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return []types.SearchItem{}, nil
	}
	if err := s.record(ctx, keyword); err != nil {
		log.L.Warn("save search history", zap.Error(err))
	}

	results, err := s.Notes.Search(ctx, keyword)
	if err != nil {
		return []types.SearchItem{}, err
	}

	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.UserID)
	}
	authors := s.Loader.Authors(ctx, ids)

	items := make([]types.SearchItem, 0, len(results))
	for _, r := range results {
		item := types.SearchItem{SearchResult: r}
		if a, ok := authors[r.UserID]; ok {
			item.Author = a
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *SearchService) History(ctx context.Context) ([]string, error) {
	items, err := s.HistoryDAO.List(ctx)
	if errors.Is(err, dao.ErrCorrupt) {
		log.L.Warn("discard corrupt search history", zap.Error(err))
		return []string{}, nil
	}
	return items, err
}

func (s *SearchService) ClearHistory(ctx context.Context) error {
	return s.HistoryDAO.Clear(ctx)
}

func (s *SearchService) record(ctx context.Context, keyword string) error {
	items, err := s.History(ctx)
	if err != nil {
		return err
	}
	return s.HistoryDAO.Save(ctx, pushHistory(items, keyword, s.Config.Search.HistoryMax))
}

// pushHistory 最近的放最前，去重，最多保留 limit 条
func pushHistory(items []string, keyword string, limit int) []string {
	out := append([]string{keyword}, utils.Remove(items, keyword)...)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
