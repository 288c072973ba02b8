package service

import (
	"context"
	"sync"

	"Tripnote/config"
	"Tripnote/models"
	"Tripnote/pkg/api"
	"Tripnote/types"
)

var _ IFeedService = (*FeedService)(nil)

type IFeedService interface {
	NewPager() *Pager
	Enrich(ctx context.Context, notes []models.Note) []types.NoteCard
}

type FeedService struct {
	Notes  api.INoteClient
	Loader *UserLoader
	Config *config.Config
}

func (s *FeedService) NewPager() *Pager {
	return NewPager(s.Notes, s.Config.Feed.PageSize, s.Config.Feed.Status)
}

// Enrich 每个作者只查一次，查不到的用占位作者
func (s *FeedService) Enrich(ctx context.Context, notes []models.Note) []types.NoteCard {
	ids := make([]string, 0, len(notes))
	for _, n := range notes {
		ids = append(ids, n.UserID)
	}
	authors := s.Loader.Authors(ctx, ids)

	cards := make([]types.NoteCard, 0, len(notes))
	for _, n := range notes {
		author, ok := authors[n.UserID]
		if !ok {
			author = s.Loader.PlaceholderAuthor(n.UserID)
		}
		cards = append(cards, types.NoteCard{Note: n, Author: author})
	}
	return cards
}

// Pager 游标分页，hasMore 为 false 后不再请求
type Pager struct {
	client api.INoteClient
	limit  int
	status string

	mu      sync.Mutex
	cursor  string
	hasMore bool
	loaded  int
}

func NewPager(client api.INoteClient, limit int, status string) *Pager {
	if limit <= 0 {
		limit = types.DefaultPageSize
	}
	return &Pager{client: client, limit: limit, status: status, hasMore: true}
}

// Next 拉下一页，没有更多时返回空切片
func (p *Pager) Next(ctx context.Context) ([]models.Note, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.hasMore {
		return []models.Note{}, nil
	}
	page, err := p.client.ListNotes(ctx, &types.ListNotesRequest{
		Type:   types.PaginationCursor,
		Cursor: p.cursor,
		Limit:  p.limit,
		Status: p.status,
	})
	if err != nil {
		return nil, err
	}
	p.cursor = page.NextCursor
	p.hasMore = page.HasMore
	p.loaded += len(page.Data)
	return page.Data, nil
}

func (p *Pager) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasMore
}

func (p *Pager) Cursor() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cursor
}

// Loaded 已加载的条数
func (p *Pager) Loaded() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loaded
}

// Reset 下拉刷新，从第一页开始
func (p *Pager) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cursor = ""
	p.hasMore = true
	p.loaded = 0
}

// Seek 从指定游标继续，命令行翻页时使用
func (p *Pager) Seek(cursor string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cursor = cursor
	p.hasMore = true
}
