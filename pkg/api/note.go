package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"Tripnote/models"
	"Tripnote/pkg/apperr"
	"Tripnote/types"

	"github.com/tidwall/gjson"
)

var _ INoteClient = (*Client)(nil)

// INoteClient 笔记、评论、搜索接口
type INoteClient interface {
	ListNotes(ctx context.Context, req *types.ListNotesRequest) (*types.NotesPage, error)
	ListUserNotes(ctx context.Context, userID string) ([]models.Note, error)
	GetNoteDetail(ctx context.Context, id string) (*models.Note, error)
	AddComment(ctx context.Context, req *types.AddCommentRequest) (*models.Comment, error)
	Search(ctx context.Context, keyword string) ([]models.SearchResult, error)
}

// ListNotes 游标分页，cursor 为空表示第一页
func (c *Client) ListNotes(ctx context.Context, req *types.ListNotesRequest) (*types.NotesPage, error) {
	q := url.Values{"type": {types.PaginationCursor}}
	if req.Cursor != "" {
		q.Set("cursor", req.Cursor)
	}
	if req.Limit > 0 {
		q.Set("limit", strconv.Itoa(req.Limit))
	}
	if req.Status != "" {
		q.Set("status", req.Status)
	}

	res, err := c.do(ctx, http.MethodGet, "/api/notes", q, nil)
	if err != nil {
		return nil, err
	}

	page := &types.NotesPage{Data: make([]models.Note, 0)}
	for _, item := range list(res) {
		var note models.Note
		if err := decode(item, &note); err != nil {
			return nil, err
		}
		page.Data = append(page.Data, note)
	}
	if res.IsObject() {
		// nextCursor 可能是数字也可能是字符串
		page.NextCursor = res.Get("nextCursor").String()
		page.HasMore = res.Get("hasMore").Bool() && page.NextCursor != ""
	}
	return page, nil
}

// ListUserNotes 某个用户的全部笔记
func (c *Client) ListUserNotes(ctx context.Context, userID string) ([]models.Note, error) {
	res, err := c.do(ctx, http.MethodGet, "/api/notes", url.Values{"user_id": {userID}}, nil)
	if err != nil {
		return nil, err
	}
	notes := make([]models.Note, 0)
	for _, item := range list(res) {
		var note models.Note
		if err := decode(item, &note); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, nil
}

// GetNoteDetail 笔记详情，包含评论
func (c *Client) GetNoteDetail(ctx context.Context, id string) (*models.Note, error) {
	res, err := c.do(ctx, http.MethodGet, "/api/notedetail", url.Values{"id": {id}}, nil)
	if err != nil {
		return nil, err
	}
	r, ok := single(res)
	if !ok {
		return nil, apperr.NotFound("游记不存在")
	}
	var note models.Note
	if err := decode(r, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// AddComment 添加评论
func (c *Client) AddComment(ctx context.Context, req *types.AddCommentRequest) (*models.Comment, error) {
	res, err := c.do(ctx, http.MethodPost, "/api/comments", nil, req)
	if err != nil {
		return nil, err
	}
	r, ok := single(res)
	if !ok {
		return nil, apperr.Network(0, "评论失败", nil)
	}
	var comment models.Comment
	if err := decode(r, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// Search 关键词搜索
func (c *Client) Search(ctx context.Context, keyword string) ([]models.SearchResult, error) {
	res, err := c.do(ctx, http.MethodGet, "/api/search", url.Values{"keyword": {keyword}}, nil)
	if err != nil {
		return nil, err
	}
	items := list(res)
	results := make([]models.SearchResult, 0, len(items))
	for _, item := range items {
		results = append(results, models.SearchResult{
			ID:          item.Get("id").String(),
			UserID:      item.Get("user_id").String(),
			Title:       item.Get("title").String(),
			Description: item.Get("description").String(),
			Image:       stringsOf(item.Get("image")),
			Video:       item.Get("video").String(),
			Type:        item.Get("type").String(),
			CreatedAt:   item.Get("created_at").String(),
		})
	}
	return results, nil
}

func stringsOf(r gjson.Result) []string {
	if r.IsArray() {
		arr := r.Array()
		out := make([]string, 0, len(arr))
		for _, v := range arr {
			out = append(out, v.String())
		}
		return out
	}
	if r.String() != "" {
		return []string{r.String()}
	}
	return []string{}
}
