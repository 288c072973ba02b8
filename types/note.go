package types

import "Tripnote/models"

const (
	DefaultPageSize = 7
	PaginationCursor = "cursor"
)

// ListNotesRequest 游标分页拉取笔记
type ListNotesRequest struct {
	Type   string `form:"type"`
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit"`
	Status string `form:"status"`
	UserID string `form:"user_id"`
}

// NotesPage 一页笔记
type NotesPage struct {
	Data       []models.Note `json:"data"`
	NextCursor string        `json:"nextCursor"`
	HasMore    bool          `json:"hasMore"`
}

// NoteCard 首页瀑布流卡片：笔记 + 作者
type NoteCard struct {
	Note   models.Note `json:"note"`
	Author Author      `json:"author"`
}

// Author 列表里展示的作者信息，拉取失败时为占位数据
type Author struct {
	ID          string `json:"id"`
	Nickname    string `json:"nickname"`
	Avatar      string `json:"avatar"`
	Placeholder bool   `json:"placeholder"`
}

// NoteDetail 详情页数据
type NoteDetail struct {
	Note         *models.Note            `json:"note"`
	Author       *models.User            `json:"author,omitempty"`
	IsFollowing  bool                    `json:"isFollowing"`
	CommentUsers map[string]*models.User `json:"commentUsers"`
}

type AddCommentRequest struct {
	NoteID  string `json:"noteId" binding:"required"`
	UserID  string `json:"userId" binding:"required"`
	Content string `json:"content" binding:"required"`
}
