package models

import (
	"errors"

	"github.com/tidwall/gjson"
)

// Comment 评论，只追加，不修改不删除
type Comment struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

func (c *Comment) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return ErrInvalidJSON
	}
	r := gjson.ParseBytes(data)
	if !r.IsObject() {
		return errors.New("comment: expected json object")
	}
	*c = Comment{
		ID:        r.Get("id").String(),
		UserID:    first(r, "user_id", "user-id", "userId").String(),
		Content:   r.Get("content").String(),
		CreatedAt: first(r, "createdAt", "created_at").String(),
	}
	return nil
}
