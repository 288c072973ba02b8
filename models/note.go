package models

import (
	"errors"

	"github.com/tidwall/gjson"
)

const NoteStatusApproved = "approved"

// Note 游记
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Image     []string  `json:"image"`
	Video     string    `json:"video,omitempty"`
	Status    string    `json:"status"`
	CreatedAt string    `json:"createdAt"`
	Comments  []Comment `json:"comments"`
}

func (n *Note) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return ErrInvalidJSON
	}
	r := gjson.ParseBytes(data)
	if !r.IsObject() {
		return errors.New("note: expected json object")
	}

	*n = Note{
		ID:        r.Get("id").String(),
		UserID:    first(r, "user_id", "userId", "user-id").String(),
		Title:     r.Get("title").String(),
		Content:   first(r, "content", "description").String(),
		Image:     stringsOf(first(r, "image", "images")),
		Video:     r.Get("video").String(),
		Status:    r.Get("status").String(),
		CreatedAt: first(r, "createdAt", "created_at").String(),
		Comments:  make([]Comment, 0),
	}
	for _, c := range r.Get("comments").Array() {
		var comment Comment
		if err := comment.UnmarshalJSON([]byte(c.Raw)); err != nil {
			return err
		}
		n.Comments = append(n.Comments, comment)
	}
	return nil
}

// Cover 封面，取第一张图
func (n *Note) Cover() string {
	if len(n.Image) == 0 {
		return ""
	}
	return n.Image[0]
}

func (n *Note) HasVideo() bool {
	return n.Video != ""
}
