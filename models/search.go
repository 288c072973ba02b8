package models

const (
	SearchTypePost        = "post"
	SearchTypeDestination = "destination"
	SearchTypeUser        = "user"
)

// SearchResult 搜索结果项
type SearchResult struct {
	ID          string   `json:"id"`
	UserID      string   `json:"user_id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Image       []string `json:"image"`
	Video       string   `json:"video,omitempty"`
	Type        string   `json:"type"`
	CreatedAt   string   `json:"created_at,omitempty"`
}
