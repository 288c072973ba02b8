package types

import "Tripnote/models"

// SearchItem 搜索结果 + 作者
type SearchItem struct {
	models.SearchResult
	Author Author `json:"author"`
}
