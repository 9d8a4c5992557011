package vo

import (
	"time"

	"github.com/Xushengqwer/content_service/models/entities"
)

// PostVO 定义了帖子的响应数据结构
// - Author / Category 为按需解析的投影，列表接口统一填充
type PostVO struct {
	ID          uint64      `json:"id"`
	Title       string      `json:"title"`
	Slug        string      `json:"slug"`
	Content     string      `json:"content"`
	Thumbnail   string      `json:"thumbnail,omitempty"`
	AuthorID    uint64      `json:"authorId"`
	Author      *UserVO     `json:"author,omitempty"`
	CategoryID  *uint64     `json:"categoryId,omitempty"`
	Category    *CategoryVO `json:"category,omitempty"`
	IsPublished bool        `json:"isPublished"`
	ViewsCount  int64       `json:"viewsCount"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// NewPostVO 从实体构建响应结构
func NewPostVO(p *entities.Post) *PostVO {
	return &PostVO{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Content:     p.Content,
		Thumbnail:   p.Thumbnail,
		AuthorID:    p.AuthorID,
		CategoryID:  p.CategoryID,
		IsPublished: p.IsPublished,
		ViewsCount:  p.ViewsCount,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
