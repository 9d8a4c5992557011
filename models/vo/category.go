package vo

import (
	"time"

	"github.com/Xushengqwer/content_service/models/entities"
)

// CategoryVO 定义了分类的响应数据结构
type CategoryVO struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewCategoryVO 从实体构建响应结构
func NewCategoryVO(c *entities.Category) *CategoryVO {
	return &CategoryVO{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
