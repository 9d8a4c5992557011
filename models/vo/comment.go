package vo

import (
	"time"

	"github.com/Xushengqwer/content_service/models/entities"
)

// CommentVO 定义了评论的响应数据结构
type CommentVO struct {
	ID          uint64    `json:"id"`
	PostID      uint64    `json:"postId"`
	UserID      uint64    `json:"userId"`
	User        *UserVO   `json:"user,omitempty"`
	CommentText string    `json:"commentText"`
	IsApproved  bool      `json:"isApproved"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewCommentVO 从实体构建响应结构
func NewCommentVO(c *entities.Comment) *CommentVO {
	return &CommentVO{
		ID:          c.ID,
		PostID:      c.PostID,
		UserID:      c.UserID,
		CommentText: c.CommentText,
		IsApproved:  c.IsApproved,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
