package vo

import (
	"time"

	"github.com/Xushengqwer/content_service/models/entities"
)

// LikeVO 定义了点赞的响应数据结构
type LikeVO struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"userId"`
	User      *UserVO   `json:"user,omitempty"`
	PostID    uint64    `json:"postId"`
	Post      *PostVO   `json:"post,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewLikeVO 从实体构建响应结构
func NewLikeVO(l *entities.Like) *LikeVO {
	return &LikeVO{
		ID:        l.ID,
		UserID:    l.UserID,
		PostID:    l.PostID,
		CreatedAt: l.CreatedAt,
	}
}

// LikeCheckVO 查询某用户是否点赞过某帖子的响应
type LikeCheckVO struct {
	Liked bool `json:"liked"`
}

// LikeCountVO 帖子点赞数的响应
type LikeCountVO struct {
	PostID uint64 `json:"postId"`
	Count  int64  `json:"count"`
}
