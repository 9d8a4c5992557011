package vo

import (
	"time"

	"github.com/Xushengqwer/content_service/models/entities"
)

// SubscriptionVO 定义了订阅的响应数据结构
type SubscriptionVO struct {
	ID           uint64      `json:"id"`
	SubscriberID uint64      `json:"subscriberId"`
	Subscriber   *UserVO     `json:"subscriber,omitempty"`
	AuthorID     *uint64     `json:"authorId,omitempty"`
	Author       *UserVO     `json:"author,omitempty"`
	CategoryID   *uint64     `json:"categoryId,omitempty"`
	Category     *CategoryVO `json:"category,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// NewSubscriptionVO 从实体构建响应结构
func NewSubscriptionVO(s *entities.Subscription) *SubscriptionVO {
	return &SubscriptionVO{
		ID:           s.ID,
		SubscriberID: s.SubscriberID,
		AuthorID:     s.AuthorID,
		CategoryID:   s.CategoryID,
		CreatedAt:    s.CreatedAt,
	}
}

// SubscriptionCheckVO 查询某用户是否存在匹配订阅的响应
type SubscriptionCheckVO struct {
	Subscribed bool `json:"subscribed"`
}
