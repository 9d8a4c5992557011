package vo

import (
	"time"

	"github.com/Xushengqwer/content_service/models/entities"
)

// NotificationVO 定义了通知的响应数据结构
type NotificationVO struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"userId"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewNotificationVO 从实体构建响应结构
func NewNotificationVO(n *entities.Notification) *NotificationVO {
	return &NotificationVO{
		ID:        n.ID,
		UserID:    n.UserID,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// MarkAllReadVO 批量已读操作的完成响应
type MarkAllReadVO struct {
	Updated int64 `json:"updated"` // 本次被置为已读的条数
}
