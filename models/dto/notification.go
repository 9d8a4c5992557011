package dto

// CreateNotificationRequest 定义了创建通知的请求数据结构
// - 普通用户只能为自己创建，管理员可为任意用户创建
type CreateNotificationRequest struct {
	UserID  uint64 `json:"userId" binding:"required"`
	Message string `json:"message" binding:"required,max=500"`
}

// UpdateNotificationRequest 定义了更新通知的请求数据结构
type UpdateNotificationRequest struct {
	Message *string `json:"message" binding:"omitempty,max=500"`
	IsRead  *bool   `json:"isRead" binding:"omitempty"`
}
