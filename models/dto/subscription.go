package dto

// CreateSubscriptionRequest 定义了创建订阅的请求数据结构
// - authorId 与 categoryId 至少提供其一
// - 非管理员的 subscriberId 必须是其本人
type CreateSubscriptionRequest struct {
	SubscriberID uint64  `json:"subscriberId" binding:"required"`
	AuthorID     *uint64 `json:"authorId" binding:"omitempty"`
	CategoryID   *uint64 `json:"categoryId" binding:"omitempty"`
}

// UpdateSubscriptionRequest 定义了更新订阅的请求数据结构
type UpdateSubscriptionRequest struct {
	SubscriberID *uint64 `json:"subscriberId" binding:"omitempty"`
	AuthorID     *uint64 `json:"authorId" binding:"omitempty"`
	CategoryID   *uint64 `json:"categoryId" binding:"omitempty"`
}

// ListSubscriptionsQuery 定义了订阅列表的过滤条件（仅管理员的过滤生效，
// 普通用户的列表始终被限定为本人的订阅）
type ListSubscriptionsQuery struct {
	SubscriberID *uint64 `form:"subscriberId" binding:"omitempty"`
	AuthorID     *uint64 `form:"authorId" binding:"omitempty"`
	CategoryID   *uint64 `form:"categoryId" binding:"omitempty"`
}
