package events

import "time"

// 服务对外发布与消费的 Kafka 事件结构。
// 所有事件携带唯一 EventID 与产生时间，供下游去重与排序。

// PostPublishedEvent 帖子从未发布切换为已发布时发出
type PostPublishedEvent struct {
	EventID   string    `json:"eventId"`
	Timestamp time.Time `json:"timestamp"`
	PostID    uint64    `json:"postId"`
	AuthorID  uint64    `json:"authorId"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
}

// CommentCreatedEvent 评论创建成功后发出
type CommentCreatedEvent struct {
	EventID   string    `json:"eventId"`
	Timestamp time.Time `json:"timestamp"`
	CommentID uint64    `json:"commentId"`
	PostID    uint64    `json:"postId"`
	UserID    uint64    `json:"userId"`
}

// LikeCreatedEvent 点赞创建成功后发出
type LikeCreatedEvent struct {
	EventID   string    `json:"eventId"`
	Timestamp time.Time `json:"timestamp"`
	LikeID    uint64    `json:"likeId"`
	PostID    uint64    `json:"postId"`
	UserID    uint64    `json:"userId"`
}

// NotificationRequestEvent 外部系统请求创建通知的事件（本服务消费）
type NotificationRequestEvent struct {
	EventID   string    `json:"eventId"`
	Timestamp time.Time `json:"timestamp"`
	UserID    uint64    `json:"userId"`
	Message   string    `json:"message"`
}
