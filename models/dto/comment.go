package dto

// CreateCommentRequest 定义了创建评论的请求数据结构
// - userId 取自当前主体，不接收传入
// - isApproved 允许传入，但非管理员传 true 会被静默降级为 false
type CreateCommentRequest struct {
	PostID      uint64 `json:"postId" binding:"required"`
	CommentText string `json:"commentText" binding:"required"`
	IsApproved  bool   `json:"isApproved"`
}

// UpdateCommentRequest 定义了更新评论的请求数据结构
// - 非管理员仅 commentText 生效，其余字段被静默丢弃
type UpdateCommentRequest struct {
	CommentText *string `json:"commentText" binding:"omitempty"`
	IsApproved  *bool   `json:"isApproved" binding:"omitempty"`
}
