package dto

// CreateLikeRequest 定义了点赞的请求数据结构
// - userId 取自当前主体
type CreateLikeRequest struct {
	PostID uint64 `json:"postId" binding:"required"`
}
