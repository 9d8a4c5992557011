package entities

// Comment 评论实体
// - 表名: comments
// - 新评论默认未审核，公开列表只返回已审核的评论
type Comment struct {
	BaseModel

	// 所属帖子ID
	PostID uint64 `gorm:"not null;index"`

	// 评论者ID，创建时取自当前主体
	UserID uint64 `gorm:"not null;index"`

	// 评论内容
	CommentText string `gorm:"type:text;not null"`

	// 是否已通过审核，仅管理员可置为 true
	IsApproved bool `gorm:"not null;default:false"`
}
