package dto

// CreatePostRequest 定义了创建帖子的请求数据结构
// - 不接收 authorId，作者取自当前认证主体
// - 不接收 isPublished / viewsCount，由服务端初始化
// - slug 可选，缺省时由标题派生，提供时原样使用（仍做唯一性查重）
type CreatePostRequest struct {
	Title      string  `json:"title" binding:"required,max=255"` // 帖子标题，必填
	Slug       string  `json:"slug" binding:"omitempty,max=255"` // slug，可选
	Content    string  `json:"content" binding:"required"`       // 帖子内容，必填
	CategoryID *uint64 `json:"categoryId" binding:"omitempty"`   // 分类ID，可选
}

// UpdatePostRequest 定义了更新帖子的请求数据结构
// - 全部字段可选，仅更新提供的字段
// - 不包含 authorId，作者创建后不可变更
// - 提供 slug 时优先于标题派生，并排除自身做唯一性查重
type UpdatePostRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Slug        *string `json:"slug" binding:"omitempty,max=255"`
	Content     *string `json:"content" binding:"omitempty"`
	CategoryID  *uint64 `json:"categoryId" binding:"omitempty"`
	IsPublished *bool   `json:"isPublished" binding:"omitempty"`
}
