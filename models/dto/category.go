package dto

// CreateCategoryRequest 定义了创建分类的请求数据结构
// - slug 可选，缺省时由名称派生，提供时原样使用（仍做唯一性查重）
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"` // 分类名称，必填
	Slug string `json:"slug" binding:"omitempty,max=100"` // slug，可选
}

// UpdateCategoryRequest 定义了更新分类的请求数据结构
// - 提供 slug 时优先于名称派生，并排除自身做唯一性查重
type UpdateCategoryRequest struct {
	Name *string `json:"name" binding:"omitempty,max=100"`
	Slug *string `json:"slug" binding:"omitempty,max=100"`
}
