package entities

// Category 分类实体
// - 表名: categories
type Category struct {
	BaseModel

	// 分类名称
	Name string `gorm:"type:varchar(100);not null"`

	// slug，由名称派生，全局唯一
	Slug string `gorm:"type:varchar(120);not null;uniqueIndex"`
}
