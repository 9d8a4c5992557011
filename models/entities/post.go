package entities

// Post 帖子实体
// - 表名: posts
// - slug 携带唯一索引，是应用层查重之外的存储级兜底
type Post struct {
	BaseModel

	// 标题，必填
	Title string `gorm:"type:varchar(255);not null"`

	// slug，由标题派生的 URL 标识，全局唯一
	Slug string `gorm:"type:varchar(255);not null;uniqueIndex"`

	// 正文内容
	Content string `gorm:"type:text;not null"`

	// 缩略图 URL，上传到对象存储后回填
	Thumbnail string `gorm:"type:varchar(512)"`

	// 作者ID，创建时取自当前主体，此后不可变更
	AuthorID uint64 `gorm:"not null;index"`

	// 分类ID，可选外键
	CategoryID *uint64 `gorm:"index"`

	// 是否已发布，新帖子默认未发布
	IsPublished bool `gorm:"not null;default:false"`

	// 浏览量，仅通过原子自增更新，避免读改写竞态
	ViewsCount int64 `gorm:"not null;default:0"`
}
