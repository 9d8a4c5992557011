package entities

// Subscription 订阅实体
// - 表名: subscriptions
// - AuthorID 与 CategoryID 至少填写其一，均为空的请求在服务层被拒绝
// - 组合唯一索引仅能兜底两个目标都填写的情况（MySQL 将 NULL 视为彼此不同），
//   含空成员的元组查重以应用层"只按已提供字段匹配"的探测为准
// - 删除走物理删除，退订后的元组立即可被重新订阅
type Subscription struct {
	BaseModel

	// 订阅者ID
	SubscriberID uint64 `gorm:"not null;index;uniqueIndex:idx_sub_target"`

	// 订阅的作者ID，可选
	AuthorID *uint64 `gorm:"uniqueIndex:idx_sub_target"`

	// 订阅的分类ID，可选
	CategoryID *uint64 `gorm:"uniqueIndex:idx_sub_target"`
}
