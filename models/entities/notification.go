package entities

// Notification 通知实体
// - 表名: notifications
type Notification struct {
	BaseModel

	// 接收者ID
	UserID uint64 `gorm:"not null;index"`

	// 通知内容
	Message string `gorm:"type:varchar(500);not null"`

	// 是否已读
	IsRead bool `gorm:"not null;default:false"`
}
