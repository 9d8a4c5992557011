package entities

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel 所有实体共用的基础字段
// - ID 为自增主键；DeletedAt 启用软删除，删除后唯一索引仍占用对应值
type BaseModel struct {
	ID        uint64         `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
