package entities

import "github.com/Xushengqwer/content_service/models/enums"

// User 用户实体
// - 表名: users
// - username 与 email 各自携带唯一索引
type User struct {
	BaseModel

	// 用户名，全局唯一
	Username string `gorm:"type:varchar(50);not null;uniqueIndex"`

	// 邮箱，全局唯一
	Email string `gorm:"type:varchar(255);not null;uniqueIndex"`

	// 密码散列（bcrypt），任何对外投影都不得携带
	Password string `gorm:"type:varchar(100);not null"`

	// 角色，user 或 admin
	Role enums.UserRole `gorm:"type:varchar(16);not null;default:user"`
}
