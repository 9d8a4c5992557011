package vo

import (
	"time"

	"github.com/Xushengqwer/content_service/models/entities"
	"github.com/Xushengqwer/content_service/models/enums"
)

// UserVO 定义了用户的公开投影，绝不携带密码散列
type UserVO struct {
	ID        uint64         `json:"id"`
	Username  string         `json:"username"`
	Email     string         `json:"email"`
	Role      enums.UserRole `json:"role"`
	CreatedAt time.Time      `json:"createdAt"`
}

// NewUserVO 从实体构建公开投影
func NewUserVO(u *entities.User) *UserVO {
	return &UserVO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// TokenVO 登录成功后的令牌响应
type TokenVO struct {
	AccessToken string `json:"accessToken"`
	ExpiresAt   int64  `json:"expiresAt"` // Unix 秒
	User        UserVO `json:"user"`
}
