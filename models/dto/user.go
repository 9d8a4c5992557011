package dto

// RegisterRequest 定义了用户注册的请求数据结构
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"` // 用户名，必填
	Email    string `json:"email" binding:"required,email"`           // 邮箱，必填
	Password string `json:"password" binding:"required,min=6"`        // 密码，必填，至少6位
}

// LoginRequest 定义了用户登录的请求数据结构
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
