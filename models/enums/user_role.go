package enums

// UserRole 用户角色，鉴权判定的唯一依据
// - 存储为字符串，与 JWT claims 中的 role 字段保持一致
type UserRole string

const (
	// RoleUser 普通用户，仅能操作属于自己的资源
	RoleUser UserRole = "user"
	// RoleAdmin 管理员，可绕过所有权检查并执行全局管理操作（审核评论、代他人创建通知等）
	RoleAdmin UserRole = "admin"
)

// Valid 校验角色取值是否合法
func (r UserRole) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}
