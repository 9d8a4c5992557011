package service

import "github.com/Xushengqwer/content_service/models/enums"

// 所有权判定策略。
// 纯函数只给出"允许/拒绝"的裁决，不产生错误也不接触存储，
// 由调用方决定把拒绝翻译成 myErrors.ErrForbidden。
// 每一个涉及归属的变更操作都必须经过这里，禁止在各服务内散落角色判断。

// IsAdmin 判定主体是否为管理员
func IsAdmin(role enums.UserRole) bool {
	return role == enums.RoleAdmin
}

// CanMutate 判定主体能否变更属于 ownerID 的资源：本人或管理员
func CanMutate(principalID uint64, role enums.UserRole, ownerID uint64) bool {
	return principalID == ownerID || IsAdmin(role)
}
