package myErrors

import "errors"

// 领域错误分类。
// 各个 Service 在变更数据前先行查询，将失败归类为以下哨兵错误之一，
// 并通过 fmt.Errorf("... %w") 附带标识信息（ID 或 slug）后向上传播。
// HTTP 边界层使用 errors.Is 将其映射为对应的状态码，其余错误一律视为内部错误。
var (
	// ErrNotFound 表示按 ID 或 slug 查询的记录不存在
	ErrNotFound = errors.New("record not found")

	// ErrConflict 表示唯一性约束冲突（slug、点赞对、订阅元组）
	// 或必填字段组合非法（如订阅既无 authorId 也无 categoryId）
	ErrConflict = errors.New("conflict")

	// ErrForbidden 表示已认证的主体对该资源无操作权限。
	// 注意：错误信息中不携带资源细节，避免泄露。
	ErrForbidden = errors.New("forbidden")

	// ErrValidation 表示请求载荷未通过业务校验
	ErrValidation = errors.New("validation failed")
)

// ErrCacheMiss 表示在缓存层未找到对应的键值
var ErrCacheMiss = errors.New("cache: key not found (miss)")
