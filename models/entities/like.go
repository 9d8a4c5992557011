package entities

// Like 点赞实体
// - 表名: likes
// - (user_id, post_id) 组合唯一索引保证同一用户对同一帖子至多一条点赞，
//   与应用层的先查后插共同构成双重防线
// - 删除走物理删除：组合唯一索引不含 deleted_at，软删除的行会把组合占死，
//   导致取消点赞后无法重新点赞
type Like struct {
	BaseModel

	UserID uint64 `gorm:"not null;uniqueIndex:idx_user_post"`
	PostID uint64 `gorm:"not null;uniqueIndex:idx_user_post"`
}
