package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Xushengqwer/content_service/models/entities"
	"github.com/Xushengqwer/content_service/myErrors"
	"github.com/Xushengqwer/content_service/pkg/core"
)

// LikeRepository 定义了点赞数据在 MySQL 中的持久化操作接口。
type LikeRepository interface {
	// CreateLike 持久化一条点赞。
	// - (user_id, post_id) 组合唯一索引冲突映射为 myErrors.ErrConflict，
	//   兜底并发下绕过应用层查重的重复点赞。
	CreateLike(ctx context.Context, like *entities.Like) error

	// GetLikeByID 根据 ID 检索点赞，未找到返回 myErrors.ErrNotFound。
	GetLikeByID(ctx context.Context, id uint64) (*entities.Like, error)

	// GetLikeByUserAndPost 按 (userID, postID) 组合检索点赞，未找到返回 myErrors.ErrNotFound。
	GetLikeByUserAndPost(ctx context.Context, userID, postID uint64) (*entities.Like, error)

	// ListLikes 返回全部点赞。
	ListLikes(ctx context.Context) ([]*entities.Like, error)

	// ListLikesByPostID 返回指定帖子下的全部点赞。
	ListLikesByPostID(ctx context.Context, postID uint64) ([]*entities.Like, error)

	// ListLikesByUserID 返回指定用户的全部点赞。
	ListLikesByUserID(ctx context.Context, userID uint64) ([]*entities.Like, error)

	// CountLikesByPostID 返回指定帖子的点赞数。
	CountLikesByPostID(ctx context.Context, postID uint64) (int64, error)

	// DeleteLike 按 ID 物理删除点赞，未找到返回 myErrors.ErrNotFound。
	// 取消点赞后 (user_id, post_id) 组合即告释放，重新点赞必须成功。
	DeleteLike(ctx context.Context, id uint64) error

	// DeleteLikeByUserAndPost 按 (userID, postID) 组合物理删除点赞，未找到返回 myErrors.ErrNotFound。
	DeleteLikeByUserAndPost(ctx context.Context, userID, postID uint64) error
}

type likeRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewLikeRepository 是 likeRepository 的构造函数。
func NewLikeRepository(db *gorm.DB, logger *core.ZapLogger) LikeRepository {
	return &likeRepository{db: db, logger: logger}
}

func (r *likeRepository) CreateLike(ctx context.Context, like *entities.Like) error {
	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("user has already liked this post: %w", myErrors.ErrConflict)
		}
		return err
	}
	return nil
}

func (r *likeRepository) GetLikeByID(ctx context.Context, id uint64) (*entities.Like, error) {
	var like entities.Like
	if err := r.db.WithContext(ctx).First(&like, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("like with id %d not found: %w", id, myErrors.ErrNotFound)
		}
		return nil, err
	}
	return &like, nil
}

func (r *likeRepository) GetLikeByUserAndPost(ctx context.Context, userID, postID uint64) (*entities.Like, error) {
	var like entities.Like
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("like for user %d and post %d not found: %w", userID, postID, myErrors.ErrNotFound)
		}
		return nil, err
	}
	return &like, nil
}

func (r *likeRepository) ListLikes(ctx context.Context) ([]*entities.Like, error) {
	var likes []*entities.Like
	if err := r.db.WithContext(ctx).Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

func (r *likeRepository) ListLikesByPostID(ctx context.Context, postID uint64) ([]*entities.Like, error) {
	var likes []*entities.Like
	if err := r.db.WithContext(ctx).Where("post_id = ?", postID).Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

func (r *likeRepository) ListLikesByUserID(ctx context.Context, userID uint64) ([]*entities.Like, error) {
	var likes []*entities.Like
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

func (r *likeRepository) CountLikesByPostID(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *likeRepository) DeleteLike(ctx context.Context, id uint64) error {
	// 物理删除：软删除的行仍占用 (user_id, post_id) 唯一索引，会让重新点赞永远撞 Conflict
	result := r.db.WithContext(ctx).Unscoped().Delete(&entities.Like{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("like with id %d not found: %w", id, myErrors.ErrNotFound)
	}
	return nil
}

func (r *likeRepository) DeleteLikeByUserAndPost(ctx context.Context, userID, postID uint64) error {
	result := r.db.WithContext(ctx).
		Unscoped().
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&entities.Like{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("like for user %d and post %d not found: %w", userID, postID, myErrors.ErrNotFound)
	}
	return nil
}
