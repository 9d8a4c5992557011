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

// CommentRepository 定义了评论数据在 MySQL 中的持久化操作接口。
type CommentRepository interface {
	// CreateComment 持久化一条新评论。
	CreateComment(ctx context.Context, comment *entities.Comment) error

	// GetCommentByID 根据 ID 检索评论，未找到返回 myErrors.ErrNotFound。
	GetCommentByID(ctx context.Context, id uint64) (*entities.Comment, error)

	// ListComments 返回全部评论，最新优先。
	ListComments(ctx context.Context) ([]*entities.Comment, error)

	// ListApprovedByPostID 返回指定帖子下已审核通过的评论，最新优先。
	ListApprovedByPostID(ctx context.Context, postID uint64) ([]*entities.Comment, error)

	// ListPending 返回全部待审核评论，最新优先。
	ListPending(ctx context.Context) ([]*entities.Comment, error)

	// UpdateComment 按字段映射更新评论，未找到返回 myErrors.ErrNotFound。
	UpdateComment(ctx context.Context, id uint64, updates map[string]interface{}) error

	// DeleteComment 软删除评论，未找到返回 myErrors.ErrNotFound。
	DeleteComment(ctx context.Context, id uint64) error
}

type commentRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewCommentRepository 是 commentRepository 的构造函数。
func NewCommentRepository(db *gorm.DB, logger *core.ZapLogger) CommentRepository {
	return &commentRepository{db: db, logger: logger}
}

func (r *commentRepository) CreateComment(ctx context.Context, comment *entities.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) GetCommentByID(ctx context.Context, id uint64) (*entities.Comment, error) {
	var comment entities.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("comment with id %d not found: %w", id, myErrors.ErrNotFound)
		}
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListComments(ctx context.Context) ([]*entities.Comment, error) {
	var comments []*entities.Comment
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) ListApprovedByPostID(ctx context.Context, postID uint64) ([]*entities.Comment, error) {
	var comments []*entities.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ? AND is_approved = ?", postID, true).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) ListPending(ctx context.Context) ([]*entities.Comment, error) {
	var comments []*entities.Comment
	err := r.db.WithContext(ctx).
		Where("is_approved = ?", false).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) UpdateComment(ctx context.Context, id uint64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).
		Model(&entities.Comment{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("comment with id %d not found: %w", id, myErrors.ErrNotFound)
	}
	return nil
}

func (r *commentRepository) DeleteComment(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&entities.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("comment with id %d not found: %w", id, myErrors.ErrNotFound)
	}
	return nil
}
