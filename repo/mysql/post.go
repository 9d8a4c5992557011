package mysql

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/content_service/models/entities"
	"github.com/Xushengqwer/content_service/myErrors"
	"github.com/Xushengqwer/content_service/pkg/core"
)

// PostRepository 定义了帖子数据在 MySQL 中的持久化操作接口。
// 接口的设计旨在将数据访问逻辑与业务逻辑（服务层）解耦。
type PostRepository interface {
	// CreatePost 持久化一个新的帖子记录。
	// - slug 唯一索引冲突（并发竞态下绕过了应用层查重）映射为 myErrors.ErrConflict。
	CreatePost(ctx context.Context, post *entities.Post) error

	// GetPostByID 根据 ID 检索帖子，未找到返回 myErrors.ErrNotFound。
	GetPostByID(ctx context.Context, id uint64) (*entities.Post, error)

	// GetPostBySlug 根据 slug 检索帖子，未找到返回 myErrors.ErrNotFound。
	GetPostBySlug(ctx context.Context, slug string) (*entities.Post, error)

	// ListPosts 返回帖子列表，onlyPublished 为 true 时仅返回已发布的帖子。
	ListPosts(ctx context.Context, onlyPublished bool) ([]*entities.Post, error)

	// ExistsBySlug 探测 slug 是否已被占用。
	// - excludeID 非零时排除该 ID 自身，用于更新时的查重。
	ExistsBySlug(ctx context.Context, slug string, excludeID uint64) (bool, error)

	// UpdatePost 按字段映射更新指定帖子，未找到返回 myErrors.ErrNotFound。
	// - 调用方负责决定哪些字段进入 updates，author_id 永远不在其中。
	UpdatePost(ctx context.Context, postID uint64, updates map[string]interface{}) error

	// IncrementViews 对浏览量执行原子自增（SQL 层 views_count = views_count + 1），
	// 避免读改写竞态，帖子不存在时返回 myErrors.ErrNotFound。
	IncrementViews(ctx context.Context, postID uint64) error

	// DeletePost 对指定帖子执行软删除，未找到返回 myErrors.ErrNotFound。
	DeletePost(ctx context.Context, id uint64) error
}

// postRepository 是 PostRepository 接口针对 MySQL 的具体实现。
type postRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewPostRepository 是 postRepository 的构造函数。
func NewPostRepository(db *gorm.DB, logger *core.ZapLogger) PostRepository {
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

func (r *postRepository) CreatePost(ctx context.Context, post *entities.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("post with slug '%s' already exists: %w", post.Slug, myErrors.ErrConflict)
		}
		r.logger.Error("创建帖子数据库操作失败", zap.Error(err), zap.String("slug", post.Slug))
		return err
	}
	return nil
}

func (r *postRepository) GetPostByID(ctx context.Context, id uint64) (*entities.Post, error) {
	var post entities.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("post with id %d not found: %w", id, myErrors.ErrNotFound)
		}
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) GetPostBySlug(ctx context.Context, slug string) (*entities.Post, error) {
	var post entities.Post
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("post with slug '%s' not found: %w", slug, myErrors.ErrNotFound)
		}
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) ListPosts(ctx context.Context, onlyPublished bool) ([]*entities.Post, error) {
	var posts []*entities.Post
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if onlyPublished {
		query = query.Where("is_published = ?", true)
	}
	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) ExistsBySlug(ctx context.Context, slug string, excludeID uint64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entities.Post{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *postRepository) UpdatePost(ctx context.Context, postID uint64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&entities.Post{}).
		Where("id = ?", postID).
		Updates(updates)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("post slug already exists: %w", myErrors.ErrConflict)
		}
		r.logger.Error("更新帖子数据库操作失败",
			zap.Error(result.Error),
			zap.Uint64("postID", postID),
		)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("post with id %d not found: %w", postID, myErrors.ErrNotFound)
	}
	return nil
}

func (r *postRepository) IncrementViews(ctx context.Context, postID uint64) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Post{}).
		Where("id = ?", postID).
		UpdateColumn("views_count", gorm.Expr("views_count + ?", 1))

	if result.Error != nil {
		r.logger.Error("帖子浏览量自增失败", zap.Error(result.Error), zap.Uint64("postID", postID))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("post with id %d not found: %w", postID, myErrors.ErrNotFound)
	}
	return nil
}

func (r *postRepository) DeletePost(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&entities.Post{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("post with id %d not found: %w", id, myErrors.ErrNotFound)
	}
	return nil
}
