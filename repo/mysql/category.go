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

// CategoryRepository 定义了分类数据在 MySQL 中的持久化操作接口。
type CategoryRepository interface {
	// CreateCategory 持久化一个新分类，slug 唯一索引冲突映射为 myErrors.ErrConflict。
	CreateCategory(ctx context.Context, category *entities.Category) error

	// GetCategoryByID 根据 ID 检索分类，未找到返回 myErrors.ErrNotFound。
	GetCategoryByID(ctx context.Context, id uint64) (*entities.Category, error)

	// GetCategoryBySlug 根据 slug 检索分类，未找到返回 myErrors.ErrNotFound。
	GetCategoryBySlug(ctx context.Context, slug string) (*entities.Category, error)

	// ListCategories 返回全部分类。
	ListCategories(ctx context.Context) ([]*entities.Category, error)

	// ExistsBySlug 探测 slug 是否已被占用，excludeID 非零时排除自身。
	ExistsBySlug(ctx context.Context, slug string, excludeID uint64) (bool, error)

	// UpdateCategory 按字段映射更新分类，未找到返回 myErrors.ErrNotFound。
	UpdateCategory(ctx context.Context, id uint64, updates map[string]interface{}) error

	// DeleteCategory 软删除分类，未找到返回 myErrors.ErrNotFound。
	DeleteCategory(ctx context.Context, id uint64) error
}

type categoryRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewCategoryRepository 是 categoryRepository 的构造函数。
func NewCategoryRepository(db *gorm.DB, logger *core.ZapLogger) CategoryRepository {
	return &categoryRepository{db: db, logger: logger}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category *entities.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("category with slug '%s' already exists: %w", category.Slug, myErrors.ErrConflict)
		}
		return err
	}
	return nil
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id uint64) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category with id %d not found: %w", id, myErrors.ErrNotFound)
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetCategoryBySlug(ctx context.Context, slug string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category with slug '%s' not found: %w", slug, myErrors.ErrNotFound)
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) ExistsBySlug(ctx context.Context, slug string, excludeID uint64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entities.Category{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, id uint64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).
		Model(&entities.Category{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("category slug already exists: %w", myErrors.ErrConflict)
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("category with id %d not found: %w", id, myErrors.ErrNotFound)
	}
	return nil
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&entities.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("category with id %d not found: %w", id, myErrors.ErrNotFound)
	}
	return nil
}
