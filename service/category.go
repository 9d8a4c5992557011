package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/models/entities"
	"github.com/Xushengqwer/content_service/models/vo"
	"github.com/Xushengqwer/content_service/pkg/core"
	"github.com/Xushengqwer/content_service/repo/mysql"
)

// CategoryService 定义了分类管理的业务逻辑接口。
// 分类的增删改只要求已认证，不做所有权区分。
type CategoryService interface {
	// CreateCategory 创建分类，slug 取显式传入值、缺省时由名称派生，被占用时返回 ErrConflict。
	CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*vo.CategoryVO, error)

	// ListCategories 返回全部分类。
	ListCategories(ctx context.Context) ([]*vo.CategoryVO, error)

	// GetCategoryByID 按 ID 查询分类，未找到返回 ErrNotFound。
	GetCategoryByID(ctx context.Context, id uint64) (*vo.CategoryVO, error)

	// GetCategoryBySlug 按 slug 查询分类，未找到返回 ErrNotFound。
	GetCategoryBySlug(ctx context.Context, slug string) (*vo.CategoryVO, error)

	// UpdateCategory 更新分类。显式 slug 优先生效，否则名称变化时重新派生，均排除自身查重。
	UpdateCategory(ctx context.Context, id uint64, req *dto.UpdateCategoryRequest) (*vo.CategoryVO, error)

	// DeleteCategory 删除分类。帖子与订阅中指向该分类的引用保持原样，
	// 读取时解析失败的引用以空投影呈现。
	DeleteCategory(ctx context.Context, id uint64) error
}

type categoryService struct {
	categoryRepo mysql.CategoryRepository
	logger       *core.ZapLogger
}

// NewCategoryService 是 categoryService 的构造函数。
func NewCategoryService(categoryRepo mysql.CategoryRepository, logger *core.ZapLogger) CategoryService {
	return &categoryService{categoryRepo: categoryRepo, logger: logger}
}

func (s *categoryService) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*vo.CategoryVO, error) {
	// 客户端显式提供的 slug 优先，缺省时由名称派生
	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Name)
	}
	if err := EnsureUniqueSlug(ctx, s.categoryRepo, "category", slug, 0); err != nil {
		return nil, err
	}

	category := &entities.Category{
		Name: req.Name,
		Slug: slug,
	}
	if err := s.categoryRepo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info("分类创建成功", zap.Uint64("categoryID", category.ID), zap.String("slug", slug))
	return vo.NewCategoryVO(category), nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]*vo.CategoryVO, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*vo.CategoryVO, 0, len(categories))
	for _, c := range categories {
		result = append(result, vo.NewCategoryVO(c))
	}
	return result, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id uint64) (*vo.CategoryVO, error) {
	category, err := s.categoryRepo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return vo.NewCategoryVO(category), nil
}

func (s *categoryService) GetCategoryBySlug(ctx context.Context, slug string) (*vo.CategoryVO, error) {
	category, err := s.categoryRepo.GetCategoryBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return vo.NewCategoryVO(category), nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id uint64, req *dto.UpdateCategoryRequest) (*vo.CategoryVO, error) {
	category, err := s.categoryRepo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil && *req.Name != category.Name {
		updates["name"] = *req.Name
	}

	// 显式 slug 优先；否则名称变化时重新派生
	switch {
	case req.Slug != nil && *req.Slug != "" && *req.Slug != category.Slug:
		if err := EnsureUniqueSlug(ctx, s.categoryRepo, "category", *req.Slug, id); err != nil {
			return nil, err
		}
		updates["slug"] = *req.Slug
	case req.Slug == nil && req.Name != nil && *req.Name != category.Name:
		slug := Slugify(*req.Name)
		if err := EnsureUniqueSlug(ctx, s.categoryRepo, "category", slug, id); err != nil {
			return nil, err
		}
		updates["slug"] = slug
	}

	if len(updates) > 0 {
		if err := s.categoryRepo.UpdateCategory(ctx, id, updates); err != nil {
			return nil, err
		}
	}
	return s.GetCategoryByID(ctx, id)
}

func (s *categoryService) DeleteCategory(ctx context.Context, id uint64) error {
	if err := s.categoryRepo.DeleteCategory(ctx, id); err != nil {
		return err
	}
	s.logger.Info("分类删除成功", zap.Uint64("categoryID", id))
	return nil
}
