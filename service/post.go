package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Xushengqwer/content_service/dependencies"
	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/models/entities"
	"github.com/Xushengqwer/content_service/models/enums"
	"github.com/Xushengqwer/content_service/models/vo"
	"github.com/Xushengqwer/content_service/myErrors"
	"github.com/Xushengqwer/content_service/mq/producer"
	"github.com/Xushengqwer/content_service/pkg/core"
	"github.com/Xushengqwer/content_service/repo/mysql"
	"github.com/Xushengqwer/content_service/repo/redis"
)

// PostService 定义了帖子核心业务逻辑的接口。
// 所有变更操作接收当前主体 (principalID, role)，所有权裁决统一走 CanMutate。
type PostService interface {
	// CreatePost 创建帖子：作者取主体，slug 取显式传入值、缺省时由标题派生，均做唯一性查重，
	// 新帖子始终未发布、浏览量为零。
	CreatePost(ctx context.Context, principalID uint64, req *dto.CreatePostRequest) (*vo.PostVO, error)

	// ListPosts 返回全部帖子（含未发布），附带作者与分类投影。
	ListPosts(ctx context.Context) ([]*vo.PostVO, error)

	// ListPublishedPosts 仅返回已发布的帖子。
	ListPublishedPosts(ctx context.Context) ([]*vo.PostVO, error)

	// GetPostByID 按 ID 查询帖子并累加一次浏览量。
	GetPostByID(ctx context.Context, id uint64) (*vo.PostVO, error)

	// GetPostBySlug 按 slug 查询帖子并累加一次浏览量。
	GetPostBySlug(ctx context.Context, slug string) (*vo.PostVO, error)

	// IncrementViews 单独累加一次浏览量（匿名可用）。
	IncrementViews(ctx context.Context, id uint64) error

	// UpdatePost 更新帖子（本人或管理员）。显式 slug 优先生效，否则标题变化时重新派生，均排除自身查重；
	// 作者创建后不可变更；首次切换为已发布时发出帖子发布事件。
	UpdatePost(ctx context.Context, principalID uint64, role enums.UserRole, id uint64, req *dto.UpdatePostRequest) (*vo.PostVO, error)

	// DeletePost 删除帖子（本人或管理员）。
	DeletePost(ctx context.Context, principalID uint64, role enums.UserRole, id uint64) error

	// UploadThumbnail 上传帖子缩略图到对象存储并回填 URL（本人或管理员）。
	UploadThumbnail(ctx context.Context, principalID uint64, role enums.UserRole, id uint64, file *multipart.FileHeader) (*vo.PostVO, error)
}

type postService struct {
	postRepo     mysql.PostRepository
	userRepo     mysql.UserRepository
	categoryRepo mysql.CategoryRepository
	rankRepo     redis.PostRankRepository
	cosClient    dependencies.COSClientInterface
	kafkaSvc     *producer.KafkaProducer
	logger       *core.ZapLogger
}

// NewPostService 是 postService 的构造函数，通过依赖注入初始化服务实例。
func NewPostService(
	postRepo mysql.PostRepository,
	userRepo mysql.UserRepository,
	categoryRepo mysql.CategoryRepository,
	rankRepo redis.PostRankRepository,
	cosClient dependencies.COSClientInterface,
	kafkaSvc *producer.KafkaProducer,
	logger *core.ZapLogger,
) PostService {
	return &postService{
		postRepo:     postRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		rankRepo:     rankRepo,
		cosClient:    cosClient,
		kafkaSvc:     kafkaSvc,
		logger:       logger,
	}
}

func (s *postService) CreatePost(ctx context.Context, principalID uint64, req *dto.CreatePostRequest) (*vo.PostVO, error) {
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.GetCategoryByID(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
	}

	// 客户端显式提供的 slug 优先，缺省时由标题派生
	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Title)
	}
	if err := EnsureUniqueSlug(ctx, s.postRepo, "post", slug, 0); err != nil {
		return nil, err
	}

	post := &entities.Post{
		Title:       req.Title,
		Slug:        slug,
		Content:     req.Content,
		AuthorID:    principalID,
		CategoryID:  req.CategoryID,
		IsPublished: false,
		ViewsCount:  0,
	}
	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info("帖子创建成功",
		zap.Uint64("postID", post.ID),
		zap.Uint64("authorID", principalID),
		zap.String("slug", slug),
	)
	return s.resolvePost(ctx, post), nil
}

func (s *postService) ListPosts(ctx context.Context) ([]*vo.PostVO, error) {
	posts, err := s.postRepo.ListPosts(ctx, false)
	if err != nil {
		return nil, err
	}
	return s.resolvePosts(ctx, posts), nil
}

func (s *postService) ListPublishedPosts(ctx context.Context) ([]*vo.PostVO, error) {
	posts, err := s.postRepo.ListPosts(ctx, true)
	if err != nil {
		return nil, err
	}
	return s.resolvePosts(ctx, posts), nil
}

func (s *postService) GetPostByID(ctx context.Context, id uint64) (*vo.PostVO, error) {
	if err := s.bumpViews(ctx, id); err != nil {
		return nil, err
	}
	post, err := s.postRepo.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.resolvePost(ctx, post), nil
}

func (s *postService) GetPostBySlug(ctx context.Context, slug string) (*vo.PostVO, error) {
	post, err := s.postRepo.GetPostBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := s.bumpViews(ctx, post.ID); err != nil {
		return nil, err
	}
	post.ViewsCount++
	return s.resolvePost(ctx, post), nil
}

func (s *postService) IncrementViews(ctx context.Context, id uint64) error {
	return s.bumpViews(ctx, id)
}

// bumpViews 执行权威的 MySQL 原子自增，随后在请求上下文内顺带更新 Redis 排行榜。
// 排行榜失败只记录日志，不影响请求结果，权威计数始终以 MySQL 为准。
func (s *postService) bumpViews(ctx context.Context, id uint64) error {
	if err := s.postRepo.IncrementViews(ctx, id); err != nil {
		return err
	}

	if err := s.rankRepo.IncrRank(ctx, id); err != nil {
		s.logger.Warn("更新帖子浏览排行失败", zap.Error(err), zap.Uint64("postID", id))
	}
	return nil
}

func (s *postService) UpdatePost(ctx context.Context, principalID uint64, role enums.UserRole, id uint64, req *dto.UpdatePostRequest) (*vo.PostVO, error) {
	post, err := s.postRepo.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanMutate(principalID, role, post.AuthorID) {
		return nil, fmt.Errorf("you can only update your own posts: %w", myErrors.ErrForbidden)
	}

	updates := make(map[string]interface{})
	if req.Title != nil && *req.Title != post.Title {
		updates["title"] = *req.Title
	}

	// 显式 slug 优先；否则标题变化时重新派生
	switch {
	case req.Slug != nil && *req.Slug != "" && *req.Slug != post.Slug:
		if err := EnsureUniqueSlug(ctx, s.postRepo, "post", *req.Slug, id); err != nil {
			return nil, err
		}
		updates["slug"] = *req.Slug
	case req.Slug == nil && req.Title != nil && *req.Title != post.Title:
		slug := Slugify(*req.Title)
		if err := EnsureUniqueSlug(ctx, s.postRepo, "post", slug, id); err != nil {
			return nil, err
		}
		updates["slug"] = slug
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.GetCategoryByID(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		updates["category_id"] = *req.CategoryID
	}

	justPublished := false
	if req.IsPublished != nil && *req.IsPublished != post.IsPublished {
		updates["is_published"] = *req.IsPublished
		justPublished = *req.IsPublished && !post.IsPublished
	}

	if len(updates) > 0 {
		if err := s.postRepo.UpdatePost(ctx, id, updates); err != nil {
			return nil, err
		}
	}

	updated, err := s.postRepo.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if justPublished && s.kafkaSvc != nil {
		if sendErr := s.kafkaSvc.SendPostPublishedEvent(ctx, updated.ID, updated.AuthorID, updated.Title, updated.Slug); sendErr != nil {
			s.logger.Warn("帖子发布事件发送失败", zap.Error(sendErr), zap.Uint64("postID", updated.ID))
		}
	}
	return s.resolvePost(ctx, updated), nil
}

func (s *postService) DeletePost(ctx context.Context, principalID uint64, role enums.UserRole, id uint64) error {
	post, err := s.postRepo.GetPostByID(ctx, id)
	if err != nil {
		return err
	}
	if !CanMutate(principalID, role, post.AuthorID) {
		return fmt.Errorf("you can only delete your own posts: %w", myErrors.ErrForbidden)
	}

	if err := s.postRepo.DeletePost(ctx, id); err != nil {
		return err
	}
	s.logger.Info("帖子删除成功", zap.Uint64("postID", id), zap.Uint64("operatorID", principalID))
	return nil
}

func (s *postService) UploadThumbnail(ctx context.Context, principalID uint64, role enums.UserRole, id uint64, file *multipart.FileHeader) (*vo.PostVO, error) {
	post, err := s.postRepo.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanMutate(principalID, role, post.AuthorID) {
		return nil, fmt.Errorf("you can only update your own posts: %w", myErrors.ErrForbidden)
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("opening uploaded file: %w", err)
	}
	defer src.Close()

	objectKey := s.thumbnailObjectKey(id, file.Filename)
	contentType := file.Header.Get("Content-Type")
	url, err := s.cosClient.UploadFile(ctx, objectKey, src, file.Size, contentType)
	if err != nil {
		return nil, err
	}

	if err := s.postRepo.UpdatePost(ctx, id, map[string]interface{}{"thumbnail": url}); err != nil {
		return nil, err
	}

	post.Thumbnail = url
	return s.resolvePost(ctx, post), nil
}

// thumbnailObjectKey 生成缩略图在对象存储中的唯一键：thumbnails/YYYYMMDD/postID_uuid.ext
func (s *postService) thumbnailObjectKey(postID uint64, originalFilename string) string {
	datePrefix := time.Now().Format("20060102")
	extension := strings.ToLower(filepath.Ext(originalFilename))
	return fmt.Sprintf("thumbnails/%s/%d_%s%s", datePrefix, postID, uuid.NewString(), extension)
}

// resolvePost 填充单个帖子的作者与分类投影。
// 引用解析失败（作者或分类已被删除）只记录日志，投影保持为空。
func (s *postService) resolvePost(ctx context.Context, post *entities.Post) *vo.PostVO {
	result := vo.NewPostVO(post)

	if author, err := s.userRepo.GetUserByID(ctx, post.AuthorID); err == nil {
		result.Author = vo.NewUserVO(author)
	} else if !errors.Is(err, myErrors.ErrNotFound) {
		s.logger.Warn("解析帖子作者失败", zap.Error(err), zap.Uint64("postID", post.ID))
	}

	if post.CategoryID != nil {
		if category, err := s.categoryRepo.GetCategoryByID(ctx, *post.CategoryID); err == nil {
			result.Category = vo.NewCategoryVO(category)
		} else if !errors.Is(err, myErrors.ErrNotFound) {
			s.logger.Warn("解析帖子分类失败", zap.Error(err), zap.Uint64("postID", post.ID))
		}
	}
	return result
}

func (s *postService) resolvePosts(ctx context.Context, posts []*entities.Post) []*vo.PostVO {
	result := make([]*vo.PostVO, 0, len(posts))
	for _, p := range posts {
		result = append(result, s.resolvePost(ctx, p))
	}
	return result
}
