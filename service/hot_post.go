package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Xushengqwer/content_service/constant"
	"github.com/Xushengqwer/content_service/models/vo"
	"github.com/Xushengqwer/content_service/myErrors"
	"github.com/Xushengqwer/content_service/pkg/core"
	"github.com/Xushengqwer/content_service/repo/mysql"
	"github.com/Xushengqwer/content_service/repo/redis"
)

// HotPostService 定义了热门帖子查询的业务逻辑接口。
// 优先读 Redis 缓存，未命中时回源 MySQL（按权威浏览量排序）并回填缓存。
// 缓存只用于展示加速，任何不变量都不依赖它。
type HotPostService interface {
	// GetHotPosts 返回当前热门帖子列表。
	GetHotPosts(ctx context.Context) ([]*vo.PostVO, error)

	// RefreshHotPosts 从 MySQL 取浏览量 Top N 刷新缓存，由定时任务调用。
	RefreshHotPosts(ctx context.Context) error
}

type hotPostService struct {
	cacheRepo redis.PostCacheRepository
	batchRepo mysql.PostBatchRepository
	logger    *core.ZapLogger
}

// NewHotPostService 是 hotPostService 的构造函数。
func NewHotPostService(
	cacheRepo redis.PostCacheRepository,
	batchRepo mysql.PostBatchRepository,
	logger *core.ZapLogger,
) HotPostService {
	return &hotPostService{
		cacheRepo: cacheRepo,
		batchRepo: batchRepo,
		logger:    logger,
	}
}

func (s *hotPostService) GetHotPosts(ctx context.Context) ([]*vo.PostVO, error) {
	posts, err := s.cacheRepo.GetHotPosts(ctx)
	if err == nil {
		return posts, nil
	}
	if !errors.Is(err, myErrors.ErrCacheMiss) {
		// 缓存故障时照常回源，只记录日志
		s.logger.Warn("读取热门帖子缓存失败，回源数据库", zap.Error(err))
	}

	fresh, err := s.loadFromStore(ctx)
	if err != nil {
		return nil, err
	}

	if setErr := s.cacheRepo.SetHotPosts(ctx, fresh); setErr != nil {
		s.logger.Warn("回填热门帖子缓存失败", zap.Error(setErr))
	}
	return fresh, nil
}

func (s *hotPostService) RefreshHotPosts(ctx context.Context) error {
	fresh, err := s.loadFromStore(ctx)
	if err != nil {
		return err
	}
	return s.cacheRepo.SetHotPosts(ctx, fresh)
}

func (s *hotPostService) loadFromStore(ctx context.Context) ([]*vo.PostVO, error) {
	posts, err := s.batchRepo.GetTopPostsByViews(ctx, constant.HotPostsCacheSize)
	if err != nil {
		return nil, err
	}

	result := make([]*vo.PostVO, 0, len(posts))
	for _, p := range posts {
		result = append(result, vo.NewPostVO(p))
	}
	return result, nil
}
