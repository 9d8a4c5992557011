package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/content_service/constant"
	"github.com/Xushengqwer/content_service/models/vo"
	"github.com/Xushengqwer/content_service/myErrors"
	"github.com/Xushengqwer/content_service/pkg/core"
)

// hotPostsCacheTTL 兜底过期时间，刷新任务停摆时缓存不会永久陈旧
const hotPostsCacheTTL = 30 * time.Minute

// PostCacheRepository 定义了热门帖子列表缓存的操作接口。
// - 缓存未命中返回 myErrors.ErrCacheMiss，上层服务需要处理回源。
type PostCacheRepository interface {
	// SetHotPosts 将热门帖子列表序列化为 JSON 后整体写入缓存。
	SetHotPosts(ctx context.Context, posts []*vo.PostVO) error

	// GetHotPosts 读取热门帖子列表缓存。
	GetHotPosts(ctx context.Context) ([]*vo.PostVO, error)
}

type postCacheRepository struct {
	redisClient *redis.Client
	logger      *core.ZapLogger
}

// NewPostCacheRepository 是 postCacheRepository 的构造函数。
func NewPostCacheRepository(redisClient *redis.Client, logger *core.ZapLogger) PostCacheRepository {
	return &postCacheRepository{redisClient: redisClient, logger: logger}
}

func (r *postCacheRepository) SetHotPosts(ctx context.Context, posts []*vo.PostVO) error {
	payload, err := json.Marshal(posts)
	if err != nil {
		return err
	}
	if err := r.redisClient.Set(ctx, constant.HotPostsCacheKey, payload, hotPostsCacheTTL).Err(); err != nil {
		r.logger.Error("写入热门帖子缓存失败", zap.Error(err))
		return err
	}
	return nil
}

func (r *postCacheRepository) GetHotPosts(ctx context.Context) ([]*vo.PostVO, error) {
	payload, err := r.redisClient.Get(ctx, constant.HotPostsCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, myErrors.ErrCacheMiss
		}
		return nil, err
	}

	var posts []*vo.PostVO
	if err := json.Unmarshal(payload, &posts); err != nil {
		r.logger.Error("反序列化热门帖子缓存失败", zap.Error(err))
		return nil, err
	}
	return posts, nil
}
