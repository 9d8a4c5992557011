package redis

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/content_service/constant"
	"github.com/Xushengqwer/content_service/pkg/core"
)

// PostRankRepository 定义了帖子浏览量排行榜在 Redis 中的操作接口。
// - 排行榜是展示用途的旁路数据，MySQL 中的 views_count 才是权威计数，
//   因此这里的写入都是尽力而为，失败只记录日志不阻断请求。
type PostRankRepository interface {
	// IncrRank 将指定帖子在排行榜 ZSet 中的分数加一。
	IncrRank(ctx context.Context, postID uint64) error

	// TopN 返回排行榜分数最高的前 n 个帖子 ID（降序）。
	TopN(ctx context.Context, n int64) ([]uint64, error)

	// ReplaceRank 用给定的 (帖子ID -> 浏览量) 全量替换排行榜。
	// 由重建任务调用，写入临时 Key 后 RENAME，避免读到半成品榜单。
	ReplaceRank(ctx context.Context, counts map[uint64]int64) error
}

type postRankRepository struct {
	redisClient *redis.Client
	logger      *core.ZapLogger
}

// NewPostRankRepository 是 postRankRepository 的构造函数。
func NewPostRankRepository(redisClient *redis.Client, logger *core.ZapLogger) PostRankRepository {
	return &postRankRepository{redisClient: redisClient, logger: logger}
}

func (r *postRankRepository) IncrRank(ctx context.Context, postID uint64) error {
	member := strconv.FormatUint(postID, 10)
	if err := r.redisClient.ZIncrBy(ctx, constant.PostsRankKey, 1, member).Err(); err != nil {
		r.logger.Warn("更新帖子排行榜分数失败", zap.Error(err), zap.Uint64("postID", postID))
		return err
	}
	return nil
}

func (r *postRankRepository) TopN(ctx context.Context, n int64) ([]uint64, error) {
	if n <= 0 {
		return []uint64{}, nil
	}
	members, err := r.redisClient.ZRevRange(ctx, constant.PostsRankKey, 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(members))
	for _, m := range members {
		id, parseErr := strconv.ParseUint(m, 10, 64)
		if parseErr != nil {
			r.logger.Warn("排行榜中存在非法成员，已跳过", zap.String("member", m))
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *postRankRepository) ReplaceRank(ctx context.Context, counts map[uint64]int64) error {
	tmpKey := constant.PostsRankKey + ":rebuild"

	pipe := r.redisClient.TxPipeline()
	pipe.Del(ctx, tmpKey)
	if len(counts) > 0 {
		members := make([]redis.Z, 0, len(counts))
		for id, views := range counts {
			members = append(members, redis.Z{
				Score:  float64(views),
				Member: strconv.FormatUint(id, 10),
			})
		}
		pipe.ZAdd(ctx, tmpKey, members...)
		pipe.Rename(ctx, tmpKey, constant.PostsRankKey)
	} else {
		pipe.Del(ctx, constant.PostsRankKey)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("全量替换帖子排行榜失败", zap.Error(err), zap.Int("entries", len(counts)))
		return err
	}
	return nil
}
