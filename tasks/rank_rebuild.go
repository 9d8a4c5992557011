package tasks

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/content_service/config"
	"github.com/Xushengqwer/content_service/constant"
	"github.com/Xushengqwer/content_service/pkg/core"
	"github.com/Xushengqwer/content_service/repo/mysql"
	"github.com/Xushengqwer/content_service/repo/redis"
)

// RankRebuildTask 负责定时用 MySQL 中的权威浏览量全量重建 Redis 排行榜。
// 实时路径上的 ZIncrBy 是尽力而为的，Redis 重启或写入失败会让榜单漂移，
// 周期性重建把榜单拉回与数据库一致的状态。
type RankRebuildTask struct {
	batchRepo mysql.PostBatchRepository
	rankRepo  redis.PostRankRepository
	batchSize int
	cron      *cron.Cron
	logger    *core.ZapLogger
}

// NewRankRebuildTask 初始化并启动排行榜重建的定时任务。
func NewRankRebuildTask(
	batchRepo mysql.PostBatchRepository,
	rankRepo redis.PostRankRepository,
	cfg config.RankSyncConfig,
	logger *core.ZapLogger,
) *RankRebuildTask {
	cronV3 := cron.New() // 默认分钟级精度

	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 500
	}

	task := &RankRebuildTask{
		batchRepo: batchRepo,
		rankRepo:  rankRepo,
		batchSize: batchSize,
		cron:      cronV3,
		logger:    logger,
	}
	task.startCronJob()
	return task
}

// startCronJob 配置并启动 cron 作业。
func (t *RankRebuildTask) startCronJob() {
	schedule := constant.RankRebuildCron
	t.logger.Info("准备启动排行榜重建定时任务", zap.String("schedule", schedule))

	entryID, err := t.cron.AddFunc(schedule, func() {
		t.logger.Info("排行榜重建任务开始执行...")
		startTime := time.Now()
		// 为单次任务执行设置超时，防止扫描卡死。
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		t.rebuildRank(ctx)

		duration := time.Since(startTime)
		t.logger.Info("排行榜重建任务执行完毕", zap.Duration("duration", duration))
	})

	if err != nil {
		t.logger.Fatal("添加排行榜重建 cron 作业失败", zap.Error(err), zap.String("schedule", schedule))
	}

	t.cron.Start()
	t.logger.Info("排行榜重建定时任务已启动", zap.Uint("cronEntryID", uint(entryID)))
}

// rebuildRank 按主键分批扫描 MySQL 的浏览量，汇总后整体替换 Redis 排行榜。
func (t *RankRebuildTask) rebuildRank(ctx context.Context) {
	counts := make(map[uint64]int64)
	var afterID uint64

	for {
		rows, err := t.batchRepo.ScanViewCounts(ctx, afterID, t.batchSize)
		if err != nil {
			t.logger.Error("扫描帖子浏览量失败，本次重建中止", zap.Error(err), zap.Uint64("after_id", afterID))
			return
		}
		if len(rows) == 0 {
			break
		}
		for _, row := range rows {
			counts[row.ID] = row.ViewsCount
		}
		afterID = rows[len(rows)-1].ID
	}

	if len(counts) == 0 {
		t.logger.Info("数据库中没有帖子，跳过排行榜替换")
		return
	}

	if err := t.rankRepo.ReplaceRank(ctx, counts); err != nil {
		t.logger.Error("替换 Redis 排行榜失败", zap.Error(err), zap.Int("帖子数量", len(counts)))
		return
	}
	t.logger.Info("排行榜重建完成", zap.Int("帖子数量", len(counts)))
}

// Stop 优雅地停止 cron 调度器。
// 返回一个 context，调用者可以使用它来等待正在运行的任务完成。
func (t *RankRebuildTask) Stop() context.Context {
	t.logger.Info("正在停止排行榜重建定时任务...")
	stopCtx := t.cron.Stop()
	t.logger.Info("排行榜重建定时任务已停止调度。等待正在执行的任务完成...")
	return stopCtx
}
