// File: tasks/hot_posts_cache.go
package tasks

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/content_service/constant"
	"github.com/Xushengqwer/content_service/pkg/core"
	"github.com/Xushengqwer/content_service/service"
)

// HotPostsCacheTask 负责定时刷新 Redis 中的热门帖子缓存。
type HotPostsCacheTask struct {
	hotPostService service.HotPostService
	cron           *cron.Cron
	logger         *core.ZapLogger
}

// NewHotPostsCacheTask 初始化并启动热门帖子缓存的定时任务。
// - hotPostService: 热榜服务，负责回源与回填。
// - logger: ZapLogger 实例。
func NewHotPostsCacheTask(hotPostService service.HotPostService, logger *core.ZapLogger) *HotPostsCacheTask {
	cronV3 := cron.New() // 默认分钟级精度

	task := &HotPostsCacheTask{
		hotPostService: hotPostService,
		cron:           cronV3,
		logger:         logger,
	}
	task.startCronJob()
	return task
}

// startCronJob 配置并启动 cron 作业。
func (t *HotPostsCacheTask) startCronJob() {
	schedule := constant.HotPostsCacheCron
	t.logger.Info("准备启动热门帖子缓存刷新定时任务", zap.String("schedule", schedule))

	entryID, err := t.cron.AddFunc(schedule, func() {
		t.logger.Info("热门帖子缓存刷新任务开始执行...")
		startTime := time.Now()
		// 为单次任务执行设置超时，防止任务卡死。
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if err := t.hotPostService.RefreshHotPosts(ctx); err != nil {
			t.logger.Error("热门帖子缓存刷新失败", zap.Error(err))
		}

		duration := time.Since(startTime)
		t.logger.Info("热门帖子缓存刷新任务执行完毕", zap.Duration("duration", duration))
	})

	if err != nil {
		t.logger.Fatal("添加热门帖子缓存刷新 cron 作业失败", zap.Error(err), zap.String("schedule", schedule))
	}

	t.cron.Start()
	t.logger.Info("热门帖子缓存刷新定时任务已启动", zap.Uint("cronEntryID", uint(entryID)))
}

// Stop 优雅地停止 cron 调度器。
func (t *HotPostsCacheTask) Stop() context.Context {
	t.logger.Info("正在停止热门帖子缓存刷新定时任务...")
	stopCtx := t.cron.Stop()
	t.logger.Info("热门帖子缓存刷新定时任务已停止调度。等待正在执行的任务完成...")
	return stopCtx // 调用者可以使用此 context 等待任务结束
}
