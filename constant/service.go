package constant

// 服务级常量
const (
	// ServiceName 服务名，用于链路追踪与日志标识
	ServiceName = "content_service"

	// ServiceVersion 服务版本号
	ServiceVersion = "v1.0.0"
)

// 定时任务相关常量
const (
	// HotPostsCacheCron 热门帖子缓存刷新任务的 cron 表达式（每 5 分钟）
	HotPostsCacheCron = "*/5 * * * *"

	// RankRebuildCron 排行榜重建任务的 cron 表达式（每小时整点）
	RankRebuildCron = "0 * * * *"

	// HotPostsCacheSize 热门帖子缓存的条目数量
	HotPostsCacheSize = 20
)
