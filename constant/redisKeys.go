package constant

// Redis Key 相关常量 (导出)
const (
	// PostsRankKey 是全局帖子浏览量排行榜的 Key 名称。
	// 成员是帖子 ID，分数是浏览量。每次浏览通过 ZINCRBY 累加，
	// 定时任务会用 MySQL 中的权威计数重建该榜单。
	// Redis 类型: Sorted Set
	PostsRankKey = "content:post_rank"

	// HotPostsCacheKey 是热门帖子列表缓存的 Key 名称。
	// 由定时任务取排行榜 Top N 后从 MySQL 批量查出并序列化为 JSON 写入。
	// Redis 类型: String (JSON 数组)
	HotPostsCacheKey = "content:hot_posts"
)
