package config

// RedisConfig Redis 连接配置
type RedisConfig struct {
	Address  string `mapstructure:"address" json:"address" yaml:"address"`
	Password string `mapstructure:"password" json:"password" yaml:"password"`
	DB       int    `mapstructure:"db" json:"db" yaml:"db"`
	PoolSize int    `mapstructure:"poolSize" json:"poolSize" yaml:"poolSize"`
}

// RankSyncConfig 排行榜重建任务相关的配置
type RankSyncConfig struct {
	// BatchSize 是从 MySQL 分批读取帖子浏览量时每批的行数。
	// 重建任务会按该批次大小遍历全表，将权威计数写回 Redis 排行榜。
	BatchSize int `mapstructure:"batchSize" json:"batchSize" yaml:"batchSize"`
}
