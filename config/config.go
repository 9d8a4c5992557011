package config

import "github.com/Xushengqwer/content_service/pkg/core"

// AppConfig 服务的聚合配置，由 core.LoadConfig 从 YAML + 环境变量填充
type AppConfig struct {
	ZapConfig      core.ZapConfig     `mapstructure:"zapConfig" json:"zapConfig" yaml:"zapConfig"`
	GormLogConfig  core.GormLogConfig `mapstructure:"gormLogConfig" json:"gormLogConfig" yaml:"gormLogConfig"`
	ServerConfig   core.ServerConfig  `mapstructure:"serverConfig" json:"serverConfig" yaml:"serverConfig"`
	TracerConfig   core.TracerConfig  `mapstructure:"tracerConfig" json:"tracerConfig" yaml:"tracerConfig"`
	JWTConfig      core.JWTConfig     `mapstructure:"jwtConfig" json:"jwtConfig" yaml:"jwtConfig"`
	MySQLConfig    MySQLConfig        `mapstructure:"mysqlConfig" json:"mysqlConfig" yaml:"mysqlConfig"`
	RedisConfig    RedisConfig        `mapstructure:"redisConfig" json:"redisConfig" yaml:"redisConfig"`
	KafkaConfig    KafkaConfig        `mapstructure:"kafkaConfig" json:"kafkaConfig" yaml:"kafkaConfig"`
	COSConfig      COSConfig          `mapstructure:"thumbnailCosConfig" json:"thumbnailCosConfig" yaml:"thumbnailCosConfig"`
	RankSyncConfig RankSyncConfig     `mapstructure:"rankSyncConfig" json:"rankSyncConfig" yaml:"rankSyncConfig"`
}
