package core

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	ListenAddr     string `mapstructure:"listen_addr" json:"listen_addr" yaml:"listen_addr"`             // 监听地址，如 ":8080"
	Port           string `mapstructure:"port" json:"port" yaml:"port"`                                  // 端口（ListenAddr 为空时使用）
	RequestTimeout int    `mapstructure:"requestTimeout" json:"requestTimeout" yaml:"requestTimeout"`    // 请求超时（秒）
}

// TracerConfig 链路追踪配置
type TracerConfig struct {
	Enabled            bool    `mapstructure:"enabled" json:"enabled" yaml:"enabled"`
	ExporterType       string  `mapstructure:"exporter_type" json:"exporter_type" yaml:"exporter_type"`                      // 目前仅支持 otlp_http
	ExporterEndpoint   string  `mapstructure:"exporter_endpoint" json:"exporter_endpoint" yaml:"exporter_endpoint"`          // 如 "localhost:4318"
	SamplerType        string  `mapstructure:"sampler_type" json:"sampler_type" yaml:"sampler_type"`                         // always_on / ratio
	SamplerRatio       float64 `mapstructure:"sampler_ratio" json:"sampler_ratio" yaml:"sampler_ratio"`
	ExporterInsecure   bool    `mapstructure:"exporter_insecure" json:"exporter_insecure" yaml:"exporter_insecure"`
}

// JWTConfig 认证令牌配置
type JWTConfig struct {
	Secret        string `mapstructure:"secret" json:"secret" yaml:"secret"`
	Issuer        string `mapstructure:"issuer" json:"issuer" yaml:"issuer"`
	ExpireMinutes int    `mapstructure:"expireMinutes" json:"expireMinutes" yaml:"expireMinutes"`
}

// LoadConfig 从 YAML 文件加载配置到 cfg，并允许环境变量覆盖。
// 环境变量使用 "_" 分隔层级，如 SERVERCONFIG_PORT。
func LoadConfig(configPath string, cfg interface{}) error {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("读取配置文件 '%s' 失败: %w", configPath, err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("解析配置文件 '%s' 失败: %w", configPath, err)
	}
	return nil
}
