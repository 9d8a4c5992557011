package config

// COSConfig 对象存储配置，用于帖子缩略图上传
type COSConfig struct {
	BucketURL  string `mapstructure:"bucketURL" json:"bucketURL" yaml:"bucketURL"`    // 形如 https://<bucket>-<appid>.cos.<region>.myqcloud.com
	SecretID   string `mapstructure:"secretID" json:"secretID" yaml:"secretID"`
	SecretKey  string `mapstructure:"secretKey" json:"secretKey" yaml:"secretKey"`
	PathPrefix string `mapstructure:"pathPrefix" json:"pathPrefix" yaml:"pathPrefix"` // 对象键前缀，如 "thumbnails/"
}
