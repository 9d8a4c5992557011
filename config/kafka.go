package config

type KafkaConfig struct {
	Brokers         []string `mapstructure:"brokers" json:"brokers" yaml:"brokers"`
	Topics          Topics   `mapstructure:"topics" json:"topics" yaml:"topics"`
	ConsumerGroupID string   `mapstructure:"consumer_group_id" json:"consumer_group_id" yaml:"consumer_group_id"`
}

type Topics struct {
	PostPublished       string `mapstructure:"postPublished" yaml:"postPublished"`             // 帖子发布主题
	CommentCreated      string `mapstructure:"commentCreated" yaml:"commentCreated"`           // 评论创建主题
	LikeCreated         string `mapstructure:"likeCreated" yaml:"likeCreated"`                 // 点赞创建主题
	NotificationRequest string `mapstructure:"notificationRequest" yaml:"notificationRequest"` // 通知请求主题（消费）
}
