package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/content_service/config"
	"github.com/Xushengqwer/content_service/mq/events"
	"github.com/Xushengqwer/content_service/pkg/core"
)

// KafkaProducer Kafka 消息生产者
type KafkaProducer struct {
	writer *kafka.Writer
	logger *core.ZapLogger
	topics config.Topics
}

// NewKafkaProducer 创建一个新的 Kafka 生产者实例
func NewKafkaProducer(cfg config.KafkaConfig, logger *core.ZapLogger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers...),
		Balancer: &kafka.LeastBytes{},
	}
	return &KafkaProducer{
		writer: writer,
		logger: logger,
		topics: cfg.Topics,
	}
}

// SendEvent 发送事件到指定 Kafka 主题
func (p *KafkaProducer) SendEvent(ctx context.Context, topic string, event interface{}) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal event", zap.Error(err), zap.String("topic", topic))
		return err
	}

	p.logger.Debug("Sending Kafka message",
		zap.String("topic", topic),
		zap.ByteString("payload", eventBytes))

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Value: eventBytes,
	})
	if err != nil {
		p.logger.Error("Failed to write Kafka message", zap.Error(err), zap.String("topic", topic))
	}
	return err
}

// SendPostPublishedEvent 帖子发布事件，供搜索、推荐等下游消费
func (p *KafkaProducer) SendPostPublishedEvent(ctx context.Context, postID, authorID uint64, title, slug string) error {
	event := events.PostPublishedEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		PostID:    postID,
		AuthorID:  authorID,
		Title:     title,
		Slug:      slug,
	}
	return p.SendEvent(ctx, p.topics.PostPublished, event)
}

// SendCommentCreatedEvent 评论创建事件
func (p *KafkaProducer) SendCommentCreatedEvent(ctx context.Context, commentID, postID, userID uint64) error {
	event := events.CommentCreatedEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		CommentID: commentID,
		PostID:    postID,
		UserID:    userID,
	}
	return p.SendEvent(ctx, p.topics.CommentCreated, event)
}

// SendLikeCreatedEvent 点赞创建事件
func (p *KafkaProducer) SendLikeCreatedEvent(ctx context.Context, likeID, postID, userID uint64) error {
	event := events.LikeCreatedEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		LikeID:    likeID,
		PostID:    postID,
		UserID:    userID,
	}
	return p.SendEvent(ctx, p.topics.LikeCreated, event)
}

// Close 关闭底层 writer，在服务优雅停机时调用
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}
