package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/models/enums"
	"github.com/Xushengqwer/content_service/mq/events"
	"github.com/Xushengqwer/content_service/myErrors"
	"github.com/Xushengqwer/content_service/pkg/core"
	"github.com/Xushengqwer/content_service/service"
)

// NotificationRequestHandler 消费通知请求事件，落库为站内通知。
// 事件来自平台内部（发帖、评论、点赞的下游扇出），以系统身份写入。
type NotificationRequestHandler struct {
	logger              *core.ZapLogger
	notificationService service.NotificationService
}

func NewNotificationRequestHandler(logger *core.ZapLogger, notificationService service.NotificationService) *NotificationRequestHandler {
	return &NotificationRequestHandler{
		logger:              logger,
		notificationService: notificationService,
	}
}

func (h *NotificationRequestHandler) Handle(ctx context.Context, msg kafka.Message) error {
	h.logger.Debug("NotificationRequestHandler: 开始处理 Kafka 消息", zap.String("topic", msg.Topic))

	var event events.NotificationRequestEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.Error("NotificationRequestHandler: 反序列化 Kafka 消息失败", zap.Error(err), zap.ByteString("value", msg.Value))
		return nil // 不重试无法解析的消息
	}

	h.logger.Info("NotificationRequestHandler: 成功解析通知请求",
		zap.String("event_id", event.EventID),
		zap.Uint64("user_id", event.UserID))

	req := &dto.CreateNotificationRequest{
		UserID:  event.UserID,
		Message: event.Message,
	}

	createCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// 系统投递以管理员身份写入，跳过自有性校验
	_, err := h.notificationService.CreateNotification(createCtx, event.UserID, enums.RoleAdmin, req)
	if err != nil {
		if errors.Is(err, myErrors.ErrNotFound) {
			h.logger.Warn("NotificationRequestHandler: 目标用户不存在，丢弃通知", zap.Uint64("user_id", event.UserID))
			return nil // 不再重试
		}
		h.logger.Error("NotificationRequestHandler: 创建通知失败", zap.Error(err), zap.Uint64("user_id", event.UserID))
		return fmt.Errorf("NotificationRequestHandler: 调用 CreateNotification 失败: %w", err)
	}

	h.logger.Info("NotificationRequestHandler: 通知已写入", zap.Uint64("user_id", event.UserID))
	return nil
}
