package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/models/entities"
	"github.com/Xushengqwer/content_service/models/enums"
	"github.com/Xushengqwer/content_service/models/vo"
	"github.com/Xushengqwer/content_service/myErrors"
	"github.com/Xushengqwer/content_service/pkg/core"
	"github.com/Xushengqwer/content_service/repo/mysql"
)

// NotificationService 定义了通知的业务逻辑接口。
// 通知只通过本接口创建，点赞和评论不会隐式产生通知；
// 外部系统经由 Kafka 通知请求主题触发 CreateNotification。
type NotificationService interface {
	// CreateNotification 创建通知：普通用户只能为自己创建，管理员可为任意用户创建。
	CreateNotification(ctx context.Context, principalID uint64, role enums.UserRole, req *dto.CreateNotificationRequest) (*vo.NotificationVO, error)

	// ListNotifications 列出通知：管理员可见全量，
	// 非管理员的结果被静默限定为本人的通知（不报错）。
	ListNotifications(ctx context.Context, principalID uint64, role enums.UserRole) ([]*vo.NotificationVO, error)

	// ListUnreadNotifications 返回主体本人的未读通知。
	ListUnreadNotifications(ctx context.Context, principalID uint64) ([]*vo.NotificationVO, error)

	// GetNotificationByID 查询单条通知（本人或管理员）。
	GetNotificationByID(ctx context.Context, principalID uint64, role enums.UserRole, id uint64) (*vo.NotificationVO, error)

	// MarkAsRead 将单条通知置为已读（本人或管理员），幂等。
	MarkAsRead(ctx context.Context, principalID uint64, role enums.UserRole, id uint64) (*vo.NotificationVO, error)

	// MarkAllAsRead 将主体本人的全部未读通知置为已读，幂等，仅返回完成情况。
	MarkAllAsRead(ctx context.Context, principalID uint64) (*vo.MarkAllReadVO, error)

	// UpdateNotification 更新通知（本人或管理员）。
	UpdateNotification(ctx context.Context, principalID uint64, role enums.UserRole, id uint64, req *dto.UpdateNotificationRequest) (*vo.NotificationVO, error)

	// DeleteNotification 删除通知（本人或管理员）。
	DeleteNotification(ctx context.Context, principalID uint64, role enums.UserRole, id uint64) error
}

type notificationService struct {
	notificationRepo mysql.NotificationRepository
	userRepo         mysql.UserRepository
	logger           *core.ZapLogger
}

// NewNotificationService 是 notificationService 的构造函数。
func NewNotificationService(
	notificationRepo mysql.NotificationRepository,
	userRepo mysql.UserRepository,
	logger *core.ZapLogger,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

func (s *notificationService) CreateNotification(ctx context.Context, principalID uint64, role enums.UserRole, req *dto.CreateNotificationRequest) (*vo.NotificationVO, error) {
	if !IsAdmin(role) && req.UserID != principalID {
		return nil, fmt.Errorf("you can only create notifications for yourself: %w", myErrors.ErrForbidden)
	}
	if _, err := s.userRepo.GetUserByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	n := &entities.Notification{
		UserID:  req.UserID,
		Message: req.Message,
		IsRead:  false,
	}
	if err := s.notificationRepo.CreateNotification(ctx, n); err != nil {
		return nil, err
	}

	s.logger.Info("通知创建成功", zap.Uint64("notificationID", n.ID), zap.Uint64("userID", n.UserID))
	return vo.NewNotificationVO(n), nil
}

func (s *notificationService) ListNotifications(ctx context.Context, principalID uint64, role enums.UserRole) ([]*vo.NotificationVO, error) {
	var (
		list []*entities.Notification
		err  error
	)
	if IsAdmin(role) {
		list, err = s.notificationRepo.ListNotifications(ctx)
	} else {
		list, err = s.notificationRepo.ListNotificationsByUserID(ctx, principalID)
	}
	if err != nil {
		return nil, err
	}
	return toNotificationVOs(list), nil
}

func (s *notificationService) ListUnreadNotifications(ctx context.Context, principalID uint64) ([]*vo.NotificationVO, error) {
	list, err := s.notificationRepo.ListUnreadByUserID(ctx, principalID)
	if err != nil {
		return nil, err
	}
	return toNotificationVOs(list), nil
}

func (s *notificationService) GetNotificationByID(ctx context.Context, principalID uint64, role enums.UserRole, id uint64) (*vo.NotificationVO, error) {
	n, err := s.notificationRepo.GetNotificationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanMutate(principalID, role, n.UserID) {
		return nil, fmt.Errorf("you can only view your own notifications: %w", myErrors.ErrForbidden)
	}
	return vo.NewNotificationVO(n), nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, principalID uint64, role enums.UserRole, id uint64) (*vo.NotificationVO, error) {
	n, err := s.notificationRepo.GetNotificationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanMutate(principalID, role, n.UserID) {
		return nil, fmt.Errorf("you can only update your own notifications: %w", myErrors.ErrForbidden)
	}

	if !n.IsRead {
		if err := s.notificationRepo.UpdateNotification(ctx, id, map[string]interface{}{"is_read": true}); err != nil {
			return nil, err
		}
		n.IsRead = true
	}
	return vo.NewNotificationVO(n), nil
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, principalID uint64) (*vo.MarkAllReadVO, error) {
	updated, err := s.notificationRepo.MarkAllRead(ctx, principalID)
	if err != nil {
		return nil, err
	}
	return &vo.MarkAllReadVO{Updated: updated}, nil
}

func (s *notificationService) UpdateNotification(ctx context.Context, principalID uint64, role enums.UserRole, id uint64, req *dto.UpdateNotificationRequest) (*vo.NotificationVO, error) {
	n, err := s.notificationRepo.GetNotificationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanMutate(principalID, role, n.UserID) {
		return nil, fmt.Errorf("you can only update your own notifications: %w", myErrors.ErrForbidden)
	}

	updates := make(map[string]interface{})
	if req.Message != nil {
		updates["message"] = *req.Message
	}
	if req.IsRead != nil {
		updates["is_read"] = *req.IsRead
	}
	if len(updates) > 0 {
		if err := s.notificationRepo.UpdateNotification(ctx, id, updates); err != nil {
			return nil, err
		}
	}

	updated, err := s.notificationRepo.GetNotificationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return vo.NewNotificationVO(updated), nil
}

func (s *notificationService) DeleteNotification(ctx context.Context, principalID uint64, role enums.UserRole, id uint64) error {
	n, err := s.notificationRepo.GetNotificationByID(ctx, id)
	if err != nil {
		return err
	}
	if !CanMutate(principalID, role, n.UserID) {
		return fmt.Errorf("you can only delete your own notifications: %w", myErrors.ErrForbidden)
	}
	return s.notificationRepo.DeleteNotification(ctx, id)
}

func toNotificationVOs(list []*entities.Notification) []*vo.NotificationVO {
	result := make([]*vo.NotificationVO, 0, len(list))
	for _, n := range list {
		result = append(result, vo.NewNotificationVO(n))
	}
	return result
}
