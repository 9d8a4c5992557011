package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Xushengqwer/content_service/models/entities"
	"github.com/Xushengqwer/content_service/myErrors"
	"github.com/Xushengqwer/content_service/pkg/core"
)

// NotificationRepository 定义了通知数据在 MySQL 中的持久化操作接口。
type NotificationRepository interface {
	// CreateNotification 持久化一条通知。
	CreateNotification(ctx context.Context, n *entities.Notification) error

	// GetNotificationByID 根据 ID 检索通知，未找到返回 myErrors.ErrNotFound。
	GetNotificationByID(ctx context.Context, id uint64) (*entities.Notification, error)

	// ListNotifications 返回全部通知，最新优先。
	ListNotifications(ctx context.Context) ([]*entities.Notification, error)

	// ListNotificationsByUserID 返回指定用户的通知，最新优先。
	ListNotificationsByUserID(ctx context.Context, userID uint64) ([]*entities.Notification, error)

	// ListUnreadByUserID 返回指定用户的未读通知，最新优先。
	ListUnreadByUserID(ctx context.Context, userID uint64) ([]*entities.Notification, error)

	// UpdateNotification 按字段映射更新通知，未找到返回 myErrors.ErrNotFound。
	UpdateNotification(ctx context.Context, id uint64, updates map[string]interface{}) error

	// MarkAllRead 将指定用户的全部未读通知置为已读，返回受影响行数。
	// 没有未读通知时返回 0，不视为错误（幂等）。
	MarkAllRead(ctx context.Context, userID uint64) (int64, error)

	// DeleteNotification 软删除通知，未找到返回 myErrors.ErrNotFound。
	DeleteNotification(ctx context.Context, id uint64) error
}

type notificationRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewNotificationRepository 是 notificationRepository 的构造函数。
func NewNotificationRepository(db *gorm.DB, logger *core.ZapLogger) NotificationRepository {
	return &notificationRepository{db: db, logger: logger}
}

func (r *notificationRepository) CreateNotification(ctx context.Context, n *entities.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notificationRepository) GetNotificationByID(ctx context.Context, id uint64) (*entities.Notification, error) {
	var n entities.Notification
	if err := r.db.WithContext(ctx).First(&n, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("notification with id %d not found: %w", id, myErrors.ErrNotFound)
		}
		return nil, err
	}
	return &n, nil
}

func (r *notificationRepository) ListNotifications(ctx context.Context) ([]*entities.Notification, error) {
	var list []*entities.Notification
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *notificationRepository) ListNotificationsByUserID(ctx context.Context, userID uint64) ([]*entities.Notification, error) {
	var list []*entities.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *notificationRepository) ListUnreadByUserID(ctx context.Context, userID uint64) ([]*entities.Notification, error) {
	var list []*entities.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_read = ?", userID, false).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *notificationRepository) UpdateNotification(ctx context.Context, id uint64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).
		Model(&entities.Notification{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("notification with id %d not found: %w", id, myErrors.ErrNotFound)
	}
	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID uint64) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *notificationRepository) DeleteNotification(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&entities.Notification{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("notification with id %d not found: %w", id, myErrors.ErrNotFound)
	}
	return nil
}
