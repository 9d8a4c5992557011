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

// SubscriptionFilter 订阅列表的可选过滤条件，nil 字段不参与匹配
type SubscriptionFilter struct {
	SubscriberID *uint64
	AuthorID     *uint64
	CategoryID   *uint64
}

// SubscriptionRepository 定义了订阅数据在 MySQL 中的持久化操作接口。
type SubscriptionRepository interface {
	// CreateSubscription 持久化一条订阅。
	// - 组合唯一索引冲突（两个目标都填写的重复元组）映射为 myErrors.ErrConflict。
	CreateSubscription(ctx context.Context, sub *entities.Subscription) error

	// GetSubscriptionByID 根据 ID 检索订阅，未找到返回 myErrors.ErrNotFound。
	GetSubscriptionByID(ctx context.Context, id uint64) (*entities.Subscription, error)

	// ExistsMatching 元组查重探测：只按提供（非 nil）的字段匹配。
	// 订阅者 + 仅作者 / 仅分类 / 两者齐备，三种元组各自独立查重。
	ExistsMatching(ctx context.Context, subscriberID uint64, authorID, categoryID *uint64) (bool, error)

	// ListSubscriptions 按过滤条件返回订阅列表。
	ListSubscriptions(ctx context.Context, filter SubscriptionFilter) ([]*entities.Subscription, error)

	// UpdateSubscription 按字段映射更新订阅，未找到返回 myErrors.ErrNotFound。
	UpdateSubscription(ctx context.Context, id uint64, updates map[string]interface{}) error

	// DeleteSubscription 物理删除订阅，未找到返回 myErrors.ErrNotFound。
	// 退订后同一元组即告释放，重新订阅必须成功。
	DeleteSubscription(ctx context.Context, id uint64) error
}

type subscriptionRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewSubscriptionRepository 是 subscriptionRepository 的构造函数。
func NewSubscriptionRepository(db *gorm.DB, logger *core.ZapLogger) SubscriptionRepository {
	return &subscriptionRepository{db: db, logger: logger}
}

func (r *subscriptionRepository) CreateSubscription(ctx context.Context, sub *entities.Subscription) error {
	if err := r.db.WithContext(ctx).Create(sub).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("subscription already exists: %w", myErrors.ErrConflict)
		}
		return err
	}
	return nil
}

func (r *subscriptionRepository) GetSubscriptionByID(ctx context.Context, id uint64) (*entities.Subscription, error) {
	var sub entities.Subscription
	if err := r.db.WithContext(ctx).First(&sub, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("subscription with id %d not found: %w", id, myErrors.ErrNotFound)
		}
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) ExistsMatching(ctx context.Context, subscriberID uint64, authorID, categoryID *uint64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&entities.Subscription{}).
		Where("subscriber_id = ?", subscriberID)
	if authorID != nil {
		query = query.Where("author_id = ?", *authorID)
	}
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *subscriptionRepository) ListSubscriptions(ctx context.Context, filter SubscriptionFilter) ([]*entities.Subscription, error) {
	var subs []*entities.Subscription
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if filter.SubscriberID != nil {
		query = query.Where("subscriber_id = ?", *filter.SubscriberID)
	}
	if filter.AuthorID != nil {
		query = query.Where("author_id = ?", *filter.AuthorID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if err := query.Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *subscriptionRepository) UpdateSubscription(ctx context.Context, id uint64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).
		Model(&entities.Subscription{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("subscription already exists: %w", myErrors.ErrConflict)
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("subscription with id %d not found: %w", id, myErrors.ErrNotFound)
	}
	return nil
}

func (r *subscriptionRepository) DeleteSubscription(ctx context.Context, id uint64) error {
	// 物理删除：软删除的行仍占用 idx_sub_target 唯一索引，会阻止重新订阅同一元组
	result := r.db.WithContext(ctx).Unscoped().Delete(&entities.Subscription{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("subscription with id %d not found: %w", id, myErrors.ErrNotFound)
	}
	return nil
}
