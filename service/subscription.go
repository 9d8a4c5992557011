package service

import (
	"context"
	"errors"
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

// SubscriptionService 定义了订阅关系的业务逻辑接口。
// 订阅目标是作者、分类或两者的组合，至少填写其一。
// 元组查重只按提供的字段匹配：仅作者、仅分类、两者齐备是三个独立的命名空间。
type SubscriptionService interface {
	// CreateSubscription 创建订阅。
	// - 两个目标都缺失返回 ErrConflict（沿用对外错误分类）。
	// - 非管理员只能为自己订阅，否则 ErrForbidden。
	// - 同元组重复订阅返回 ErrConflict。
	CreateSubscription(ctx context.Context, principalID uint64, role enums.UserRole, req *dto.CreateSubscriptionRequest) (*vo.SubscriptionVO, error)

	// ListSubscriptions 列出订阅：管理员可按条件过滤全量；
	// 非管理员的结果始终被静默限定为本人的订阅，过滤条件中的 subscriberId 被忽略。
	ListSubscriptions(ctx context.Context, principalID uint64, role enums.UserRole, query *dto.ListSubscriptionsQuery) ([]*vo.SubscriptionVO, error)

	// GetSubscriptionByID 查询单条订阅（本人或管理员）。
	GetSubscriptionByID(ctx context.Context, principalID uint64, role enums.UserRole, id uint64) (*vo.SubscriptionVO, error)

	// CheckSubscription 查询主体是否存在匹配给定目标的订阅。
	CheckSubscription(ctx context.Context, principalID uint64, authorID, categoryID *uint64) (*vo.SubscriptionCheckVO, error)

	// UpdateSubscription 更新订阅（本人或管理员）。
	// 非管理员不能把订阅转移给他人；更新后的目标组合同样要满足至少一个目标且不与现有元组重复。
	UpdateSubscription(ctx context.Context, principalID uint64, role enums.UserRole, id uint64, req *dto.UpdateSubscriptionRequest) (*vo.SubscriptionVO, error)

	// DeleteSubscription 删除订阅（本人或管理员）。
	DeleteSubscription(ctx context.Context, principalID uint64, role enums.UserRole, id uint64) error
}

type subscriptionService struct {
	subRepo      mysql.SubscriptionRepository
	userRepo     mysql.UserRepository
	categoryRepo mysql.CategoryRepository
	logger       *core.ZapLogger
}

// NewSubscriptionService 是 subscriptionService 的构造函数。
func NewSubscriptionService(
	subRepo mysql.SubscriptionRepository,
	userRepo mysql.UserRepository,
	categoryRepo mysql.CategoryRepository,
	logger *core.ZapLogger,
) SubscriptionService {
	return &subscriptionService{
		subRepo:      subRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (s *subscriptionService) CreateSubscription(ctx context.Context, principalID uint64, role enums.UserRole, req *dto.CreateSubscriptionRequest) (*vo.SubscriptionVO, error) {
	if req.AuthorID == nil && req.CategoryID == nil {
		return nil, fmt.Errorf("subscription must target an author or a category: %w", myErrors.ErrConflict)
	}
	if !IsAdmin(role) && req.SubscriberID != principalID {
		return nil, fmt.Errorf("you can only create subscriptions for yourself: %w", myErrors.ErrForbidden)
	}

	if err := s.validateTargets(ctx, req.AuthorID, req.CategoryID); err != nil {
		return nil, err
	}

	exists, err := s.subRepo.ExistsMatching(ctx, req.SubscriberID, req.AuthorID, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("subscription already exists: %w", myErrors.ErrConflict)
	}

	sub := &entities.Subscription{
		SubscriberID: req.SubscriberID,
		AuthorID:     req.AuthorID,
		CategoryID:   req.CategoryID,
	}
	if err := s.subRepo.CreateSubscription(ctx, sub); err != nil {
		return nil, err
	}

	s.logger.Info("订阅创建成功",
		zap.Uint64("subscriptionID", sub.ID),
		zap.Uint64("subscriberID", sub.SubscriberID),
	)
	return s.resolveSubscription(ctx, sub), nil
}

func (s *subscriptionService) ListSubscriptions(ctx context.Context, principalID uint64, role enums.UserRole, query *dto.ListSubscriptionsQuery) ([]*vo.SubscriptionVO, error) {
	filter := mysql.SubscriptionFilter{}
	if query != nil {
		filter.SubscriberID = query.SubscriberID
		filter.AuthorID = query.AuthorID
		filter.CategoryID = query.CategoryID
	}

	// 非管理员始终只能看到自己的订阅，传入的 subscriberId 过滤被静默覆盖
	if !IsAdmin(role) {
		own := principalID
		filter.SubscriberID = &own
	}

	subs, err := s.subRepo.ListSubscriptions(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]*vo.SubscriptionVO, 0, len(subs))
	for _, sub := range subs {
		result = append(result, s.resolveSubscription(ctx, sub))
	}
	return result, nil
}

func (s *subscriptionService) GetSubscriptionByID(ctx context.Context, principalID uint64, role enums.UserRole, id uint64) (*vo.SubscriptionVO, error) {
	sub, err := s.subRepo.GetSubscriptionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanMutate(principalID, role, sub.SubscriberID) {
		return nil, fmt.Errorf("you can only view your own subscriptions: %w", myErrors.ErrForbidden)
	}
	return s.resolveSubscription(ctx, sub), nil
}

func (s *subscriptionService) CheckSubscription(ctx context.Context, principalID uint64, authorID, categoryID *uint64) (*vo.SubscriptionCheckVO, error) {
	if authorID == nil && categoryID == nil {
		return nil, fmt.Errorf("check requires an author or a category: %w", myErrors.ErrValidation)
	}
	exists, err := s.subRepo.ExistsMatching(ctx, principalID, authorID, categoryID)
	if err != nil {
		return nil, err
	}
	return &vo.SubscriptionCheckVO{Subscribed: exists}, nil
}

func (s *subscriptionService) UpdateSubscription(ctx context.Context, principalID uint64, role enums.UserRole, id uint64, req *dto.UpdateSubscriptionRequest) (*vo.SubscriptionVO, error) {
	sub, err := s.subRepo.GetSubscriptionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	admin := IsAdmin(role)
	if !admin && sub.SubscriberID != principalID {
		return nil, fmt.Errorf("you can only update your own subscriptions: %w", myErrors.ErrForbidden)
	}
	if !admin && req.SubscriberID != nil && *req.SubscriberID != principalID {
		return nil, fmt.Errorf("you cannot transfer subscriptions to another user: %w", myErrors.ErrForbidden)
	}

	// 计算更新后的完整元组，再整体校验与查重
	newSubscriber := sub.SubscriberID
	if req.SubscriberID != nil {
		newSubscriber = *req.SubscriberID
	}
	newAuthor := sub.AuthorID
	if req.AuthorID != nil {
		newAuthor = req.AuthorID
	}
	newCategory := sub.CategoryID
	if req.CategoryID != nil {
		newCategory = req.CategoryID
	}

	if newAuthor == nil && newCategory == nil {
		return nil, fmt.Errorf("subscription must target an author or a category: %w", myErrors.ErrConflict)
	}
	if err := s.validateTargets(ctx, newAuthor, newCategory); err != nil {
		return nil, err
	}

	// 变更后的元组不得与现有订阅重复。
	// ExistsMatching 只按提供的字段匹配，因此这里总是传入完整元组。
	tupleChanged := newSubscriber != sub.SubscriberID ||
		!equalOptionalID(newAuthor, sub.AuthorID) ||
		!equalOptionalID(newCategory, sub.CategoryID)
	if tupleChanged {
		exists, err := s.subRepo.ExistsMatching(ctx, newSubscriber, newAuthor, newCategory)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("subscription already exists: %w", myErrors.ErrConflict)
		}
	}

	updates := map[string]interface{}{
		"subscriber_id": newSubscriber,
		"author_id":     newAuthor,
		"category_id":   newCategory,
	}
	if err := s.subRepo.UpdateSubscription(ctx, id, updates); err != nil {
		return nil, err
	}

	updated, err := s.subRepo.GetSubscriptionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.resolveSubscription(ctx, updated), nil
}

func (s *subscriptionService) DeleteSubscription(ctx context.Context, principalID uint64, role enums.UserRole, id uint64) error {
	sub, err := s.subRepo.GetSubscriptionByID(ctx, id)
	if err != nil {
		return err
	}
	if !CanMutate(principalID, role, sub.SubscriberID) {
		return fmt.Errorf("you can only delete your own subscriptions: %w", myErrors.ErrForbidden)
	}
	return s.subRepo.DeleteSubscription(ctx, id)
}

func equalOptionalID(a, b *uint64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// validateTargets 校验被订阅的作者与分类确实存在
func (s *subscriptionService) validateTargets(ctx context.Context, authorID, categoryID *uint64) error {
	if authorID != nil {
		if _, err := s.userRepo.GetUserByID(ctx, *authorID); err != nil {
			return err
		}
	}
	if categoryID != nil {
		if _, err := s.categoryRepo.GetCategoryByID(ctx, *categoryID); err != nil {
			return err
		}
	}
	return nil
}

// resolveSubscription 填充订阅者、作者与分类投影，解析失败保持为空
func (s *subscriptionService) resolveSubscription(ctx context.Context, sub *entities.Subscription) *vo.SubscriptionVO {
	result := vo.NewSubscriptionVO(sub)

	if user, err := s.userRepo.GetUserByID(ctx, sub.SubscriberID); err == nil {
		result.Subscriber = vo.NewUserVO(user)
	}
	if sub.AuthorID != nil {
		if author, err := s.userRepo.GetUserByID(ctx, *sub.AuthorID); err == nil {
			result.Author = vo.NewUserVO(author)
		} else if !errors.Is(err, myErrors.ErrNotFound) {
			s.logger.Warn("解析订阅作者失败", zap.Error(err), zap.Uint64("subscriptionID", sub.ID))
		}
	}
	if sub.CategoryID != nil {
		if category, err := s.categoryRepo.GetCategoryByID(ctx, *sub.CategoryID); err == nil {
			result.Category = vo.NewCategoryVO(category)
		} else if !errors.Is(err, myErrors.ErrNotFound) {
			s.logger.Warn("解析订阅分类失败", zap.Error(err), zap.Uint64("subscriptionID", sub.ID))
		}
	}
	return result
}
