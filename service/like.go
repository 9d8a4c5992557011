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
	"github.com/Xushengqwer/content_service/mq/producer"
	"github.com/Xushengqwer/content_service/pkg/core"
	"github.com/Xushengqwer/content_service/repo/mysql"
)

// LikeService 定义了点赞的业务逻辑接口。
// 同一 (用户, 帖子) 组合至多一条点赞：先查后插，
// 并发竞态由存储层组合唯一索引兜底，两条路径都归类为 ErrConflict。
type LikeService interface {
	// CreateLike 点赞，用户取主体。帖子不存在返回 ErrNotFound，重复点赞返回 ErrConflict。
	CreateLike(ctx context.Context, principalID uint64, req *dto.CreateLikeRequest) (*vo.LikeVO, error)

	// ListLikes 返回全部点赞。
	ListLikes(ctx context.Context) ([]*vo.LikeVO, error)

	// ListLikesByPostID 返回指定帖子下的点赞。
	ListLikesByPostID(ctx context.Context, postID uint64) ([]*vo.LikeVO, error)

	// ListLikesByUserID 返回指定用户的点赞。
	ListLikesByUserID(ctx context.Context, userID uint64) ([]*vo.LikeVO, error)

	// GetLikeByID 按 ID 查询点赞。
	GetLikeByID(ctx context.Context, id uint64) (*vo.LikeVO, error)

	// CheckUserLike 查询主体是否点赞过指定帖子。
	CheckUserLike(ctx context.Context, principalID, postID uint64) (*vo.LikeCheckVO, error)

	// CountLikes 返回指定帖子的点赞数（匿名可用）。
	CountLikes(ctx context.Context, postID uint64) (*vo.LikeCountVO, error)

	// RemoveLikeByUserAndPost 取消主体对指定帖子的点赞，不存在返回 ErrNotFound。
	RemoveLikeByUserAndPost(ctx context.Context, principalID, postID uint64) error

	// RemoveLike 按 ID 删除点赞（本人或管理员）。
	RemoveLike(ctx context.Context, principalID uint64, role enums.UserRole, id uint64) error
}

type likeService struct {
	likeRepo mysql.LikeRepository
	postRepo mysql.PostRepository
	userRepo mysql.UserRepository
	kafkaSvc *producer.KafkaProducer
	logger   *core.ZapLogger
}

// NewLikeService 是 likeService 的构造函数。
func NewLikeService(
	likeRepo mysql.LikeRepository,
	postRepo mysql.PostRepository,
	userRepo mysql.UserRepository,
	kafkaSvc *producer.KafkaProducer,
	logger *core.ZapLogger,
) LikeService {
	return &likeService{
		likeRepo: likeRepo,
		postRepo: postRepo,
		userRepo: userRepo,
		kafkaSvc: kafkaSvc,
		logger:   logger,
	}
}

func (s *likeService) CreateLike(ctx context.Context, principalID uint64, req *dto.CreateLikeRequest) (*vo.LikeVO, error) {
	if _, err := s.postRepo.GetPostByID(ctx, req.PostID); err != nil {
		return nil, err
	}

	if _, err := s.likeRepo.GetLikeByUserAndPost(ctx, principalID, req.PostID); err == nil {
		return nil, fmt.Errorf("user has already liked this post: %w", myErrors.ErrConflict)
	} else if !errors.Is(err, myErrors.ErrNotFound) {
		return nil, err
	}

	like := &entities.Like{
		UserID: principalID,
		PostID: req.PostID,
	}
	if err := s.likeRepo.CreateLike(ctx, like); err != nil {
		return nil, err
	}

	if s.kafkaSvc != nil {
		if sendErr := s.kafkaSvc.SendLikeCreatedEvent(ctx, like.ID, like.PostID, like.UserID); sendErr != nil {
			s.logger.Warn("点赞创建事件发送失败", zap.Error(sendErr), zap.Uint64("likeID", like.ID))
		}
	}
	return s.resolveLike(ctx, like), nil
}

func (s *likeService) ListLikes(ctx context.Context) ([]*vo.LikeVO, error) {
	likes, err := s.likeRepo.ListLikes(ctx)
	if err != nil {
		return nil, err
	}
	return s.resolveLikes(ctx, likes), nil
}

func (s *likeService) ListLikesByPostID(ctx context.Context, postID uint64) ([]*vo.LikeVO, error) {
	likes, err := s.likeRepo.ListLikesByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return s.resolveLikes(ctx, likes), nil
}

func (s *likeService) ListLikesByUserID(ctx context.Context, userID uint64) ([]*vo.LikeVO, error) {
	likes, err := s.likeRepo.ListLikesByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolveLikes(ctx, likes), nil
}

func (s *likeService) GetLikeByID(ctx context.Context, id uint64) (*vo.LikeVO, error) {
	like, err := s.likeRepo.GetLikeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.resolveLike(ctx, like), nil
}

func (s *likeService) CheckUserLike(ctx context.Context, principalID, postID uint64) (*vo.LikeCheckVO, error) {
	_, err := s.likeRepo.GetLikeByUserAndPost(ctx, principalID, postID)
	if err != nil {
		if errors.Is(err, myErrors.ErrNotFound) {
			return &vo.LikeCheckVO{Liked: false}, nil
		}
		return nil, err
	}
	return &vo.LikeCheckVO{Liked: true}, nil
}

func (s *likeService) CountLikes(ctx context.Context, postID uint64) (*vo.LikeCountVO, error) {
	count, err := s.likeRepo.CountLikesByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &vo.LikeCountVO{PostID: postID, Count: count}, nil
}

func (s *likeService) RemoveLikeByUserAndPost(ctx context.Context, principalID, postID uint64) error {
	return s.likeRepo.DeleteLikeByUserAndPost(ctx, principalID, postID)
}

func (s *likeService) RemoveLike(ctx context.Context, principalID uint64, role enums.UserRole, id uint64) error {
	like, err := s.likeRepo.GetLikeByID(ctx, id)
	if err != nil {
		return err
	}
	if !CanMutate(principalID, role, like.UserID) {
		return fmt.Errorf("you can only remove your own likes: %w", myErrors.ErrForbidden)
	}
	return s.likeRepo.DeleteLike(ctx, id)
}

// resolveLike 填充点赞的用户与帖子投影，解析失败保持为空
func (s *likeService) resolveLike(ctx context.Context, like *entities.Like) *vo.LikeVO {
	result := vo.NewLikeVO(like)
	if user, err := s.userRepo.GetUserByID(ctx, like.UserID); err == nil {
		result.User = vo.NewUserVO(user)
	}
	if post, err := s.postRepo.GetPostByID(ctx, like.PostID); err == nil {
		result.Post = vo.NewPostVO(post)
	}
	return result
}

func (s *likeService) resolveLikes(ctx context.Context, likes []*entities.Like) []*vo.LikeVO {
	result := make([]*vo.LikeVO, 0, len(likes))
	for _, l := range likes {
		result = append(result, s.resolveLike(ctx, l))
	}
	return result
}
