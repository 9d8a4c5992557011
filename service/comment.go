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

// CommentService 定义了评论与审核流程的业务逻辑接口。
type CommentService interface {
	// CreateComment 创建评论，评论者取主体。
	// 非管理员传入 isApproved=true 会被静默降级为 false，不报错。
	CreateComment(ctx context.Context, principalID uint64, role enums.UserRole, req *dto.CreateCommentRequest) (*vo.CommentVO, error)

	// ListComments 返回全部评论（管理视图）。
	ListComments(ctx context.Context) ([]*vo.CommentVO, error)

	// ListCommentsByPostID 返回指定帖子下已审核通过的评论，最新优先（公开视图）。
	ListCommentsByPostID(ctx context.Context, postID uint64) ([]*vo.CommentVO, error)

	// ListPendingComments 返回全部待审核评论（仅管理员）。
	ListPendingComments(ctx context.Context, role enums.UserRole) ([]*vo.CommentVO, error)

	// GetCommentByID 按 ID 查询评论。
	GetCommentByID(ctx context.Context, id uint64) (*vo.CommentVO, error)

	// UpdateComment 更新评论：管理员可更新任意字段；
	// 本人（非管理员）仅 commentText 生效，其余字段静默丢弃；其他人 Forbidden。
	UpdateComment(ctx context.Context, principalID uint64, role enums.UserRole, id uint64, req *dto.UpdateCommentRequest) (*vo.CommentVO, error)

	// ApproveComment 审核通过评论（仅管理员），对已通过的评论幂等。
	ApproveComment(ctx context.Context, role enums.UserRole, id uint64) (*vo.CommentVO, error)

	// DeleteComment 删除评论（本人或管理员）。
	DeleteComment(ctx context.Context, principalID uint64, role enums.UserRole, id uint64) error
}

type commentService struct {
	commentRepo mysql.CommentRepository
	postRepo    mysql.PostRepository
	userRepo    mysql.UserRepository
	kafkaSvc    *producer.KafkaProducer
	logger      *core.ZapLogger
}

// NewCommentService 是 commentService 的构造函数。
func NewCommentService(
	commentRepo mysql.CommentRepository,
	postRepo mysql.PostRepository,
	userRepo mysql.UserRepository,
	kafkaSvc *producer.KafkaProducer,
	logger *core.ZapLogger,
) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
		kafkaSvc:    kafkaSvc,
		logger:      logger,
	}
}

func (s *commentService) CreateComment(ctx context.Context, principalID uint64, role enums.UserRole, req *dto.CreateCommentRequest) (*vo.CommentVO, error) {
	if _, err := s.postRepo.GetPostByID(ctx, req.PostID); err != nil {
		return nil, err
	}

	// 只有管理员能直接创建已审核的评论
	approved := req.IsApproved && IsAdmin(role)

	comment := &entities.Comment{
		PostID:      req.PostID,
		UserID:      principalID,
		CommentText: req.CommentText,
		IsApproved:  approved,
	}
	if err := s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	if s.kafkaSvc != nil {
		if sendErr := s.kafkaSvc.SendCommentCreatedEvent(ctx, comment.ID, comment.PostID, comment.UserID); sendErr != nil {
			s.logger.Warn("评论创建事件发送失败", zap.Error(sendErr), zap.Uint64("commentID", comment.ID))
		}
	}
	return s.resolveComment(ctx, comment), nil
}

func (s *commentService) ListComments(ctx context.Context) ([]*vo.CommentVO, error) {
	comments, err := s.commentRepo.ListComments(ctx)
	if err != nil {
		return nil, err
	}
	return s.resolveComments(ctx, comments), nil
}

func (s *commentService) ListCommentsByPostID(ctx context.Context, postID uint64) ([]*vo.CommentVO, error) {
	comments, err := s.commentRepo.ListApprovedByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return s.resolveComments(ctx, comments), nil
}

func (s *commentService) ListPendingComments(ctx context.Context, role enums.UserRole) ([]*vo.CommentVO, error) {
	if !IsAdmin(role) {
		return nil, fmt.Errorf("only admins can view pending comments: %w", myErrors.ErrForbidden)
	}
	comments, err := s.commentRepo.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	return s.resolveComments(ctx, comments), nil
}

func (s *commentService) GetCommentByID(ctx context.Context, id uint64) (*vo.CommentVO, error) {
	comment, err := s.commentRepo.GetCommentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.resolveComment(ctx, comment), nil
}

func (s *commentService) UpdateComment(ctx context.Context, principalID uint64, role enums.UserRole, id uint64, req *dto.UpdateCommentRequest) (*vo.CommentVO, error) {
	comment, err := s.commentRepo.GetCommentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	admin := IsAdmin(role)
	if !admin && comment.UserID != principalID {
		return nil, fmt.Errorf("you can only update your own comments: %w", myErrors.ErrForbidden)
	}

	updates := make(map[string]interface{})
	if req.CommentText != nil {
		updates["comment_text"] = *req.CommentText
	}
	// 非管理员提交的其他字段静默丢弃
	if admin && req.IsApproved != nil {
		updates["is_approved"] = *req.IsApproved
	}

	if len(updates) > 0 {
		if err := s.commentRepo.UpdateComment(ctx, id, updates); err != nil {
			return nil, err
		}
	}
	return s.GetCommentByID(ctx, id)
}

func (s *commentService) ApproveComment(ctx context.Context, role enums.UserRole, id uint64) (*vo.CommentVO, error) {
	if !IsAdmin(role) {
		return nil, fmt.Errorf("only admins can approve comments: %w", myErrors.ErrForbidden)
	}

	comment, err := s.commentRepo.GetCommentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 幂等：已通过的评论重复审核直接返回当前状态
	if !comment.IsApproved {
		if err := s.commentRepo.UpdateComment(ctx, id, map[string]interface{}{"is_approved": true}); err != nil {
			return nil, err
		}
		comment.IsApproved = true
		s.logger.Info("评论审核通过", zap.Uint64("commentID", id))
	}
	return s.resolveComment(ctx, comment), nil
}

func (s *commentService) DeleteComment(ctx context.Context, principalID uint64, role enums.UserRole, id uint64) error {
	comment, err := s.commentRepo.GetCommentByID(ctx, id)
	if err != nil {
		return err
	}
	if !CanMutate(principalID, role, comment.UserID) {
		return fmt.Errorf("you can only delete your own comments: %w", myErrors.ErrForbidden)
	}
	return s.commentRepo.DeleteComment(ctx, id)
}

// resolveComment 填充评论者投影，解析失败保持为空
func (s *commentService) resolveComment(ctx context.Context, comment *entities.Comment) *vo.CommentVO {
	result := vo.NewCommentVO(comment)
	if user, err := s.userRepo.GetUserByID(ctx, comment.UserID); err == nil {
		result.User = vo.NewUserVO(user)
	} else if !errors.Is(err, myErrors.ErrNotFound) {
		s.logger.Warn("解析评论者失败", zap.Error(err), zap.Uint64("commentID", comment.ID))
	}
	return result
}

func (s *commentService) resolveComments(ctx context.Context, comments []*entities.Comment) []*vo.CommentVO {
	result := make([]*vo.CommentVO, 0, len(comments))
	for _, c := range comments {
		result = append(result, s.resolveComment(ctx, c))
	}
	return result
}
