package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/pkg/response"
	"github.com/Xushengqwer/content_service/service"
)

// CommentController 评论与审核流程的控制器
type CommentController struct {
	commentService service.CommentService
}

// NewCommentController 构造函数，用于创建 CommentController 实例
func NewCommentController(commentService service.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// CreateComment 创建评论
// @Summary      创建评论
// @Description  评论者取自当前登录用户；非管理员提交的 isApproved=true 被静默降级为 false。
// @Tags         comments (评论)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateCommentRequest true "评论内容"
// @Success      200 {object} vo.CommentResponseWrapper "创建成功"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Router       /api/v1/comments [post]
func (ctrl *CommentController) CreateComment(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeInvalidInput, "无效的请求参数: "+err.Error())
		return
	}

	comment, err := ctrl.commentService.CreateComment(c.Request.Context(), userID, role, &req)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, comment, "评论创建成功")
}

// ListComments 获取全部评论
// @Summary      获取全部评论（管理视图）
// @Tags         comments (评论)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} vo.CommentResponseWrapper "查询成功"
// @Router       /api/v1/comments [get]
func (ctrl *CommentController) ListComments(c *gin.Context) {
	comments, err := ctrl.commentService.ListComments(c.Request.Context())
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, comments, "")
}

// ListCommentsByPostID 获取帖子下的已审核评论
// @Summary      获取帖子评论
// @Description  公开接口，仅返回已审核通过的评论，最新优先。
// @Tags         comments (评论)
// @Produce      json
// @Param        id path uint64 true "帖子ID"
// @Success      200 {object} vo.CommentResponseWrapper "查询成功"
// @Router       /api/v1/posts/{id}/comments [get]
func (ctrl *CommentController) ListCommentsByPostID(c *gin.Context) {
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	comments, err := ctrl.commentService.ListCommentsByPostID(c.Request.Context(), postID)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, comments, "")
}

// ListPendingComments 获取待审核评论
// @Summary      获取待审核评论（仅管理员）
// @Tags         comments (评论)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} vo.CommentResponseWrapper "查询成功"
// @Failure      403 {object} vo.BaseResponseWrapper "无权操作"
// @Router       /api/v1/comments/pending [get]
func (ctrl *CommentController) ListPendingComments(c *gin.Context) {
	_, role, ok := principal(c)
	if !ok {
		return
	}

	comments, err := ctrl.commentService.ListPendingComments(c.Request.Context(), role)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, comments, "")
}

// GetCommentByID 获取单条评论
// @Summary      获取评论详情
// @Tags         comments (评论)
// @Produce      json
// @Param        id path uint64 true "评论ID"
// @Success      200 {object} vo.CommentResponseWrapper "查询成功"
// @Failure      404 {object} vo.BaseResponseWrapper "评论不存在"
// @Router       /api/v1/comments/{id} [get]
func (ctrl *CommentController) GetCommentByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	comment, err := ctrl.commentService.GetCommentByID(c.Request.Context(), id)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, comment, "")
}

// UpdateComment 更新评论
// @Summary      更新评论
// @Description  管理员可更新任意字段；本人仅 commentText 生效，其余字段静默丢弃。
// @Tags         comments (评论)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path uint64 true "评论ID"
// @Param        request body dto.UpdateCommentRequest true "更新内容"
// @Success      200 {object} vo.CommentResponseWrapper "更新成功"
// @Failure      403 {object} vo.BaseResponseWrapper "无权操作"
// @Failure      404 {object} vo.BaseResponseWrapper "评论不存在"
// @Router       /api/v1/comments/{id} [patch]
func (ctrl *CommentController) UpdateComment(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeInvalidInput, "无效的请求参数: "+err.Error())
		return
	}

	comment, err := ctrl.commentService.UpdateComment(c.Request.Context(), userID, role, id, &req)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, comment, "评论更新成功")
}

// ApproveComment 审核通过评论
// @Summary      审核通过评论（仅管理员，幂等）
// @Tags         comments (评论)
// @Produce      json
// @Security     BearerAuth
// @Param        id path uint64 true "评论ID"
// @Success      200 {object} vo.CommentResponseWrapper "审核成功"
// @Failure      403 {object} vo.BaseResponseWrapper "无权操作"
// @Failure      404 {object} vo.BaseResponseWrapper "评论不存在"
// @Router       /api/v1/comments/{id}/approve [post]
func (ctrl *CommentController) ApproveComment(c *gin.Context) {
	_, role, ok := principal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	comment, err := ctrl.commentService.ApproveComment(c.Request.Context(), role, id)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, comment, "评论审核通过")
}

// DeleteComment 删除评论
// @Summary      删除评论
// @Description  仅评论者本人或管理员可删除。
// @Tags         comments (评论)
// @Produce      json
// @Security     BearerAuth
// @Param        id path uint64 true "评论ID"
// @Success      200 {object} vo.BaseResponseWrapper "删除成功"
// @Failure      403 {object} vo.BaseResponseWrapper "无权操作"
// @Failure      404 {object} vo.BaseResponseWrapper "评论不存在"
// @Router       /api/v1/comments/{id} [delete]
func (ctrl *CommentController) DeleteComment(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.commentService.DeleteComment(c.Request.Context(), userID, role, id); err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess[any](c, nil, "评论删除成功")
}

// RegisterRoutes 注册评论路由：帖子评论与单条查询公开，其余需认证
func (ctrl *CommentController) RegisterRoutes(public, authed *gin.RouterGroup) {
	public.GET("/posts/:id/comments", ctrl.ListCommentsByPostID)
	public.GET("/comments/:id", ctrl.GetCommentByID)

	authed.POST("/comments", ctrl.CreateComment)
	authed.GET("/comments", ctrl.ListComments)
	authed.GET("/comments/pending", ctrl.ListPendingComments)
	authed.PATCH("/comments/:id", ctrl.UpdateComment)
	authed.POST("/comments/:id/approve", ctrl.ApproveComment)
	authed.DELETE("/comments/:id", ctrl.DeleteComment)
}
