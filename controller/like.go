package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/pkg/response"
	"github.com/Xushengqwer/content_service/service"
)

// LikeController 点赞的控制器
type LikeController struct {
	likeService service.LikeService
}

// NewLikeController 构造函数，用于创建 LikeController 实例
func NewLikeController(likeService service.LikeService) *LikeController {
	return &LikeController{likeService: likeService}
}

// CreateLike 点赞
// @Summary      点赞帖子
// @Description  点赞者取自当前登录用户，对同一帖子重复点赞返回 409。
// @Tags         likes (点赞)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateLikeRequest true "点赞目标"
// @Success      200 {object} vo.LikeResponseWrapper "点赞成功"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Failure      409 {object} vo.BaseResponseWrapper "已点赞过该帖子"
// @Router       /api/v1/likes [post]
func (ctrl *LikeController) CreateLike(c *gin.Context) {
	userID, _, ok := principal(c)
	if !ok {
		return
	}

	var req dto.CreateLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeInvalidInput, "无效的请求参数: "+err.Error())
		return
	}

	like, err := ctrl.likeService.CreateLike(c.Request.Context(), userID, &req)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, like, "点赞成功")
}

// ListLikes 获取全部点赞
// @Summary      获取全部点赞
// @Tags         likes (点赞)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} vo.LikeResponseWrapper "查询成功"
// @Router       /api/v1/likes [get]
func (ctrl *LikeController) ListLikes(c *gin.Context) {
	likes, err := ctrl.likeService.ListLikes(c.Request.Context())
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, likes, "")
}

// ListLikesByPostID 获取帖子下的点赞
// @Summary      获取帖子点赞列表
// @Tags         likes (点赞)
// @Produce      json
// @Param        id path uint64 true "帖子ID"
// @Success      200 {object} vo.LikeResponseWrapper "查询成功"
// @Router       /api/v1/posts/{id}/likes [get]
func (ctrl *LikeController) ListLikesByPostID(c *gin.Context) {
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	likes, err := ctrl.likeService.ListLikesByPostID(c.Request.Context(), postID)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, likes, "")
}

// ListLikesByUserID 获取用户的点赞
// @Summary      获取用户点赞列表
// @Tags         likes (点赞)
// @Produce      json
// @Param        id path uint64 true "用户ID"
// @Success      200 {object} vo.LikeResponseWrapper "查询成功"
// @Router       /api/v1/users/{id}/likes [get]
func (ctrl *LikeController) ListLikesByUserID(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	likes, err := ctrl.likeService.ListLikesByUserID(c.Request.Context(), userID)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, likes, "")
}

// GetLikeByID 获取单条点赞
// @Summary      获取点赞详情
// @Tags         likes (点赞)
// @Produce      json
// @Param        id path uint64 true "点赞ID"
// @Success      200 {object} vo.LikeResponseWrapper "查询成功"
// @Failure      404 {object} vo.BaseResponseWrapper "点赞不存在"
// @Router       /api/v1/likes/{id} [get]
func (ctrl *LikeController) GetLikeByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	like, err := ctrl.likeService.GetLikeByID(c.Request.Context(), id)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, like, "")
}

// CheckUserLike 查询当前用户是否点赞过帖子
// @Summary      查询是否已点赞
// @Tags         likes (点赞)
// @Produce      json
// @Security     BearerAuth
// @Param        id path uint64 true "帖子ID"
// @Success      200 {object} vo.LikeResponseWrapper "查询成功"
// @Router       /api/v1/likes/check/{id} [get]
func (ctrl *LikeController) CheckUserLike(c *gin.Context) {
	userID, _, ok := principal(c)
	if !ok {
		return
	}
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := ctrl.likeService.CheckUserLike(c.Request.Context(), userID, postID)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, result, "")
}

// CountLikes 获取帖子点赞数
// @Summary      获取帖子点赞数
// @Description  公开接口，无需认证。
// @Tags         likes (点赞)
// @Produce      json
// @Param        id path uint64 true "帖子ID"
// @Success      200 {object} vo.LikeResponseWrapper "查询成功"
// @Router       /api/v1/posts/{id}/likes/count [get]
func (ctrl *LikeController) CountLikes(c *gin.Context) {
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	count, err := ctrl.likeService.CountLikes(c.Request.Context(), postID)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, count, "")
}

// RemoveLikeByPost 取消当前用户对帖子的点赞
// @Summary      取消点赞
// @Description  取消当前登录用户对指定帖子的点赞，不存在时返回 404。
// @Tags         likes (点赞)
// @Produce      json
// @Security     BearerAuth
// @Param        id path uint64 true "帖子ID"
// @Success      200 {object} vo.BaseResponseWrapper "取消成功"
// @Failure      404 {object} vo.BaseResponseWrapper "点赞不存在"
// @Router       /api/v1/likes/post/{id} [delete]
func (ctrl *LikeController) RemoveLikeByPost(c *gin.Context) {
	userID, _, ok := principal(c)
	if !ok {
		return
	}
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.likeService.RemoveLikeByUserAndPost(c.Request.Context(), userID, postID); err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess[any](c, nil, "已取消点赞")
}

// RemoveLike 按 ID 删除点赞
// @Summary      删除点赞
// @Description  仅点赞者本人或管理员可删除。
// @Tags         likes (点赞)
// @Produce      json
// @Security     BearerAuth
// @Param        id path uint64 true "点赞ID"
// @Success      200 {object} vo.BaseResponseWrapper "删除成功"
// @Failure      403 {object} vo.BaseResponseWrapper "无权操作"
// @Failure      404 {object} vo.BaseResponseWrapper "点赞不存在"
// @Router       /api/v1/likes/{id} [delete]
func (ctrl *LikeController) RemoveLike(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.likeService.RemoveLike(c.Request.Context(), userID, role, id); err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess[any](c, nil, "点赞删除成功")
}

// RegisterRoutes 注册点赞路由：计数与列表公开，其余需认证
func (ctrl *LikeController) RegisterRoutes(public, authed *gin.RouterGroup) {
	public.GET("/posts/:id/likes", ctrl.ListLikesByPostID)
	public.GET("/posts/:id/likes/count", ctrl.CountLikes)
	public.GET("/users/:id/likes", ctrl.ListLikesByUserID)

	authed.POST("/likes", ctrl.CreateLike)
	authed.GET("/likes", ctrl.ListLikes)
	authed.GET("/likes/check/:id", ctrl.CheckUserLike)
	authed.GET("/likes/:id", ctrl.GetLikeByID)
	authed.DELETE("/likes/post/:id", ctrl.RemoveLikeByPost)
	authed.DELETE("/likes/:id", ctrl.RemoveLike)
}
