package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/pkg/response"
	"github.com/Xushengqwer/content_service/service"
)

// PostController 帖子管理的控制器
type PostController struct {
	postService service.PostService
}

// NewPostController 构造函数，用于创建 PostController 实例
func NewPostController(postService service.PostService) *PostController {
	return &PostController{postService: postService}
}

// CreatePost 创建帖子
// @Summary      创建帖子
// @Description  创建新帖子，作者取自当前登录用户；新帖子默认未发布、浏览量为零。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreatePostRequest true "帖子信息"
// @Success      200 {object} vo.PostResponseWrapper "创建成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      404 {object} vo.BaseResponseWrapper "指定分类不存在"
// @Failure      409 {object} vo.BaseResponseWrapper "slug 已存在"
// @Router       /api/v1/posts [post]
func (ctrl *PostController) CreatePost(c *gin.Context) {
	userID, _, ok := principal(c)
	if !ok {
		return
	}

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeInvalidInput, "无效的请求参数: "+err.Error())
		return
	}

	post, err := ctrl.postService.CreatePost(c.Request.Context(), userID, &req)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, post, "帖子创建成功")
}

// ListPosts 获取帖子列表（含未发布）
// @Summary      获取全部帖子
// @Tags         posts (帖子)
// @Produce      json
// @Success      200 {object} vo.PostListResponseWrapper "查询成功"
// @Router       /api/v1/posts [get]
func (ctrl *PostController) ListPosts(c *gin.Context) {
	posts, err := ctrl.postService.ListPosts(c.Request.Context())
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, posts, "")
}

// ListPublishedPosts 获取已发布的帖子列表
// @Summary      获取已发布帖子
// @Tags         posts (帖子)
// @Produce      json
// @Success      200 {object} vo.PostListResponseWrapper "查询成功"
// @Router       /api/v1/posts/published [get]
func (ctrl *PostController) ListPublishedPosts(c *gin.Context) {
	posts, err := ctrl.postService.ListPublishedPosts(c.Request.Context())
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, posts, "")
}

// GetPostByID 获取帖子详情
// @Summary      获取帖子详情
// @Description  按 ID 查询帖子，同时累加一次浏览量。
// @Tags         posts (帖子)
// @Produce      json
// @Param        id path uint64 true "帖子ID"
// @Success      200 {object} vo.PostResponseWrapper "查询成功"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Router       /api/v1/posts/{id} [get]
func (ctrl *PostController) GetPostByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	post, err := ctrl.postService.GetPostByID(c.Request.Context(), id)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, post, "")
}

// GetPostBySlug 按 slug 获取帖子
// @Summary      按 slug 获取帖子
// @Description  按 slug 查询帖子，同时累加一次浏览量。
// @Tags         posts (帖子)
// @Produce      json
// @Param        slug path string true "帖子 slug"
// @Success      200 {object} vo.PostResponseWrapper "查询成功"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Router       /api/v1/posts/slug/{slug} [get]
func (ctrl *PostController) GetPostBySlug(c *gin.Context) {
	post, err := ctrl.postService.GetPostBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, post, "")
}

// IncrementViews 累加帖子浏览量
// @Summary      累加浏览量
// @Description  匿名可用的浏览量上报，重复请求重复计数。
// @Tags         posts (帖子)
// @Produce      json
// @Param        id path uint64 true "帖子ID"
// @Success      200 {object} vo.BaseResponseWrapper "累加成功"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Router       /api/v1/posts/{id}/views [post]
func (ctrl *PostController) IncrementViews(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.postService.IncrementViews(c.Request.Context(), id); err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess[any](c, nil, "浏览量已累加")
}

// UpdatePost 更新帖子
// @Summary      更新帖子
// @Description  仅作者本人或管理员可更新；作者创建后不可变更；标题变化会重新派生 slug 并查重。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path uint64 true "帖子ID"
// @Param        request body dto.UpdatePostRequest true "更新内容"
// @Success      200 {object} vo.PostResponseWrapper "更新成功"
// @Failure      403 {object} vo.BaseResponseWrapper "无权操作"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Failure      409 {object} vo.BaseResponseWrapper "slug 已存在"
// @Router       /api/v1/posts/{id} [patch]
func (ctrl *PostController) UpdatePost(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeInvalidInput, "无效的请求参数: "+err.Error())
		return
	}

	post, err := ctrl.postService.UpdatePost(c.Request.Context(), userID, role, id, &req)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, post, "帖子更新成功")
}

// DeletePost 删除帖子
// @Summary      删除帖子
// @Description  仅作者本人或管理员可删除。
// @Tags         posts (帖子)
// @Produce      json
// @Security     BearerAuth
// @Param        id path uint64 true "帖子ID"
// @Success      200 {object} vo.BaseResponseWrapper "删除成功"
// @Failure      403 {object} vo.BaseResponseWrapper "无权操作"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Router       /api/v1/posts/{id} [delete]
func (ctrl *PostController) DeletePost(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.postService.DeletePost(c.Request.Context(), userID, role, id); err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess[any](c, nil, "帖子删除成功")
}

// UploadThumbnail 上传帖子缩略图
// @Summary      上传帖子缩略图
// @Description  仅作者本人或管理员可上传，文件存入对象存储后 URL 回填到帖子。
// @Tags         posts (帖子)
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path uint64 true "帖子ID"
// @Param        thumbnail formData file true "缩略图文件"
// @Success      200 {object} vo.PostResponseWrapper "上传成功"
// @Failure      403 {object} vo.BaseResponseWrapper "无权操作"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Router       /api/v1/posts/{id}/thumbnail [post]
func (ctrl *PostController) UploadThumbnail(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	file, err := c.FormFile("thumbnail")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeInvalidInput, "缺少缩略图文件: "+err.Error())
		return
	}

	post, err := ctrl.postService.UploadThumbnail(c.Request.Context(), userID, role, id, file)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, post, "缩略图上传成功")
}

// RegisterRoutes 注册帖子路由：读与浏览量上报公开，写需认证
func (ctrl *PostController) RegisterRoutes(public, authed *gin.RouterGroup) {
	public.GET("/posts", ctrl.ListPosts)
	public.GET("/posts/published", ctrl.ListPublishedPosts)
	public.GET("/posts/:id", ctrl.GetPostByID)
	public.GET("/posts/slug/:slug", ctrl.GetPostBySlug)
	public.POST("/posts/:id/views", ctrl.IncrementViews)

	authed.POST("/posts", ctrl.CreatePost)
	authed.PATCH("/posts/:id", ctrl.UpdatePost)
	authed.DELETE("/posts/:id", ctrl.DeletePost)
	authed.POST("/posts/:id/thumbnail", ctrl.UploadThumbnail)
}
