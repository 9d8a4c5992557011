package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/content_service/pkg/response"
	"github.com/Xushengqwer/content_service/service"
)

// HotPostController 热榜查询的控制器
type HotPostController struct {
	hotPostService service.HotPostService
}

// NewHotPostController 构造函数，用于创建 HotPostController 实例
func NewHotPostController(hotPostService service.HotPostService) *HotPostController {
	return &HotPostController{hotPostService: hotPostService}
}

// GetHotPosts 获取热门帖子
// @Summary      获取热门帖子
// @Description  返回按浏览量排序的热门帖子快照，优先读 Redis 缓存，未命中时回源数据库并回填。
// @Tags         posts (帖子)
// @Produce      json
// @Success      200 {object} vo.PostListResponseWrapper "查询成功"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/posts/hot [get]
func (ctrl *HotPostController) GetHotPosts(c *gin.Context) {
	posts, err := ctrl.hotPostService.GetHotPosts(c.Request.Context())
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, posts, "")
}

// RegisterRoutes 注册热榜路由，公开访问
func (ctrl *HotPostController) RegisterRoutes(public, _ *gin.RouterGroup) {
	public.GET("/posts/hot", ctrl.GetHotPosts)
}
