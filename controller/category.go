package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/pkg/response"
	"github.com/Xushengqwer/content_service/service"
)

// CategoryController 分类管理的控制器
type CategoryController struct {
	categoryService service.CategoryService
}

// NewCategoryController 构造函数，用于创建 CategoryController 实例
func NewCategoryController(categoryService service.CategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

// CreateCategory 创建分类
// @Summary      创建分类
// @Description  创建新分类，slug 由名称派生；slug 已被占用时返回 409。
// @Tags         categories (分类)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateCategoryRequest true "分类信息"
// @Success      200 {object} vo.CategoryResponseWrapper "创建成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      409 {object} vo.BaseResponseWrapper "slug 已存在"
// @Router       /api/v1/categories [post]
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeInvalidInput, "无效的请求参数: "+err.Error())
		return
	}

	category, err := ctrl.categoryService.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, category, "分类创建成功")
}

// ListCategories 获取分类列表
// @Summary      获取全部分类
// @Tags         categories (分类)
// @Produce      json
// @Success      200 {object} vo.CategoryResponseWrapper "查询成功"
// @Router       /api/v1/categories [get]
func (ctrl *CategoryController) ListCategories(c *gin.Context) {
	categories, err := ctrl.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, categories, "")
}

// GetCategoryByID 按 ID 获取分类
// @Summary      获取分类详情
// @Tags         categories (分类)
// @Produce      json
// @Param        id path uint64 true "分类ID"
// @Success      200 {object} vo.CategoryResponseWrapper "查询成功"
// @Failure      404 {object} vo.BaseResponseWrapper "分类不存在"
// @Router       /api/v1/categories/{id} [get]
func (ctrl *CategoryController) GetCategoryByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeInvalidInput, "无效的分类ID")
		return
	}

	category, err := ctrl.categoryService.GetCategoryByID(c.Request.Context(), id)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, category, "")
}

// GetCategoryBySlug 按 slug 获取分类
// @Summary      按 slug 获取分类
// @Tags         categories (分类)
// @Produce      json
// @Param        slug path string true "分类 slug"
// @Success      200 {object} vo.CategoryResponseWrapper "查询成功"
// @Failure      404 {object} vo.BaseResponseWrapper "分类不存在"
// @Router       /api/v1/categories/slug/{slug} [get]
func (ctrl *CategoryController) GetCategoryBySlug(c *gin.Context) {
	category, err := ctrl.categoryService.GetCategoryBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, category, "")
}

// UpdateCategory 更新分类
// @Summary      更新分类
// @Description  更新分类名称，slug 随之重新派生并查重（排除自身）。
// @Tags         categories (分类)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path uint64 true "分类ID"
// @Param        request body dto.UpdateCategoryRequest true "更新内容"
// @Success      200 {object} vo.CategoryResponseWrapper "更新成功"
// @Failure      404 {object} vo.BaseResponseWrapper "分类不存在"
// @Failure      409 {object} vo.BaseResponseWrapper "slug 已存在"
// @Router       /api/v1/categories/{id} [patch]
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeInvalidInput, "无效的分类ID")
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeInvalidInput, "无效的请求参数: "+err.Error())
		return
	}

	category, err := ctrl.categoryService.UpdateCategory(c.Request.Context(), id, &req)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, category, "分类更新成功")
}

// DeleteCategory 删除分类
// @Summary      删除分类
// @Tags         categories (分类)
// @Produce      json
// @Security     BearerAuth
// @Param        id path uint64 true "分类ID"
// @Success      200 {object} vo.BaseResponseWrapper "删除成功"
// @Failure      404 {object} vo.BaseResponseWrapper "分类不存在"
// @Router       /api/v1/categories/{id} [delete]
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeInvalidInput, "无效的分类ID")
		return
	}

	if err := ctrl.categoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess[any](c, nil, "分类删除成功")
}

// RegisterRoutes 注册分类路由：读公开，写需认证
func (ctrl *CategoryController) RegisterRoutes(public, authed *gin.RouterGroup) {
	public.GET("/categories", ctrl.ListCategories)
	public.GET("/categories/:id", ctrl.GetCategoryByID)
	public.GET("/categories/slug/:slug", ctrl.GetCategoryBySlug)

	authed.POST("/categories", ctrl.CreateCategory)
	authed.PATCH("/categories/:id", ctrl.UpdateCategory)
	authed.DELETE("/categories/:id", ctrl.DeleteCategory)
}
