package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/pkg/response"
	"github.com/Xushengqwer/content_service/service"
)

// SubscriptionController 订阅管理的控制器
type SubscriptionController struct {
	subscriptionService service.SubscriptionService
}

// NewSubscriptionController 构造函数，用于创建 SubscriptionController 实例
func NewSubscriptionController(subscriptionService service.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{subscriptionService: subscriptionService}
}

// CreateSubscription 创建订阅
// @Summary      创建订阅
// @Description  订阅作者或分类，至少指定其中一个目标；非管理员只能以自己的身份订阅。
// @Tags         subscriptions (订阅)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateSubscriptionRequest true "订阅信息"
// @Success      200 {object} vo.SubscriptionResponseWrapper "创建成功"
// @Failure      403 {object} vo.BaseResponseWrapper "无权为他人创建订阅"
// @Failure      404 {object} vo.BaseResponseWrapper "目标作者或分类不存在"
// @Failure      409 {object} vo.BaseResponseWrapper "订阅已存在或未指定目标"
// @Router       /api/v1/subscriptions [post]
func (ctrl *SubscriptionController) CreateSubscription(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok {
		return
	}

	var req dto.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeInvalidInput, "无效的请求参数: "+err.Error())
		return
	}
	if req.SubscriberID == 0 {
		req.SubscriberID = userID
	}

	sub, err := ctrl.subscriptionService.CreateSubscription(c.Request.Context(), userID, role, &req)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, sub, "订阅创建成功")
}

// ListSubscriptions 获取订阅列表
// @Summary      获取订阅列表
// @Description  支持按订阅者、作者、分类过滤；非管理员只能看到自己的订阅。
// @Tags         subscriptions (订阅)
// @Produce      json
// @Security     BearerAuth
// @Param        subscriberId query uint64 false "订阅者ID"
// @Param        authorId query uint64 false "作者ID"
// @Param        categoryId query uint64 false "分类ID"
// @Success      200 {object} vo.SubscriptionResponseWrapper "查询成功"
// @Router       /api/v1/subscriptions [get]
func (ctrl *SubscriptionController) ListSubscriptions(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok {
		return
	}

	var query dto.ListSubscriptionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	subs, err := ctrl.subscriptionService.ListSubscriptions(c.Request.Context(), userID, role, &query)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, subs, "")
}

// GetSubscriptionByID 获取订阅详情
// @Summary      获取订阅详情
// @Tags         subscriptions (订阅)
// @Produce      json
// @Security     BearerAuth
// @Param        id path uint64 true "订阅ID"
// @Success      200 {object} vo.SubscriptionResponseWrapper "查询成功"
// @Failure      404 {object} vo.BaseResponseWrapper "订阅不存在"
// @Router       /api/v1/subscriptions/{id} [get]
func (ctrl *SubscriptionController) GetSubscriptionByID(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	sub, err := ctrl.subscriptionService.GetSubscriptionByID(c.Request.Context(), userID, role, id)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, sub, "")
}

// CheckSubscription 查询当前用户是否订阅了目标
// @Summary      查询是否已订阅
// @Description  按 authorId 或 categoryId 查询当前用户的订阅状态，两者都缺省时返回 400。
// @Tags         subscriptions (订阅)
// @Produce      json
// @Security     BearerAuth
// @Param        authorId query uint64 false "作者ID"
// @Param        categoryId query uint64 false "分类ID"
// @Success      200 {object} vo.SubscriptionResponseWrapper "查询成功"
// @Failure      400 {object} vo.BaseResponseWrapper "未指定查询目标"
// @Router       /api/v1/subscriptions/check [get]
func (ctrl *SubscriptionController) CheckSubscription(c *gin.Context) {
	userID, _, ok := principal(c)
	if !ok {
		return
	}

	var authorID, categoryID *uint64
	if raw := c.Query("authorId"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, response.CodeInvalidInput, "无效的查询参数: authorId")
			return
		}
		authorID = &v
	}
	if raw := c.Query("categoryId"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, response.CodeInvalidInput, "无效的查询参数: categoryId")
			return
		}
		categoryID = &v
	}

	result, err := ctrl.subscriptionService.CheckSubscription(c.Request.Context(), userID, authorID, categoryID)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, result, "")
}

// UpdateSubscription 更新订阅
// @Summary      更新订阅
// @Description  更新订阅目标，更新后的组合与已有订阅重复时返回 409。
// @Tags         subscriptions (订阅)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path uint64 true "订阅ID"
// @Param        request body dto.UpdateSubscriptionRequest true "更新内容"
// @Success      200 {object} vo.SubscriptionResponseWrapper "更新成功"
// @Failure      403 {object} vo.BaseResponseWrapper "无权操作"
// @Failure      404 {object} vo.BaseResponseWrapper "订阅不存在"
// @Failure      409 {object} vo.BaseResponseWrapper "订阅组合已存在"
// @Router       /api/v1/subscriptions/{id} [patch]
func (ctrl *SubscriptionController) UpdateSubscription(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeInvalidInput, "无效的请求参数: "+err.Error())
		return
	}

	sub, err := ctrl.subscriptionService.UpdateSubscription(c.Request.Context(), userID, role, id, &req)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, sub, "订阅更新成功")
}

// DeleteSubscription 删除订阅
// @Summary      删除订阅
// @Description  仅订阅者本人或管理员可删除。
// @Tags         subscriptions (订阅)
// @Produce      json
// @Security     BearerAuth
// @Param        id path uint64 true "订阅ID"
// @Success      200 {object} vo.BaseResponseWrapper "删除成功"
// @Failure      403 {object} vo.BaseResponseWrapper "无权操作"
// @Failure      404 {object} vo.BaseResponseWrapper "订阅不存在"
// @Router       /api/v1/subscriptions/{id} [delete]
func (ctrl *SubscriptionController) DeleteSubscription(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.subscriptionService.DeleteSubscription(c.Request.Context(), userID, role, id); err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess[any](c, nil, "订阅删除成功")
}

// RegisterRoutes 注册订阅路由，全部需要认证
func (ctrl *SubscriptionController) RegisterRoutes(_, authed *gin.RouterGroup) {
	authed.POST("/subscriptions", ctrl.CreateSubscription)
	authed.GET("/subscriptions", ctrl.ListSubscriptions)
	authed.GET("/subscriptions/check", ctrl.CheckSubscription)
	authed.GET("/subscriptions/:id", ctrl.GetSubscriptionByID)
	authed.PATCH("/subscriptions/:id", ctrl.UpdateSubscription)
	authed.DELETE("/subscriptions/:id", ctrl.DeleteSubscription)
}
