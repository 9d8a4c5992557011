package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/pkg/response"
	"github.com/Xushengqwer/content_service/service"
)

// NotificationController 通知管理的控制器
type NotificationController struct {
	notificationService service.NotificationService
}

// NewNotificationController 构造函数，用于创建 NotificationController 实例
func NewNotificationController(notificationService service.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// CreateNotification 创建通知
// @Summary      创建通知
// @Description  非管理员只能给自己创建通知；管理员可以给任意用户创建。
// @Tags         notifications (通知)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateNotificationRequest true "通知内容"
// @Success      200 {object} vo.NotificationResponseWrapper "创建成功"
// @Failure      403 {object} vo.BaseResponseWrapper "无权为他人创建通知"
// @Failure      404 {object} vo.BaseResponseWrapper "目标用户不存在"
// @Router       /api/v1/notifications [post]
func (ctrl *NotificationController) CreateNotification(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok {
		return
	}

	var req dto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeInvalidInput, "无效的请求参数: "+err.Error())
		return
	}

	notification, err := ctrl.notificationService.CreateNotification(c.Request.Context(), userID, role, &req)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, notification, "通知创建成功")
}

// ListNotifications 获取通知列表
// @Summary      获取通知列表
// @Description  管理员看到全部通知，普通用户只看到自己的。
// @Tags         notifications (通知)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} vo.NotificationResponseWrapper "查询成功"
// @Router       /api/v1/notifications [get]
func (ctrl *NotificationController) ListNotifications(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok {
		return
	}

	notifications, err := ctrl.notificationService.ListNotifications(c.Request.Context(), userID, role)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, notifications, "")
}

// ListUnreadNotifications 获取当前用户的未读通知
// @Summary      获取未读通知
// @Tags         notifications (通知)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} vo.NotificationResponseWrapper "查询成功"
// @Router       /api/v1/notifications/unread [get]
func (ctrl *NotificationController) ListUnreadNotifications(c *gin.Context) {
	userID, _, ok := principal(c)
	if !ok {
		return
	}

	notifications, err := ctrl.notificationService.ListUnreadNotifications(c.Request.Context(), userID)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, notifications, "")
}

// GetNotificationByID 获取通知详情
// @Summary      获取通知详情
// @Tags         notifications (通知)
// @Produce      json
// @Security     BearerAuth
// @Param        id path uint64 true "通知ID"
// @Success      200 {object} vo.NotificationResponseWrapper "查询成功"
// @Failure      404 {object} vo.BaseResponseWrapper "通知不存在"
// @Router       /api/v1/notifications/{id} [get]
func (ctrl *NotificationController) GetNotificationByID(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	notification, err := ctrl.notificationService.GetNotificationByID(c.Request.Context(), userID, role, id)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, notification, "")
}

// MarkAsRead 标记通知为已读
// @Summary      标记通知已读（幂等）
// @Tags         notifications (通知)
// @Produce      json
// @Security     BearerAuth
// @Param        id path uint64 true "通知ID"
// @Success      200 {object} vo.NotificationResponseWrapper "标记成功"
// @Failure      403 {object} vo.BaseResponseWrapper "无权操作"
// @Failure      404 {object} vo.BaseResponseWrapper "通知不存在"
// @Router       /api/v1/notifications/{id}/read [post]
func (ctrl *NotificationController) MarkAsRead(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	notification, err := ctrl.notificationService.MarkAsRead(c.Request.Context(), userID, role, id)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, notification, "通知已标记为已读")
}

// MarkAllAsRead 标记当前用户全部通知为已读
// @Summary      全部标记已读
// @Description  返回本次实际更新的通知条数，重复调用返回 0。
// @Tags         notifications (通知)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} vo.NotificationResponseWrapper "标记成功"
// @Router       /api/v1/notifications/read-all [post]
func (ctrl *NotificationController) MarkAllAsRead(c *gin.Context) {
	userID, _, ok := principal(c)
	if !ok {
		return
	}

	result, err := ctrl.notificationService.MarkAllAsRead(c.Request.Context(), userID)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, result, "全部通知已标记为已读")
}

// UpdateNotification 更新通知
// @Summary      更新通知
// @Description  仅通知所有者或管理员可更新消息内容与已读状态。
// @Tags         notifications (通知)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path uint64 true "通知ID"
// @Param        request body dto.UpdateNotificationRequest true "更新内容"
// @Success      200 {object} vo.NotificationResponseWrapper "更新成功"
// @Failure      403 {object} vo.BaseResponseWrapper "无权操作"
// @Failure      404 {object} vo.BaseResponseWrapper "通知不存在"
// @Router       /api/v1/notifications/{id} [patch]
func (ctrl *NotificationController) UpdateNotification(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeInvalidInput, "无效的请求参数: "+err.Error())
		return
	}

	notification, err := ctrl.notificationService.UpdateNotification(c.Request.Context(), userID, role, id, &req)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, notification, "通知更新成功")
}

// DeleteNotification 删除通知
// @Summary      删除通知
// @Description  仅通知所有者或管理员可删除。
// @Tags         notifications (通知)
// @Produce      json
// @Security     BearerAuth
// @Param        id path uint64 true "通知ID"
// @Success      200 {object} vo.BaseResponseWrapper "删除成功"
// @Failure      403 {object} vo.BaseResponseWrapper "无权操作"
// @Failure      404 {object} vo.BaseResponseWrapper "通知不存在"
// @Router       /api/v1/notifications/{id} [delete]
func (ctrl *NotificationController) DeleteNotification(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.notificationService.DeleteNotification(c.Request.Context(), userID, role, id); err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess[any](c, nil, "通知删除成功")
}

// RegisterRoutes 注册通知路由，全部需要认证
func (ctrl *NotificationController) RegisterRoutes(_, authed *gin.RouterGroup) {
	authed.POST("/notifications", ctrl.CreateNotification)
	authed.GET("/notifications", ctrl.ListNotifications)
	authed.GET("/notifications/unread", ctrl.ListUnreadNotifications)
	authed.POST("/notifications/read-all", ctrl.MarkAllAsRead)
	authed.GET("/notifications/:id", ctrl.GetNotificationByID)
	authed.POST("/notifications/:id/read", ctrl.MarkAsRead)
	authed.PATCH("/notifications/:id", ctrl.UpdateNotification)
	authed.DELETE("/notifications/:id", ctrl.DeleteNotification)
}
