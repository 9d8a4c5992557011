package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/pkg/response"
	"github.com/Xushengqwer/content_service/service"
)

// UserController 用户注册、登录与查询的控制器
type UserController struct {
	userService service.UserService
}

// NewUserController 构造函数，用于创建 UserController 实例
func NewUserController(userService service.UserService) *UserController {
	return &UserController{userService: userService}
}

// Register 用户注册
// @Summary      注册新用户
// @Description  使用用户名、邮箱和密码注册，用户名或邮箱已被占用时返回 409。
// @Tags         auth (认证)
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "注册信息"
// @Success      200 {object} vo.UserResponseWrapper "注册成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      409 {object} vo.BaseResponseWrapper "用户名或邮箱已存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/auth/register [post]
func (ctrl *UserController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeInvalidInput, "无效的请求参数: "+err.Error())
		return
	}

	user, err := ctrl.userService.Register(c.Request.Context(), &req)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, user, "注册成功")
}

// Login 用户登录
// @Summary      用户登录
// @Description  校验用户名密码并签发访问令牌。
// @Tags         auth (认证)
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "登录凭证"
// @Success      200 {object} vo.TokenResponseWrapper "登录成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      403 {object} vo.BaseResponseWrapper "凭证无效"
// @Router       /api/v1/auth/login [post]
func (ctrl *UserController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeInvalidInput, "无效的请求参数: "+err.Error())
		return
	}

	token, err := ctrl.userService.Login(c.Request.Context(), &req)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, token, "登录成功")
}

// GetUserByID 获取用户公开信息
// @Summary      获取用户信息
// @Description  按 ID 返回用户的公开投影，不包含任何凭证信息。
// @Tags         users (用户)
// @Produce      json
// @Param        id path uint64 true "用户ID"
// @Success      200 {object} vo.UserResponseWrapper "查询成功"
// @Failure      404 {object} vo.BaseResponseWrapper "用户不存在"
// @Router       /api/v1/users/{id} [get]
func (ctrl *UserController) GetUserByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeInvalidInput, "无效的用户ID")
		return
	}

	user, err := ctrl.userService.GetUserByID(c.Request.Context(), id)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondSuccess(c, user, "")
}

// RegisterRoutes 注册用户相关路由
func (ctrl *UserController) RegisterRoutes(public *gin.RouterGroup) {
	public.POST("/auth/register", ctrl.Register)
	public.POST("/auth/login", ctrl.Login)
	public.GET("/users/:id", ctrl.GetUserByID)
}
