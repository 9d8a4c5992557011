package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	otelgin "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	appConfig "github.com/Xushengqwer/content_service/config"
	"github.com/Xushengqwer/content_service/constant"
	"github.com/Xushengqwer/content_service/controller"
	"github.com/Xushengqwer/content_service/middleware"
	"github.com/Xushengqwer/content_service/pkg/core"
)

// Controllers 汇总所有需要挂载路由的控制器
type Controllers struct {
	User         *controller.UserController
	Category     *controller.CategoryController
	Post         *controller.PostController
	HotPost      *controller.HotPostController
	Comment      *controller.CommentController
	Like         *controller.LikeController
	Subscription *controller.SubscriptionController
	Notification *controller.NotificationController
}

// SetupRouter 仅负责配置 Gin 引擎、中间件和路由注册。
func SetupRouter(
	logger *core.ZapLogger,
	cfg *appConfig.AppConfig,
	ctrls *Controllers,
) *gin.Engine {
	logger.Info("开始设置 Gin 路由...")

	// 使用 gin.New() 而不是 gin.Default()，因为我们要自定义 Recovery 和 Logger
	router := gin.New()

	// 1. OTel Middleware (最先，处理追踪上下文和 Span)
	router.Use(otelgin.Middleware(constant.ServiceName))

	// 2. Panic Recovery (捕获后续中间件和 handler 的 panic)
	router.Use(middleware.ErrorHandlingMiddleware(logger))

	// 3. Request Logger (记录访问日志，需要 TraceID)
	if baseLogger := logger.Logger(); baseLogger != nil {
		router.Use(middleware.RequestLoggerMiddleware(baseLogger))
	} else {
		logger.Warn("无法获取底层的 *zap.Logger，跳过 RequestLoggerMiddleware 注册")
	}

	// 4. Request Timeout (超时控制)
	requestTimeout := time.Duration(cfg.ServerConfig.RequestTimeout) * time.Second
	router.Use(middleware.RequestTimeoutMiddleware(logger, requestTimeout))

	logger.Debug("已注册全局中间件")

	// --- 创建 API 版本分组 ---
	// public 无需登录即可访问；authed 挂 JWT 认证中间件
	public := router.Group("/api/v1")
	authed := router.Group("/api/v1")
	authed.Use(middleware.AuthMiddleware(cfg.JWTConfig))
	logger.Debug("已创建 API/v1 分组")

	// --- 注册控制器路由 ---
	ctrls.User.RegisterRoutes(public)
	ctrls.Category.RegisterRoutes(public, authed)
	ctrls.Post.RegisterRoutes(public, authed)
	ctrls.HotPost.RegisterRoutes(public, authed)
	ctrls.Comment.RegisterRoutes(public, authed)
	ctrls.Like.RegisterRoutes(public, authed)
	ctrls.Subscription.RegisterRoutes(public, authed)
	ctrls.Notification.RegisterRoutes(public, authed)
	logger.Info("所有控制器路由已注册到 /api/v1 分组")

	// --- 注册 Swagger UI 路由 ---
	// 访问 /swagger/index.html 即可看到 Swagger UI 界面
	swaggerURL := ginSwagger.URL("/swagger/doc.json")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, swaggerURL))
	logger.Info("Swagger UI endpoint registered at /swagger/*any")

	// --- 健康检查等路由 ---
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	logger.Info("Gin 路由器设置完成")
	return router
}
