package app

import (
	"dept_form_backend/docs"
	"dept_form_backend/internal/config"
	"dept_form_backend/internal/middleware"

	"dept_form_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要会话的后台路由
	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/login", c.auth.Login)

		// 列表类：允许前台页面直接读取
		public.GET("/departments", c.department.List)
		public.GET("/departments/:id", c.department.Get)
		public.GET("/questions", c.question.List)
		public.GET("/questions/:id", c.question.Get)
		public.GET("/form-links", c.formLink.List)

		// 匿名填报入口
		public.GET("/submit/:token", c.submission.GetForm)
		public.POST("/submit/:token", c.submission.Submit)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api")
	admin.Use(middleware.AuthMiddleware(cfg))
	{
		admin.POST("/auth/logout", c.auth.Logout)
		admin.GET("/auth/me", c.auth.Me)

		admin.POST("/departments", c.department.Create)
		admin.PUT("/departments/:id", c.department.Update)
		admin.DELETE("/departments/:id", c.department.Delete)

		admin.POST("/questions", c.question.Create)
		admin.PUT("/questions/:id", c.question.Update)
		admin.DELETE("/questions/:id", c.question.Delete)

		admin.POST("/form-links", c.formLink.Create)
		admin.DELETE("/form-links/:id", c.formLink.Delete)

		admin.GET("/submissions", c.submission.List)
		admin.GET("/submissions/export", c.submission.Export)

		admin.GET("/dashboard", c.dashboard.Stats)
	}
}
