package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dept_form_backend/internal/config"
	"dept_form_backend/internal/controller"
	"dept_form_backend/internal/repository"
	"dept_form_backend/internal/service"
	"dept_form_backend/pkg/database"
	"dept_form_backend/pkg/logger"
	"dept_form_backend/pkg/monitoring"
	"dept_form_backend/pkg/security"
	"dept_form_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
}

type repositories struct {
	user       *repository.UserRepository
	department *repository.DepartmentRepository
	question   *repository.QuestionRepository
	formLink   *repository.FormLinkRepository
	submission *repository.SubmissionRepository
}

type services struct {
	auth       *service.AuthService
	department *service.DepartmentService
	question   *service.QuestionService
	formLink   *service.FormLinkService
	submission *service.SubmissionService
	export     *service.ExportService
	dashboard  *service.DashboardService
}

type controllers struct {
	auth       *controller.AuthController
	department *controller.DepartmentController
	question   *controller.QuestionController
	formLink   *controller.FormLinkController
	submission *controller.SubmissionController
	dashboard  *controller.DashboardController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		department: repository.NewDepartmentRepository(db),
		question:   repository.NewQuestionRepository(db),
		formLink:   repository.NewFormLinkRepository(db),
		submission: repository.NewSubmissionRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	return &services{
		auth:       service.NewAuthService(repos.user, cfg),
		department: service.NewDepartmentService(repos.department),
		question:   service.NewQuestionService(repos.question, repos.department),
		formLink:   service.NewFormLinkService(repos.formLink, repos.question, repos.department),
		submission: service.NewSubmissionService(repos.submission, repos.question),
		export:     service.NewExportService(repos.submission),
		dashboard:  service.NewDashboardService(repos.department, repos.question, repos.formLink, repos.submission),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth, a.Config),
		department: controller.NewDepartmentController(s.department),
		question:   controller.NewQuestionController(s.question),
		formLink:   controller.NewFormLinkController(s.formLink),
		submission: controller.NewSubmissionController(s.submission, s.formLink, s.export),
		dashboard:  controller.NewDashboardController(s.dashboard),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("dept-form-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	return app
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
