package controller

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"dept_form_backend/internal/config"
	"dept_form_backend/internal/middleware"
	"dept_form_backend/internal/model"
	"dept_form_backend/internal/repository"
	"dept_form_backend/internal/service"
	"dept_form_backend/internal/util"
	"dept_form_backend/pkg/database"
	pkglogger "dept_form_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
	cfg    *config.Config
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	pkglogger.Log = zap.NewNop()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret-test-secret-test-secret",
			ExpireTime: 168 * time.Hour,
		},
	}

	userRepo := repository.NewUserRepository(db)
	deptRepo := repository.NewDepartmentRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	formLinkRepo := repository.NewFormLinkRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)

	authSvc := service.NewAuthService(userRepo, cfg)
	deptSvc := service.NewDepartmentService(deptRepo)
	questionSvc := service.NewQuestionService(questionRepo, deptRepo)
	formLinkSvc := service.NewFormLinkService(formLinkRepo, questionRepo, deptRepo)
	submissionSvc := service.NewSubmissionService(submissionRepo, questionRepo)
	exportSvc := service.NewExportService(submissionRepo)
	dashboardSvc := service.NewDashboardService(deptRepo, questionRepo, formLinkRepo, submissionRepo)

	auth := NewAuthController(authSvc, cfg)
	dept := NewDepartmentController(deptSvc)
	question := NewQuestionController(questionSvc)
	formLink := NewFormLinkController(formLinkSvc)
	submission := NewSubmissionController(submissionSvc, formLinkSvc, exportSvc)
	dashboard := NewDashboardController(dashboardSvc)

	router := gin.New()
	public := router.Group("/api")
	{
		public.POST("/auth/login", auth.Login)
		public.GET("/departments", dept.List)
		public.GET("/departments/:id", dept.Get)
		public.GET("/questions", question.List)
		public.GET("/questions/:id", question.Get)
		public.GET("/form-links", formLink.List)
		public.GET("/submit/:token", submission.GetForm)
		public.POST("/submit/:token", submission.Submit)
	}
	admin := router.Group("/api")
	admin.Use(middleware.AuthMiddleware(cfg))
	{
		admin.POST("/auth/logout", auth.Logout)
		admin.GET("/auth/me", auth.Me)
		admin.POST("/departments", dept.Create)
		admin.PUT("/departments/:id", dept.Update)
		admin.DELETE("/departments/:id", dept.Delete)
		admin.POST("/questions", question.Create)
		admin.PUT("/questions/:id", question.Update)
		admin.DELETE("/questions/:id", question.Delete)
		admin.POST("/form-links", formLink.Create)
		admin.DELETE("/form-links/:id", formLink.Delete)
		admin.GET("/submissions", submission.List)
		admin.GET("/submissions/export", submission.Export)
		admin.GET("/dashboard", dashboard.Stats)
	}

	return &testEnv{db: db, router: router, cfg: cfg}
}

func (e *testEnv) seedAdmin(t *testing.T) *model.User {
	t.Helper()
	digest, err := util.HashPassword("secret123")
	require.NoError(t, err)
	u := &model.User{Email: "admin@example.com", Password: digest, Name: "Admin", Role: model.Admin}
	require.NoError(t, e.db.Create(u).Error)
	return u
}

// sessionCookie 登录并返回会话 Cookie
func (e *testEnv) sessionCookie(t *testing.T) *http.Cookie {
	t.Helper()
	e.seedAdmin(t)
	w := e.do(t, "POST", "/api/auth/login", `{"email":"admin@example.com","password":"secret123"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	for _, c := range w.Result().Cookies() {
		if c.Name == util.SessionCookie {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func newJSONRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func (e *testEnv) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) do(t *testing.T, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := newJSONRequest(method, path, body)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return e.serve(req)
}
