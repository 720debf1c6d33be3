package controller

import (
	"errors"
	"net/http"

	"dept_form_backend/internal/config"
	"dept_form_backend/internal/service"
	"dept_form_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
	Cfg         *config.Config
}

func NewAuthController(authService *service.AuthService, cfg *config.Config) *AuthController {
	return &AuthController{
		AuthService: authService,
		Cfg:         cfg,
	}
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Login godoc
// @Summary 管理员登录
// @Description 校验凭据，会话以 HttpOnly Cookie 下发，有效期 7 天
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "登录凭据"
// @Success 200 {object} object "成功"
// @Failure 400 {object} util.ErrorResponse "请求参数错误"
// @Failure 401 {object} util.ErrorResponse "凭据错误"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Error(ctx, http.StatusUnauthorized, util.ErrInvalidCredentials.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	c.setSessionCookie(ctx, token, int(c.Cfg.JWT.ExpireTime.Seconds()))
	util.Success(ctx, gin.H{"success": true})
}

// Logout godoc
// @Summary 退出登录
// @Description 清除会话 Cookie
// @Tags 认证
// @Produce  json
// @Success 200 {object} object "成功"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	c.setSessionCookie(ctx, "", -1)
	util.Success(ctx, gin.H{"success": true})
}

// Me godoc
// @Summary 当前管理员资料
// @Tags 认证
// @Produce  json
// @Success 200 {object} model.User
// @Failure 401 {object} util.ErrorResponse "未授权"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.AuthService.CurrentUser(claims)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, user)
}

func (c *AuthController) setSessionCookie(ctx *gin.Context, token string, maxAge int) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	secure := c.Cfg.Server.Mode == "release"
	ctx.SetCookie(util.SessionCookie, token, maxAge, "/", "", secure, true)
}
