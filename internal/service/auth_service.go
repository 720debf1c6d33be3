package service

import (
	"errors"

	"dept_form_backend/internal/config"
	"dept_form_backend/internal/model"
	"dept_form_backend/internal/repository"
	"dept_form_backend/internal/util"

	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

// Login 校验凭据并签发会话 token。
// 用户不存在和密码错误统一返回 ErrInvalidCredentials，不区分
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", util.ErrInvalidCredentials
		}
		return "", err
	}

	if !util.VerifyPassword(password, user.Password) {
		return "", util.ErrInvalidCredentials
	}

	return util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

// CurrentUser 按会话声明取用户资料
func (s *AuthService) CurrentUser(claims *util.Claims) (*model.User, error) {
	return s.UserRepo.FindByID(claims.UserID)
}
