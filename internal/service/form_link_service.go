package service

import (
	"errors"
	"time"

	"dept_form_backend/internal/model"
	"dept_form_backend/internal/repository"
	"dept_form_backend/internal/util"

	"gorm.io/gorm"
)

type FormLinkService struct {
	FormLinkRepo *repository.FormLinkRepository
	QuestionRepo *repository.QuestionRepository
	DeptRepo     *repository.DepartmentRepository
}

func NewFormLinkService(formLinkRepo *repository.FormLinkRepository, questionRepo *repository.QuestionRepository, deptRepo *repository.DepartmentRepository) *FormLinkService {
	return &FormLinkService{
		FormLinkRepo: formLinkRepo,
		QuestionRepo: questionRepo,
		DeptRepo:     deptRepo,
	}
}

type FormLinkInput struct {
	DepartmentID uint   `json:"departmentId"`
	Title        string `json:"title"`
	ExpiresAt    string `json:"expiresAt"`
}

// FormDefinition 公开表单定义，外部客户端据此渲染填报页
type FormDefinition struct {
	ID             uint             `json:"id"`
	Title          string           `json:"title"`
	DepartmentID   uint             `json:"departmentId"`
	DepartmentName string           `json:"departmentName"`
	ExpiresAt      *time.Time       `json:"expiresAt"`
	Questions      []model.Question `json:"questions"`
}

func (s *FormLinkService) List() ([]repository.FormLinkWithDepartment, error) {
	return s.FormLinkRepo.List()
}

// Create 生成 48 位十六进制随机 token 并记录创建人。
// token 碰撞概率可以忽略，真撞上由唯一索引报错
func (s *FormLinkService) Create(in FormLinkInput, createdByID uint) (*model.FormLink, error) {
	if in.DepartmentID == 0 {
		return nil, util.NewValidationError("Department is required")
	}

	var expiresAt *time.Time
	if in.ExpiresAt != "" {
		t, err := time.Parse(time.RFC3339, in.ExpiresAt)
		if err != nil {
			return nil, util.NewValidationError("Invalid expiresAt, must be an RFC 3339 timestamp")
		}
		expiresAt = &t
	}

	if _, err := s.DeptRepo.FindByID(in.DepartmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrDepartmentNotFound
		}
		return nil, err
	}

	token, err := util.GenerateFormToken()
	if err != nil {
		return nil, err
	}

	fl := &model.FormLink{
		DepartmentID: in.DepartmentID,
		Token:        token,
		Title:        in.Title,
		ExpiresAt:    expiresAt,
		CreatedByID:  createdByID,
	}
	if err := s.FormLinkRepo.Create(fl); err != nil {
		return nil, err
	}
	return fl, nil
}

// Resolve token 三态：有效 / 过期（ErrFormLinkExpired）/ 无效（ErrFormLinkNotFound）。
// 过期是读取时按服务器时钟判断的，没有显式状态位
func (s *FormLinkService) Resolve(token string) (*model.FormLink, error) {
	fl, err := s.FormLinkRepo.FindByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrFormLinkNotFound
		}
		return nil, err
	}

	if fl.Expired(time.Now()) {
		return nil, util.ErrFormLinkExpired
	}
	return fl, nil
}

// Definition 解析 token 并拼出公开表单定义
func (s *FormLinkService) Definition(token string) (*FormDefinition, error) {
	fl, err := s.Resolve(token)
	if err != nil {
		return nil, err
	}

	dept, err := s.DeptRepo.FindByID(fl.DepartmentID)
	if err != nil {
		return nil, err
	}

	questions, err := s.QuestionRepo.ListByDepartment(fl.DepartmentID)
	if err != nil {
		return nil, err
	}

	return &FormDefinition{
		ID:             fl.ID,
		Title:          fl.Title,
		DepartmentID:   fl.DepartmentID,
		DepartmentName: dept.Name,
		ExpiresAt:      fl.ExpiresAt,
		Questions:      questions,
	}, nil
}

func (s *FormLinkService) Delete(id uint) error {
	return s.FormLinkRepo.Delete(id)
}
