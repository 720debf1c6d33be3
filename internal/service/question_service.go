package service

import (
	"encoding/json"
	"errors"

	"dept_form_backend/internal/model"
	"dept_form_backend/internal/repository"
	"dept_form_backend/internal/util"

	"gorm.io/gorm"
)

type QuestionService struct {
	QuestionRepo *repository.QuestionRepository
	DeptRepo     *repository.DepartmentRepository
}

func NewQuestionService(questionRepo *repository.QuestionRepository, deptRepo *repository.DepartmentRepository) *QuestionService {
	return &QuestionService{
		QuestionRepo: questionRepo,
		DeptRepo:     deptRepo,
	}
}

type QuestionInput struct {
	DepartmentID uint               `json:"departmentId"`
	QuestionText string             `json:"questionText"`
	Type         model.QuestionType `json:"type"`
	Options      []string           `json:"options"`
	Required     *bool              `json:"required"`
	SortOrder    int                `json:"sortOrder"`
}

// apply 校验输入并落到实体上。
// select 必须带选项；其它类型的选项直接丢弃
func (in *QuestionInput) apply(q *model.Question) error {
	if in.DepartmentID == 0 {
		return util.NewValidationError("Department is required")
	}
	if in.QuestionText == "" {
		return util.NewValidationError("Question text is required")
	}
	if !model.ValidQuestionType(in.Type) {
		return util.NewValidationError(util.ErrInvalidQuestionType.Error())
	}

	var options json.RawMessage
	if in.Type == model.QuestionSelect {
		if len(in.Options) == 0 {
			return util.NewValidationError(util.ErrOptionsRequired.Error())
		}
		raw, err := json.Marshal(in.Options)
		if err != nil {
			return err
		}
		options = raw
	}

	required := true
	if in.Required != nil {
		required = *in.Required
	}

	q.DepartmentID = in.DepartmentID
	q.QuestionText = in.QuestionText
	q.Type = in.Type
	q.Options = options
	q.Required = required
	q.SortOrder = in.SortOrder
	return nil
}

func (s *QuestionService) List(departmentID uint) ([]repository.QuestionWithDepartment, error) {
	return s.QuestionRepo.List(departmentID)
}

func (s *QuestionService) Get(id uint) (*model.Question, error) {
	q, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) Create(in QuestionInput) (*model.Question, error) {
	var q model.Question
	if err := in.apply(&q); err != nil {
		return nil, err
	}

	if _, err := s.DeptRepo.FindByID(in.DepartmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrDepartmentNotFound
		}
		return nil, err
	}

	if err := s.QuestionRepo.Create(&q); err != nil {
		return nil, err
	}
	return &q, nil
}

func (s *QuestionService) Update(id uint, in QuestionInput) (*model.Question, error) {
	q, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := in.apply(q); err != nil {
		return nil, err
	}

	if err := s.QuestionRepo.Update(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) Delete(id uint) error {
	affected, err := s.QuestionRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return util.ErrQuestionNotFound
	}
	return nil
}
