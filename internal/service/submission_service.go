package service

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"dept_form_backend/internal/model"
	"dept_form_backend/internal/repository"
	"dept_form_backend/internal/util"
)

type SubmissionService struct {
	SubmissionRepo *repository.SubmissionRepository
	QuestionRepo   *repository.QuestionRepository
}

func NewSubmissionService(submissionRepo *repository.SubmissionRepository, questionRepo *repository.QuestionRepository) *SubmissionService {
	return &SubmissionService{
		SubmissionRepo: submissionRepo,
		QuestionRepo:   questionRepo,
	}
}

type SubmissionInput struct {
	Name    string                 `json:"name"`
	Email   string                 `json:"email"`
	Answers map[string]interface{} `json:"answers"`
}

// Submit 校验并落库一次填报。
// 必答校验用系部当前的题目集，不是链接签发时的快照。
// 校验全部通过才开始写；填报和答案在同一事务里
func (s *SubmissionService) Submit(fl *model.FormLink, in SubmissionInput, ipAddress string) (uint, error) {
	questions, err := s.QuestionRepo.ListByDepartment(fl.DepartmentID)
	if err != nil {
		return 0, err
	}

	for _, q := range questions {
		if !q.Required {
			continue
		}
		answer, ok := in.Answers[strconv.FormatUint(uint64(q.ID), 10)]
		if !ok || isEmptyAnswer(answer) {
			return 0, util.NewValidationError(util.ErrRequiredAnswer.Error())
		}
	}

	submission := &model.Submission{
		FormLinkID:  fl.ID,
		Name:        in.Name,
		Email:       in.Email,
		IPAddress:   ipAddress,
		SubmittedAt: time.Now(),
	}

	// 答案键不限于现存题目；已删除题目的答案原样保存
	var answers []model.SubmissionAnswer
	for key, value := range in.Answers {
		if isEmptyAnswer(value) {
			continue
		}
		questionID, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			continue
		}
		raw, err := json.Marshal(value)
		if err != nil {
			return 0, err
		}
		answers = append(answers, model.SubmissionAnswer{
			QuestionID: uint(questionID),
			Answer:     string(raw),
		})
	}

	if err := s.SubmissionRepo.CreateWithAnswers(submission, answers); err != nil {
		return 0, err
	}
	return submission.ID, nil
}

// isEmptyAnswer 缺失、null、空白字符串、空数组视为未作答；
// false 和 0 是有效答案
func isEmptyAnswer(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []interface{}:
		return len(t) == 0
	}
	return false
}

func (s *SubmissionService) List(f repository.SubmissionFilter) ([]repository.SubmissionRow, error) {
	return s.SubmissionRepo.ListRows(f)
}
