package service

import (
	"dept_form_backend/internal/repository"
)

type DashboardService struct {
	DeptRepo       *repository.DepartmentRepository
	QuestionRepo   *repository.QuestionRepository
	FormLinkRepo   *repository.FormLinkRepository
	SubmissionRepo *repository.SubmissionRepository
}

func NewDashboardService(deptRepo *repository.DepartmentRepository, questionRepo *repository.QuestionRepository, formLinkRepo *repository.FormLinkRepository, submissionRepo *repository.SubmissionRepository) *DashboardService {
	return &DashboardService{
		DeptRepo:       deptRepo,
		QuestionRepo:   questionRepo,
		FormLinkRepo:   formLinkRepo,
		SubmissionRepo: submissionRepo,
	}
}

type DashboardStats struct {
	Departments int64 `json:"departments"`
	Questions   int64 `json:"questions"`
	FormLinks   int64 `json:"formLinks"`
	Submissions int64 `json:"submissions"`
}

func (s *DashboardService) Stats() (*DashboardStats, error) {
	stats := &DashboardStats{}
	var err error

	if stats.Departments, err = s.DeptRepo.Count(); err != nil {
		return nil, err
	}
	if stats.Questions, err = s.QuestionRepo.Count(); err != nil {
		return nil, err
	}
	if stats.FormLinks, err = s.FormLinkRepo.Count(); err != nil {
		return nil, err
	}
	if stats.Submissions, err = s.SubmissionRepo.Count(); err != nil {
		return nil, err
	}

	return stats, nil
}
