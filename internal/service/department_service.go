package service

import (
	"errors"

	"dept_form_backend/internal/model"
	"dept_form_backend/internal/repository"
	"dept_form_backend/internal/util"

	"gorm.io/gorm"
)

type DepartmentService struct {
	DeptRepo *repository.DepartmentRepository
}

func NewDepartmentService(deptRepo *repository.DepartmentRepository) *DepartmentService {
	return &DepartmentService{DeptRepo: deptRepo}
}

type DepartmentInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (in *DepartmentInput) validate() error {
	if in.Name == "" {
		return util.NewValidationError("Name is required")
	}
	if len(in.Name) > 191 {
		return util.NewValidationError("Name is too long")
	}
	return nil
}

func (s *DepartmentService) List() ([]model.Department, error) {
	return s.DeptRepo.List()
}

func (s *DepartmentService) Get(id uint) (*model.Department, error) {
	d, err := s.DeptRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrDepartmentNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *DepartmentService) Create(in DepartmentInput) (*model.Department, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	d := &model.Department{
		Name:        in.Name,
		Description: in.Description,
	}
	if err := s.DeptRepo.Create(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DepartmentService) Update(id uint, in DepartmentInput) (*model.Department, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	d, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	d.Name = in.Name
	d.Description = in.Description
	if err := s.DeptRepo.Update(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DepartmentService) Delete(id uint) error {
	affected, err := s.DeptRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return util.ErrDepartmentNotFound
	}
	return nil
}
