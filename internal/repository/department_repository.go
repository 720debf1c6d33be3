package repository

import (
	"dept_form_backend/internal/model"

	"gorm.io/gorm"
)

type DepartmentRepository struct {
	DB *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{DB: db}
}

func (r *DepartmentRepository) Create(d *model.Department) error {
	return r.DB.Create(d).Error
}

func (r *DepartmentRepository) FindByID(id uint) (*model.Department, error) {
	var d model.Department
	err := r.DB.First(&d, id).Error
	return &d, err
}

func (r *DepartmentRepository) List() ([]model.Department, error) {
	var ds []model.Department
	err := r.DB.Order("created_at DESC").Find(&ds).Error
	return ds, err
}

func (r *DepartmentRepository) Update(d *model.Department) error {
	return r.DB.Save(d).Error
}

// Delete 依赖存储层的级联约束，问题、链接、填报记录一并删除
func (r *DepartmentRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&model.Department{}, id)
	return res.RowsAffected, res.Error
}

func (r *DepartmentRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Department{}).Count(&count).Error
	return count, err
}
