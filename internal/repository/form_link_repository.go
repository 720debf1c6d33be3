package repository

import (
	"dept_form_backend/internal/model"

	"gorm.io/gorm"
)

type FormLinkRepository struct {
	DB *gorm.DB
}

func NewFormLinkRepository(db *gorm.DB) *FormLinkRepository {
	return &FormLinkRepository{DB: db}
}

// FormLinkWithDepartment 列表行，附带系部名称
type FormLinkWithDepartment struct {
	model.FormLink
	DepartmentName string `gorm:"column:department_name" json:"departmentName"`
}

func (r *FormLinkRepository) Create(fl *model.FormLink) error {
	return r.DB.Create(fl).Error
}

// FindByToken 精确匹配 token
func (r *FormLinkRepository) FindByToken(token string) (*model.FormLink, error) {
	var fl model.FormLink
	err := r.DB.Where("token = ?", token).First(&fl).Error
	return &fl, err
}

func (r *FormLinkRepository) List() ([]FormLinkWithDepartment, error) {
	var fls []FormLinkWithDepartment
	err := r.DB.Table("form_links").
		Select("form_links.*, departments.name AS department_name").
		Joins("JOIN departments ON form_links.department_id = departments.id").
		Order("form_links.created_at DESC").
		Scan(&fls).Error
	return fls, err
}

// Delete 级联删除挂在链接下的填报记录
func (r *FormLinkRepository) Delete(id uint) error {
	return r.DB.Delete(&model.FormLink{}, id).Error
}

func (r *FormLinkRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.FormLink{}).Count(&count).Error
	return count, err
}
