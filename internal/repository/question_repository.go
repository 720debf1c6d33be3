package repository

import (
	"dept_form_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// QuestionWithDepartment 列表行，附带系部名称
type QuestionWithDepartment struct {
	model.Question
	DepartmentName string `gorm:"column:department_name" json:"departmentName"`
}

func (r *QuestionRepository) Create(q *model.Question) error {
	return r.DB.Create(q).Error
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.First(&q, id).Error
	return &q, err
}

func (r *QuestionRepository) List(departmentID uint) ([]QuestionWithDepartment, error) {
	var qs []QuestionWithDepartment
	query := r.DB.Table("questions").
		Select("questions.*, departments.name AS department_name").
		Joins("JOIN departments ON questions.department_id = departments.id")
	if departmentID > 0 {
		query = query.Where("questions.department_id = ?", departmentID)
	}
	err := query.Order("questions.sort_order, questions.created_at").Scan(&qs).Error
	return qs, err
}

// ListByDepartment 按系部取当前题目集，填报校验用
func (r *QuestionRepository) ListByDepartment(departmentID uint) ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.Where("department_id = ?", departmentID).
		Order("sort_order, created_at").
		Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) Update(q *model.Question) error {
	return r.DB.Save(q).Error
}

func (r *QuestionRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&model.Question{}, id)
	return res.RowsAffected, res.Error
}

func (r *QuestionRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Question{}).Count(&count).Error
	return count, err
}
