package repository

import (
	"time"

	"dept_form_backend/internal/model"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

// SubmissionFilter 类型化的筛选条件，查询统一走参数绑定
type SubmissionFilter struct {
	DepartmentID   uint
	DepartmentName string
	FormLinkID     uint
	DateFrom       *time.Time
	DateTo         *time.Time
}

// SubmissionRow 扁平行：填报 × 答案，无答案的填报也占一行
type SubmissionRow struct {
	ID             uint      `gorm:"column:id" json:"id"`
	Name           string    `gorm:"column:name" json:"name"`
	Email          string    `gorm:"column:email" json:"email"`
	DepartmentName string    `gorm:"column:department_name" json:"departmentName"`
	FormLinkTitle  string    `gorm:"column:form_link_title" json:"formLinkTitle"`
	SubmittedAt    time.Time `gorm:"column:submitted_at" json:"submittedAt"`
	QuestionText   *string   `gorm:"column:question_text" json:"questionText"`
	Answer         *string   `gorm:"column:answer" json:"answer"`
}

// CreateWithAnswers 单事务写入填报及其答案，杜绝半成品记录
func (r *SubmissionRepository) CreateWithAnswers(s *model.Submission, answers []model.SubmissionAnswer) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(s).Error; err != nil {
			return err
		}
		for i := range answers {
			answers[i].SubmissionID = s.ID
			if err := tx.Create(&answers[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ListRows 按筛选条件取扁平行，导出和后台列表共用
func (r *SubmissionRepository) ListRows(f SubmissionFilter) ([]SubmissionRow, error) {
	query := r.DB.Table("submissions").
		Select("submissions.id, submissions.name, submissions.email, " +
			"departments.name AS department_name, form_links.title AS form_link_title, " +
			"submissions.submitted_at, questions.question_text, submission_answers.answer").
		Joins("JOIN form_links ON submissions.form_link_id = form_links.id").
		Joins("JOIN departments ON form_links.department_id = departments.id").
		Joins("LEFT JOIN submission_answers ON submission_answers.submission_id = submissions.id").
		Joins("LEFT JOIN questions ON submission_answers.question_id = questions.id")

	if f.DepartmentID > 0 {
		query = query.Where("form_links.department_id = ?", f.DepartmentID)
	}
	if f.DepartmentName != "" {
		query = query.Where("departments.name = ?", f.DepartmentName)
	}
	if f.FormLinkID > 0 {
		query = query.Where("submissions.form_link_id = ?", f.FormLinkID)
	}
	if f.DateFrom != nil {
		query = query.Where("submissions.submitted_at >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		query = query.Where("submissions.submitted_at <= ?", *f.DateTo)
	}

	var rows []SubmissionRow
	err := query.Order("submissions.submitted_at DESC, submissions.id, questions.sort_order").
		Scan(&rows).Error
	return rows, err
}

func (r *SubmissionRepository) CountBySubmission(submissionID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.SubmissionAnswer{}).
		Where("submission_id = ?", submissionID).
		Count(&count).Error
	return count, err
}

func (r *SubmissionRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Submission{}).Count(&count).Error
	return count, err
}
