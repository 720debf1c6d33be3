package service

import (
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"dept_form_backend/internal/model"
	"dept_form_backend/internal/repository"
	"dept_form_backend/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// sqlite 默认不启用外键，级联删除依赖它
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedDepartment(t *testing.T, db *gorm.DB, name string) *model.Department {
	t.Helper()
	d := &model.Department{Name: name, Description: name + " desc"}
	require.NoError(t, db.Create(d).Error)
	return d
}

func seedQuestion(t *testing.T, db *gorm.DB, deptID uint, text string, required bool, sortOrder int) *model.Question {
	t.Helper()
	q := &model.Question{
		DepartmentID: deptID,
		QuestionText: text,
		Type:         model.QuestionText,
		Required:     required,
		SortOrder:    sortOrder,
	}
	require.NoError(t, db.Create(q).Error)
	return q
}

func seedFormLink(t *testing.T, db *gorm.DB, deptID uint, title string, expiresAt *time.Time) *model.FormLink {
	t.Helper()
	svc := NewFormLinkService(
		repository.NewFormLinkRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewDepartmentRepository(db),
	)
	in := FormLinkInput{DepartmentID: deptID, Title: title}
	if expiresAt != nil {
		in.ExpiresAt = expiresAt.Format(time.RFC3339)
	}
	fl, err := svc.Create(in, 1)
	require.NoError(t, err)
	return fl
}

// idKey 答案映射的键是题目 ID 的十进制字符串
func idKey(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func newSubmissionService(db *gorm.DB) *SubmissionService {
	return NewSubmissionService(
		repository.NewSubmissionRepository(db),
		repository.NewQuestionRepository(db),
	)
}
