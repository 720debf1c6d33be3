package service

import (
	"testing"

	"dept_form_backend/internal/model"
	"dept_form_backend/internal/repository"
	"dept_form_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitHappyPath(t *testing.T) {
	db := setupTestDB(t)
	dept := seedDepartment(t, db, "Mathematics")
	q := seedQuestion(t, db, dept.ID, "Favorite topic?", true, 0)
	fl := seedFormLink(t, db, dept.ID, "Fall survey", nil)
	svc := newSubmissionService(db)

	id, err := svc.Submit(fl, SubmissionInput{
		Name:  "Ada",
		Email: "ada@example.com",
		Answers: map[string]interface{}{
			idKey(q.ID): "Algebra",
		},
	}, "203.0.113.9")
	require.NoError(t, err)
	require.NotZero(t, id)

	var submission model.Submission
	require.NoError(t, db.First(&submission, id).Error)
	assert.Equal(t, "Ada", submission.Name)
	assert.Equal(t, "203.0.113.9", submission.IPAddress)
	assert.False(t, submission.SubmittedAt.IsZero())

	var answers []model.SubmissionAnswer
	require.NoError(t, db.Where("submission_id = ?", id).Find(&answers).Error)
	require.Len(t, answers, 1)
	assert.Equal(t, q.ID, answers[0].QuestionID)
	assert.JSONEq(t, `"Algebra"`, answers[0].Answer)
}

func TestSubmitMissingRequiredAnswer(t *testing.T) {
	db := setupTestDB(t)
	dept := seedDepartment(t, db, "Physics")
	seedQuestion(t, db, dept.ID, "Required one", true, 0)
	fl := seedFormLink(t, db, dept.ID, "Survey", nil)
	svc := newSubmissionService(db)

	_, err := svc.Submit(fl, SubmissionInput{Answers: map[string]interface{}{}}, "unknown")
	require.Error(t, err)
	assert.True(t, util.IsValidationError(err))
	assert.Equal(t, "Please answer all required questions", err.Error())

	// 校验失败必须零写入
	var count int64
	require.NoError(t, db.Model(&model.Submission{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitWhitespaceAnswerIsEmpty(t *testing.T) {
	db := setupTestDB(t)
	dept := seedDepartment(t, db, "Physics")
	q := seedQuestion(t, db, dept.ID, "Required one", true, 0)
	fl := seedFormLink(t, db, dept.ID, "Survey", nil)
	svc := newSubmissionService(db)

	_, err := svc.Submit(fl, SubmissionInput{
		Answers: map[string]interface{}{idKey(q.ID): "   "},
	}, "unknown")
	require.Error(t, err)
	assert.True(t, util.IsValidationError(err))
}

func TestSubmitFalseAndZeroAreValidAnswers(t *testing.T) {
	db := setupTestDB(t)
	dept := seedDepartment(t, db, "Chemistry")
	q1 := seedQuestion(t, db, dept.ID, "Attending?", true, 0)
	q2 := seedQuestion(t, db, dept.ID, "Absences", true, 1)
	fl := seedFormLink(t, db, dept.ID, "Survey", nil)
	svc := newSubmissionService(db)

	id, err := svc.Submit(fl, SubmissionInput{
		Answers: map[string]interface{}{
			idKey(q1.ID): false,
			idKey(q2.ID): 0,
		},
	}, "unknown")
	require.NoError(t, err)

	var answers []model.SubmissionAnswer
	require.NoError(t, db.Where("submission_id = ?", id).Find(&answers).Error)
	assert.Len(t, answers, 2)
}

func TestSubmitOptionalQuestionMayBeSkipped(t *testing.T) {
	db := setupTestDB(t)
	dept := seedDepartment(t, db, "Biology")
	seedQuestion(t, db, dept.ID, "Optional", false, 0)
	fl := seedFormLink(t, db, dept.ID, "Survey", nil)
	svc := newSubmissionService(db)

	id, err := svc.Submit(fl, SubmissionInput{Answers: map[string]interface{}{}}, "unknown")
	require.NoError(t, err)

	var answers []model.SubmissionAnswer
	require.NoError(t, db.Where("submission_id = ?", id).Find(&answers).Error)
	assert.Empty(t, answers, "skipped optional question stores no answer row")
}

func TestSubmitKeepsAnswersForUnknownQuestionIDs(t *testing.T) {
	db := setupTestDB(t)
	dept := seedDepartment(t, db, "History")
	fl := seedFormLink(t, db, dept.ID, "Survey", nil)
	svc := newSubmissionService(db)

	// 题目已删除（或从未存在）时答案原样入库
	id, err := svc.Submit(fl, SubmissionInput{
		Answers: map[string]interface{}{"9999": "orphan answer"},
	}, "unknown")
	require.NoError(t, err)

	var answers []model.SubmissionAnswer
	require.NoError(t, db.Where("submission_id = ?", id).Find(&answers).Error)
	require.Len(t, answers, 1)
	assert.Equal(t, uint(9999), answers[0].QuestionID)
}

func TestSubmitSkipsNonNumericAnswerKeys(t *testing.T) {
	db := setupTestDB(t)
	dept := seedDepartment(t, db, "History")
	fl := seedFormLink(t, db, dept.ID, "Survey", nil)
	svc := newSubmissionService(db)

	id, err := svc.Submit(fl, SubmissionInput{
		Answers: map[string]interface{}{"not-a-number": "ignored"},
	}, "unknown")
	require.NoError(t, err)

	var answers []model.SubmissionAnswer
	require.NoError(t, db.Where("submission_id = ?", id).Find(&answers).Error)
	assert.Empty(t, answers)
}

func TestSubmitValidatesAgainstCurrentQuestions(t *testing.T) {
	db := setupTestDB(t)
	dept := seedDepartment(t, db, "Geography")
	fl := seedFormLink(t, db, dept.ID, "Survey", nil)
	svc := newSubmissionService(db)

	// 链接签发后新增必答题，旧填报页未带该答案应被拒
	q := seedQuestion(t, db, dept.ID, "Added later", true, 0)
	_, err := svc.Submit(fl, SubmissionInput{Answers: map[string]interface{}{}}, "unknown")
	require.Error(t, err)
	assert.True(t, util.IsValidationError(err))

	_, err = svc.Submit(fl, SubmissionInput{
		Answers: map[string]interface{}{idKey(q.ID): "ok"},
	}, "unknown")
	assert.NoError(t, err)
}

func TestListRowsFlattensAnswers(t *testing.T) {
	db := setupTestDB(t)
	dept := seedDepartment(t, db, "Mathematics")
	q1 := seedQuestion(t, db, dept.ID, "Q1", true, 0)
	q2 := seedQuestion(t, db, dept.ID, "Q2", true, 1)
	fl := seedFormLink(t, db, dept.ID, "Survey", nil)
	svc := newSubmissionService(db)

	_, err := svc.Submit(fl, SubmissionInput{
		Name: "Ada",
		Answers: map[string]interface{}{
			idKey(q1.ID): "a1",
			idKey(q2.ID): "a2",
		},
	}, "unknown")
	require.NoError(t, err)

	rows, err := svc.List(repository.SubmissionFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 2, "one row per answer")
	assert.Equal(t, "Mathematics", rows[0].DepartmentName)
	assert.Equal(t, "Survey", rows[0].FormLinkTitle)
	require.NotNil(t, rows[0].QuestionText)
	assert.Equal(t, "Q1", *rows[0].QuestionText, "rows ordered by question sort order")
}

func TestListRowsIncludesAnswerlessSubmission(t *testing.T) {
	db := setupTestDB(t)
	dept := seedDepartment(t, db, "History")
	fl := seedFormLink(t, db, dept.ID, "Survey", nil)
	svc := newSubmissionService(db)

	_, err := svc.Submit(fl, SubmissionInput{Name: "Ada"}, "unknown")
	require.NoError(t, err)

	rows, err := svc.List(repository.SubmissionFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].Answer)
}
