package service

import (
	"encoding/hex"
	"testing"
	"time"

	"dept_form_backend/internal/repository"
	"dept_form_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormLinkCreate(t *testing.T) {
	db := setupTestDB(t)
	dept := seedDepartment(t, db, "Mathematics")
	svc := NewFormLinkService(
		repository.NewFormLinkRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewDepartmentRepository(db),
	)

	fl, err := svc.Create(FormLinkInput{DepartmentID: dept.ID, Title: "Fall survey"}, 42)
	require.NoError(t, err)

	assert.Len(t, fl.Token, util.FormTokenLength)
	_, err = hex.DecodeString(fl.Token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), fl.CreatedByID)
	assert.Nil(t, fl.ExpiresAt)
}

func TestFormLinkCreateUnknownDepartment(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFormLinkService(
		repository.NewFormLinkRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewDepartmentRepository(db),
	)

	_, err := svc.Create(FormLinkInput{DepartmentID: 999, Title: "x"}, 1)
	assert.ErrorIs(t, err, util.ErrDepartmentNotFound)
}

func TestFormLinkCreateBadExpiry(t *testing.T) {
	db := setupTestDB(t)
	dept := seedDepartment(t, db, "Mathematics")
	svc := NewFormLinkService(
		repository.NewFormLinkRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewDepartmentRepository(db),
	)

	_, err := svc.Create(FormLinkInput{DepartmentID: dept.ID, ExpiresAt: "next tuesday"}, 1)
	require.Error(t, err)
	assert.True(t, util.IsValidationError(err))
}

func TestFormLinkResolve(t *testing.T) {
	db := setupTestDB(t)
	dept := seedDepartment(t, db, "Mathematics")
	svc := NewFormLinkService(
		repository.NewFormLinkRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewDepartmentRepository(db),
	)

	future := time.Now().Add(24 * time.Hour)
	past := time.Now().Add(-24 * time.Hour)
	active := seedFormLink(t, db, dept.ID, "active", &future)
	expired := seedFormLink(t, db, dept.ID, "expired", &past)
	open := seedFormLink(t, db, dept.ID, "no expiry", nil)

	got, err := svc.Resolve(active.Token)
	require.NoError(t, err)
	assert.Equal(t, active.ID, got.ID)

	_, err = svc.Resolve(expired.Token)
	assert.ErrorIs(t, err, util.ErrFormLinkExpired)

	_, err = svc.Resolve("deadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef")
	assert.ErrorIs(t, err, util.ErrFormLinkNotFound)

	_, err = svc.Resolve(open.Token)
	assert.NoError(t, err, "nil expiry never expires")
}

func TestFormLinkDefinition(t *testing.T) {
	db := setupTestDB(t)
	dept := seedDepartment(t, db, "Mathematics")
	seedQuestion(t, db, dept.ID, "Second", true, 2)
	seedQuestion(t, db, dept.ID, "First", true, 1)
	fl := seedFormLink(t, db, dept.ID, "Fall survey", nil)
	svc := NewFormLinkService(
		repository.NewFormLinkRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewDepartmentRepository(db),
	)

	def, err := svc.Definition(fl.Token)
	require.NoError(t, err)

	assert.Equal(t, "Fall survey", def.Title)
	assert.Equal(t, "Mathematics", def.DepartmentName)
	require.Len(t, def.Questions, 2)
	assert.Equal(t, "First", def.Questions[0].QuestionText, "questions sorted by sort order")
}
