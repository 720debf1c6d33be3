package util

import "errors"

var (
	ErrInvalidCredentials  = errors.New("Invalid credentials")
	ErrDepartmentNotFound  = errors.New("Department not found")
	ErrQuestionNotFound    = errors.New("Question not found")
	ErrFormLinkNotFound    = errors.New("Invalid form link")
	ErrFormLinkExpired     = errors.New("This link has expired")
	ErrRequiredAnswer      = errors.New("Please answer all required questions")
	ErrOptionsRequired     = errors.New("Options are required for select questions")
	ErrInvalidQuestionType = errors.New("Invalid question type")
)

// ValidationError 携带首个校验失败信息，原样回给调用方
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
