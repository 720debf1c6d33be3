package model

import "time"

// Submission 教师的一次填报，创建后不再修改
// swagger:model Submission
type Submission struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FormLinkID  uint      `gorm:"index;not null" json:"formLinkId"`
	Name        string    `gorm:"size:191" json:"name"`
	Email       string    `gorm:"size:191" json:"email"`
	IPAddress   string    `gorm:"size:64" json:"ipAddress"`
	SubmittedAt time.Time `json:"submittedAt"`

	Answers []SubmissionAnswer `gorm:"constraint:OnDelete:CASCADE" json:"answers,omitempty"`
}

func (Submission) TableName() string {
	return "submissions"
}

// SubmissionAnswer 单个问题的答案，answer 为 JSON 序列化后的文本。
// QuestionID 不做外键约束：题目被删除后历史答案仍保留原样。
// swagger:model SubmissionAnswer
type SubmissionAnswer struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SubmissionID uint      `gorm:"index;not null" json:"submissionId"`
	QuestionID   uint      `gorm:"index;not null" json:"questionId"`
	Answer       string    `gorm:"type:text" json:"answer"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (SubmissionAnswer) TableName() string {
	return "submission_answers"
}
