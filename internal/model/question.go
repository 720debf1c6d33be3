package model

import "encoding/json"

type QuestionType string

const (
	QuestionText     QuestionType = "text"
	QuestionTextarea QuestionType = "textarea"
	QuestionNumber   QuestionType = "number"
	QuestionDate     QuestionType = "date"
	QuestionSelect   QuestionType = "select"
)

// ValidQuestionType 校验题目类型是否在枚举内
func ValidQuestionType(t QuestionType) bool {
	switch t {
	case QuestionText, QuestionTextarea, QuestionNumber, QuestionDate, QuestionSelect:
		return true
	}
	return false
}

// Question 系部下的题目。Options 仅 select 类型使用，JSON 数组按序存储
// swagger:model Question
type Question struct {
	BaseModel
	DepartmentID uint            `gorm:"index;not null" json:"departmentId"`
	QuestionText string          `gorm:"type:text;not null" json:"questionText"`
	Type         QuestionType    `gorm:"size:20;not null" json:"type"`
	Options      json.RawMessage `gorm:"type:json" json:"options,omitempty"`
	// 默认值在服务层落定，不用列默认值，false 才能如实入库
	Required     bool            `gorm:"not null" json:"required"`
	SortOrder    int             `gorm:"default:0" json:"sortOrder"`
}

func (Question) TableName() string {
	return "questions"
}

// OptionList 反序列化 Options，空值返回 nil
func (q *Question) OptionList() []string {
	if len(q.Options) == 0 {
		return nil
	}
	var opts []string
	if err := json.Unmarshal(q.Options, &opts); err != nil {
		return nil
	}
	return opts
}
