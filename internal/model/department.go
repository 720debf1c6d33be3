package model

// Department 系部，问题和表单链接都挂在系部下
// swagger:model Department
type Department struct {
	BaseModel
	Name        string `gorm:"size:191;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	Questions []Question `gorm:"constraint:OnDelete:CASCADE" json:"questions,omitempty"`
	FormLinks []FormLink `gorm:"constraint:OnDelete:CASCADE" json:"formLinks,omitempty"`
}

func (Department) TableName() string {
	return "departments"
}
