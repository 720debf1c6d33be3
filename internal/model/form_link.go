package model

import "time"

// FormLink 对外发布的填报链接，token 为 48 位十六进制随机串。
// 链接创建后不可修改，只能删除。
// swagger:model FormLink
type FormLink struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	DepartmentID uint       `gorm:"index;not null" json:"departmentId"`
	Token        string     `gorm:"size:64;uniqueIndex;not null" json:"token"`
	Title        string     `gorm:"size:191" json:"title"`
	ExpiresAt    *time.Time `json:"expiresAt"`
	CreatedByID  uint       `gorm:"index" json:"createdById"`
	CreatedAt    time.Time  `json:"createdAt"`

	Submissions []Submission `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (FormLink) TableName() string {
	return "form_links"
}

// Expired 以服务器时钟判断链接是否已过期，nil 表示永久有效
func (fl *FormLink) Expired(now time.Time) bool {
	return fl.ExpiresAt != nil && fl.ExpiresAt.Before(now)
}
