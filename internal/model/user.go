package model

type UserRole string

const (
	Admin UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Email    string   `gorm:"size:191;unique;not null" json:"email"`
	Password string   `gorm:"size:191;not null" json:"-"`
	Name     string   `gorm:"size:100" json:"name"`
	Role     UserRole `gorm:"size:20;default:'admin'" json:"role"`
}

func (User) TableName() string {
	return "users"
}
