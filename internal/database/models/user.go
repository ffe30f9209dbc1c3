package models

// User represents an account in the user directory
type User struct {
	BaseModel
	FullName     string `json:"full_name" gorm:"not null;size:100" validate:"required,max=100"`
	Email        string `json:"email" gorm:"uniqueIndex:idx_users_email;not null;size:150" validate:"required,email,max=150"`
	PasswordHash string `json:"-" gorm:"not null;size:255"`
	Role         Role   `json:"role" gorm:"type:varchar(20);not null" validate:"required"`
	IsActive     bool   `json:"is_active" gorm:"not null;default:true"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
