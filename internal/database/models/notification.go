package models

import (
	"github.com/google/uuid"
)

// Notification is an append-only per-user message. The read flag moves in
// one direction only: unread to read.
type Notification struct {
	BaseModel
	UserID  uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;index"`
	Message string           `json:"message" gorm:"not null;size:500" validate:"required,max=500"`
	Type    NotificationType `json:"type" gorm:"type:varchar(50);not null"`
	IsRead  bool             `json:"is_read" gorm:"not null;default:false"`
	TaskID  *uuid.UUID       `json:"task_id,omitempty" gorm:"type:uuid"`

	// Relationships
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
