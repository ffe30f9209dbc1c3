package models

import (
	"time"

	"github.com/google/uuid"
)

// Task represents a unit of work created by a manager/team lead and
// assigned to an employee
type Task struct {
	BaseModel
	Title        string       `json:"title" gorm:"not null;size:150" validate:"required,max=150"`
	Description  string       `json:"description" gorm:"type:text"`
	Priority     TaskPriority `json:"priority" gorm:"type:varchar(20);not null;default:'MEDIUM'"`
	Status       TaskStatus   `json:"status" gorm:"type:varchar(20);not null;default:'PENDING'"`
	StartDate    *time.Time   `json:"start_date" gorm:"type:date"`
	DueDate      *time.Time   `json:"due_date" gorm:"type:date"`
	CreatedByID  uuid.UUID    `json:"created_by_id" gorm:"type:uuid;not null;index"`
	AssignedToID uuid.UUID    `json:"assigned_to_id" gorm:"type:uuid;not null;index"`

	// Relationships
	CreatedBy  *User `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
	AssignedTo *User `json:"assigned_to,omitempty" gorm:"foreignKey:AssignedToID"`
}

// TableName returns the table name for Task
func (Task) TableName() string {
	return "tasks"
}
