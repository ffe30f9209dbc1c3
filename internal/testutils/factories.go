package testutils

import (
	"fmt"
	"time"

	"taskask-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FullName:     "Test User",
		Email:        fmt.Sprintf("user-%s@test.com", id.String()[:8]),
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuvwx",
		Role:         models.RoleEmployee,
		IsActive:     true,
	}
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.Role) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// TaskFactory provides methods to create test Task data
type TaskFactory struct{}

// NewTaskFactory creates a new TaskFactory
func NewTaskFactory() *TaskFactory {
	return &TaskFactory{}
}

// Create creates a test Task assigned between the given users
func (f *TaskFactory) Create(creatorID, assigneeID uuid.UUID) *models.Task {
	return &models.Task{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:        "Test Task",
		Description:  "A test task",
		Priority:     models.TaskPriorityMedium,
		Status:       models.TaskStatusPending,
		CreatedByID:  creatorID,
		AssignedToID: assigneeID,
	}
}

// WithStatus sets a custom status for the task
func (f *TaskFactory) WithStatus(creatorID, assigneeID uuid.UUID, status models.TaskStatus) *models.Task {
	task := f.Create(creatorID, assigneeID)
	task.Status = status
	return task
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team owned by the given lead
func (f *TeamFactory) Create(leadID uuid.UUID) *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:   fmt.Sprintf("team-%s", id.String()[:8]),
		LeadID: leadID,
	}
}
