package repository

import (
	"taskask-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserRepositoryInterface defines the contract for user storage
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByRoles(roles []models.Role) ([]models.User, error)
	GetAll() ([]models.User, error)
}

// TaskRepositoryInterface defines the contract for task storage
type TaskRepositoryInterface interface {
	Create(task *models.Task) error
	GetByID(id uuid.UUID) (*models.Task, error)
	GetByAssigneeID(userID uuid.UUID) ([]models.Task, error)
	GetByAssigneeIDPaged(userID uuid.UUID, limit, offset int) ([]models.Task, int64, error)
	GetByCreatorID(userID uuid.UUID) ([]models.Task, error)
	GetAll() ([]models.Task, error)
	GetAllWithAssignees() ([]models.Task, error)
	Update(task *models.Task) error
	Delete(id uuid.UUID) error
}

// TeamRepositoryInterface defines the contract for team storage
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByLeadID(leadID uuid.UUID) (*models.Team, error)
	GetAllWithLeads() ([]models.Team, error)
}

// TeamMemberRepositoryInterface defines the contract for team membership storage
type TeamMemberRepositoryInterface interface {
	Create(member *models.TeamMember) error
	GetByUserID(userID uuid.UUID) (*models.TeamMember, error)
	GetByTeamID(teamID uuid.UUID) ([]models.TeamMember, error)
}

// NotificationRepositoryInterface defines the contract for notification storage
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	GetByUserID(userID uuid.UUID) ([]models.Notification, error)
	CountUnreadByUserID(userID uuid.UUID) (int64, error)
	MarkAllReadByUserID(userID uuid.UUID) error
}
