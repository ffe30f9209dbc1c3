package service

import (
	"github.com/google/uuid"
)

// UserServiceInterface defines the interface for the user directory
type UserServiceInterface interface {
	CreateUser(req *CreateUserRequest) (*UserResponse, error)
	GetUserByID(id uuid.UUID) (*UserResponse, error)
	GetUserByEmail(email string) (*UserResponse, error)
	ListEmployees() ([]EmployeeResponse, error)
	ListAllUsers() ([]UserSummary, error)
}

// TaskServiceInterface defines the interface for the task lifecycle
type TaskServiceInterface interface {
	CreateTask(req *CreateTaskRequest) (*TaskResponse, error)
	UpdateTask(taskID uuid.UUID, req *UpdateTaskRequest) (*TaskResponse, error)
	DeleteTask(taskID uuid.UUID) error
	GetTasksForAssignee(userID uuid.UUID) ([]TaskResponse, error)
	GetTasksForAssigneePaged(userID uuid.UUID, limit, offset int) (*TaskPageResponse, error)
	GetTasksCreatedBy(userID uuid.UUID) ([]TaskResponse, error)
	GetAllTasks() ([]TaskResponse, error)
}

// TeamServiceInterface defines the interface for the team registry
type TeamServiceInterface interface {
	CreateTeam(req *CreateTeamRequest, leadID uuid.UUID) (*TeamResponse, error)
	AddMember(teamID uuid.UUID, req *AddTeamMemberRequest, callerID uuid.UUID) error
	GetMyTeamMembers(leadID uuid.UUID) ([]TeamMemberResponse, error)
	GetTeamByLead(leadID uuid.UUID) (*TeamResponse, error)
	GetAllTeams() ([]TeamResponse, error)
}

// NotificationServiceInterface defines the interface for the notification log
type NotificationServiceInterface interface {
	ListForUser(userID uuid.UUID) ([]NotificationResponse, error)
	UnreadCount(userID uuid.UUID) (*UnreadCountResponse, error)
	MarkAllRead(userID uuid.UUID) error
}

// PerformanceServiceInterface defines the interface for the performance rollup
type PerformanceServiceInterface interface {
	GetSummary() (*PerformanceSummary, error)
}
