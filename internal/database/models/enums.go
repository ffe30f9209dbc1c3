package models

// Role defines the closed set of account roles
type Role string

const (
	RoleManager  Role = "MANAGER"
	RoleEmployee Role = "EMPLOYEE"
	RoleAdmin    Role = "ADMIN"
	RoleTeamLead Role = "TEAM_LEAD"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleManager, RoleEmployee, RoleAdmin, RoleTeamLead:
		return true
	}
	return false
}

// CanCreateTasks reports whether users with this role may author tasks
func (r Role) CanCreateTasks() bool {
	switch r {
	case RoleManager, RoleAdmin, RoleTeamLead:
		return true
	}
	return false
}

// TaskStatus defines the task lifecycle states
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
)

// IsValid checks if the TaskStatus is valid
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// TaskPriority defines the ordered priority set
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

// IsValid checks if the TaskPriority is valid
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// NotificationType defines the kinds of notifications the system emits
type NotificationType string

const (
	NotificationTaskAssigned  NotificationType = "TASK_ASSIGNED"
	NotificationTaskCompleted NotificationType = "TASK_COMPLETED"
)

// IsValid checks if the NotificationType is valid
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTaskAssigned, NotificationTaskCompleted:
		return true
	}
	return false
}
