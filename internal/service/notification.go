package service

import (
	"fmt"
	"time"

	"taskask-backend/internal/database/models"
	"taskask-backend/internal/repository"

	"github.com/google/uuid"
)

// NotificationService handles the append-only per-user notification log
type NotificationService struct {
	repo repository.NotificationRepositoryInterface
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo repository.NotificationRepositoryInterface) *NotificationService {
	return &NotificationService{repo: repo}
}

// NotificationResponse represents the response data for a notification
type NotificationResponse struct {
	ID        uuid.UUID  `json:"id"`
	Message   string     `json:"message"`
	Type      string     `json:"type"`
	IsRead    bool       `json:"isRead"`
	TaskID    *uuid.UUID `json:"taskId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// UnreadCountResponse carries the unread badge count
type UnreadCountResponse struct {
	UnreadCount int64 `json:"unreadCount"`
}

// ListForUser returns a user's notifications, newest first
func (s *NotificationService) ListForUser(userID uuid.UUID) ([]NotificationResponse, error) {
	notifications, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, *s.convertToResponse(&notifications[i]))
	}
	return responses, nil
}

// UnreadCount returns the number of unread notifications for a user
func (s *NotificationService) UnreadCount(userID uuid.UUID) (*UnreadCountResponse, error) {
	count, err := s.repo.CountUnreadByUserID(userID)
	if err != nil {
		return nil, err
	}
	return &UnreadCountResponse{UnreadCount: count}, nil
}

// MarkAllRead flips all of a user's notifications from unread to read
func (s *NotificationService) MarkAllRead(userID uuid.UUID) error {
	return s.repo.MarkAllReadByUserID(userID)
}

// NotifyTaskAssigned records the assignment notification for the assignee.
// Called by the task service after a task is persisted.
func (s *NotificationService) NotifyTaskAssigned(task *models.Task, assignee, creator *models.User) error {
	message := fmt.Sprintf("%s assigned you a task: %s", creator.FullName, task.Title)

	taskID := task.ID
	notification := &models.Notification{
		UserID:  assignee.ID,
		Message: message,
		Type:    models.NotificationTaskAssigned,
		IsRead:  false,
		TaskID:  &taskID,
	}
	return s.repo.Create(notification)
}

// NotifyTaskCompleted records the completion notification for the task's
// creator. Callers suppress the self-completion case.
func (s *NotificationService) NotifyTaskCompleted(task *models.Task, completedBy, creator *models.User) error {
	message := fmt.Sprintf("%s completed the task: %s", completedBy.FullName, task.Title)

	taskID := task.ID
	notification := &models.Notification{
		UserID:  creator.ID,
		Message: message,
		Type:    models.NotificationTaskCompleted,
		IsRead:  false,
		TaskID:  &taskID,
	}
	return s.repo.Create(notification)
}

func (s *NotificationService) convertToResponse(n *models.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:        n.ID,
		Message:   n.Message,
		Type:      string(n.Type),
		IsRead:    n.IsRead,
		TaskID:    n.TaskID,
		CreatedAt: n.CreatedAt,
	}
}
