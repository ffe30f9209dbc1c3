package service

import (
	"time"

	"taskask-backend/internal/database/models"
	apperrors "taskask-backend/internal/errors"
	"taskask-backend/internal/logger"
	"taskask-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// TaskNotifier is the side-effect sink the task lifecycle writes to.
// Failures are logged and swallowed; a task mutation never rolls back
// because a notification could not be recorded.
type TaskNotifier interface {
	NotifyTaskAssigned(task *models.Task, assignee, creator *models.User) error
	NotifyTaskCompleted(task *models.Task, completedBy, creator *models.User) error
}

// TaskService owns the task lifecycle: creation, status transition, deletion
type TaskService struct {
	repo      repository.TaskRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	notifier  TaskNotifier
	validator *validator.Validate
	log       *logger.Logger
}

// NewTaskService creates a new task service
func NewTaskService(repo repository.TaskRepositoryInterface, userRepo repository.UserRepositoryInterface, notifier TaskNotifier, validator *validator.Validate) *TaskService {
	return &TaskService{
		repo:      repo,
		userRepo:  userRepo,
		notifier:  notifier,
		validator: validator,
		log:       logger.New(),
	}
}

// CreateTaskRequest represents the data needed to create a task.
// Dates are calendar dates without a time component.
type CreateTaskRequest struct {
	Title            string    `json:"title" validate:"required,max=150"`
	Description      string    `json:"description"`
	Priority         *string   `json:"priority"`
	Status           *string   `json:"status"`
	StartDate        *string   `json:"startDate"`
	DueDate          *string   `json:"dueDate"`
	CreatedByUserID  uuid.UUID `json:"createdByUserId" validate:"required"`
	AssignedToUserID uuid.UUID `json:"assignedToUserId" validate:"required"`
}

// UpdateTaskRequest carries a partial update: absent fields leave the
// persisted value unchanged
type UpdateTaskRequest struct {
	Status   *string `json:"status"`
	Priority *string `json:"priority"`
}

// TaskResponse represents the response projection of a task
type TaskResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Priority     string    `json:"priority"`
	Status       string    `json:"status"`
	StartDate    *string   `json:"startDate,omitempty"`
	DueDate      *string   `json:"dueDate,omitempty"`
	CreatedByID  uuid.UUID `json:"createdByUserId"`
	AssignedToID uuid.UUID `json:"assignedToUserId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TaskPageResponse is a bounded page of tasks plus the total count
type TaskPageResponse struct {
	Tasks  []TaskResponse `json:"tasks"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// CreateTask validates the creator/assignee roles, persists the task and
// notifies the assignee
func (s *TaskService) CreateTask(req *CreateTaskRequest) (*TaskResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	creator, err := s.userRepo.GetByID(req.CreatedByUserID)
	if err != nil || creator == nil {
		return nil, apperrors.NewValidationError("createdByUserId", "user does not exist")
	}
	if !creator.Role.CanCreateTasks() {
		return nil, apperrors.ErrCreatorRoleNotAllowed
	}

	assignee, err := s.userRepo.GetByID(req.AssignedToUserID)
	if err != nil || assignee == nil {
		return nil, apperrors.NewValidationError("assignedToUserId", "user does not exist")
	}
	if assignee.Role != models.RoleEmployee {
		return nil, apperrors.ErrAssigneeNotEmployee
	}

	priority := models.TaskPriorityMedium
	if req.Priority != nil {
		priority = models.TaskPriority(*req.Priority)
		if !priority.IsValid() {
			return nil, apperrors.NewValidationError("priority", "priority must be one of LOW, MEDIUM, HIGH")
		}
	}

	status := models.TaskStatusPending
	if req.Status != nil {
		status = models.TaskStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationError("status", "status must be one of PENDING, IN_PROGRESS, COMPLETED")
		}
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationError("startDate", "must be a date in YYYY-MM-DD format")
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return nil, apperrors.NewValidationError("dueDate", "must be a date in YYYY-MM-DD format")
	}

	task := &models.Task{
		Title:        req.Title,
		Description:  req.Description,
		Priority:     priority,
		Status:       status,
		StartDate:    startDate,
		DueDate:      dueDate,
		CreatedByID:  creator.ID,
		AssignedToID: assignee.ID,
	}

	if err := s.repo.Create(task); err != nil {
		return nil, err
	}

	// Fire-and-forget: the task is already persisted
	if err := s.notifier.NotifyTaskAssigned(task, assignee, creator); err != nil {
		s.log.WithField("task_id", task.ID).WithError(err).Error("failed to record assignment notification")
	}

	return s.convertToResponse(task), nil
}

// UpdateTask applies a partial status/priority update and emits a completion
// notification on the transition into COMPLETED
func (s *TaskService) UpdateTask(taskID uuid.UUID, req *UpdateTaskRequest) (*TaskResponse, error) {
	task, err := s.repo.GetByID(taskID)
	if err != nil || task == nil {
		return nil, apperrors.ErrTaskNotFound
	}

	wasCompleted := task.Status == models.TaskStatusCompleted

	if req.Status != nil {
		status := models.TaskStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationError("status", "status must be one of PENDING, IN_PROGRESS, COMPLETED")
		}
		task.Status = status
	}
	if req.Priority != nil {
		priority := models.TaskPriority(*req.Priority)
		if !priority.IsValid() {
			return nil, apperrors.NewValidationError("priority", "priority must be one of LOW, MEDIUM, HIGH")
		}
		task.Priority = priority
	}

	if err := s.repo.Update(task); err != nil {
		return nil, err
	}

	if !wasCompleted && task.Status == models.TaskStatusCompleted {
		s.notifyCompleted(task)
	}

	return s.convertToResponse(task), nil
}

// notifyCompleted tells the creator the assignee finished the task.
// Self-completion is suppressed and failures only logged.
func (s *TaskService) notifyCompleted(task *models.Task) {
	if task.CreatedByID == task.AssignedToID {
		return
	}

	creator, err := s.userRepo.GetByID(task.CreatedByID)
	if err != nil || creator == nil {
		s.log.WithField("task_id", task.ID).Warn("completion notification skipped: creator no longer resolves")
		return
	}
	assignee, err := s.userRepo.GetByID(task.AssignedToID)
	if err != nil || assignee == nil {
		s.log.WithField("task_id", task.ID).Warn("completion notification skipped: assignee no longer resolves")
		return
	}

	if err := s.notifier.NotifyTaskCompleted(task, assignee, creator); err != nil {
		s.log.WithField("task_id", task.ID).WithError(err).Error("failed to record completion notification")
	}
}

// DeleteTask hard-deletes a task
func (s *TaskService) DeleteTask(taskID uuid.UUID) error {
	task, err := s.repo.GetByID(taskID)
	if err != nil || task == nil {
		return apperrors.ErrTaskNotFound
	}
	return s.repo.Delete(taskID)
}

// GetTasksForAssignee returns all tasks assigned to a user
func (s *TaskService) GetTasksForAssignee(userID uuid.UUID) ([]TaskResponse, error) {
	tasks, err := s.repo.GetByAssigneeID(userID)
	if err != nil {
		return nil, err
	}
	return s.convertAll(tasks), nil
}

// GetTasksForAssigneePaged returns a bounded page of a user's assigned tasks
// plus the total count
func (s *TaskService) GetTasksForAssigneePaged(userID uuid.UUID, limit, offset int) (*TaskPageResponse, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	tasks, total, err := s.repo.GetByAssigneeIDPaged(userID, limit, offset)
	if err != nil {
		return nil, err
	}

	return &TaskPageResponse{
		Tasks:  s.convertAll(tasks),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// GetTasksCreatedBy returns all tasks a user authored
func (s *TaskService) GetTasksCreatedBy(userID uuid.UUID) ([]TaskResponse, error) {
	tasks, err := s.repo.GetByCreatorID(userID)
	if err != nil {
		return nil, err
	}
	return s.convertAll(tasks), nil
}

// GetAllTasks returns the unfiltered administrative task list
func (s *TaskService) GetAllTasks() ([]TaskResponse, error) {
	tasks, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return s.convertAll(tasks), nil
}

func (s *TaskService) convertAll(tasks []models.Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, *s.convertToResponse(&tasks[i]))
	}
	return responses
}

func (s *TaskService) convertToResponse(task *models.Task) *TaskResponse {
	return &TaskResponse{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		Priority:     string(task.Priority),
		Status:       string(task.Status),
		StartDate:    formatDate(task.StartDate),
		DueDate:      formatDate(task.DueDate),
		CreatedByID:  task.CreatedByID,
		AssignedToID: task.AssignedToID,
		CreatedAt:    task.CreatedAt,
		UpdatedAt:    task.UpdatedAt,
	}
}

func parseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func formatDate(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := value.Format(dateLayout)
	return &formatted
}
