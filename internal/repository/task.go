package repository

import (
	"taskask-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create creates a new task
func (r *TaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// GetByID retrieves a task by ID
func (r *TaskRepository) GetByID(id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// GetByAssigneeID retrieves all tasks assigned to a user
func (r *TaskRepository) GetByAssigneeID(userID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Where("assigned_to_id = ?", userID).Order("created_at DESC").Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetByAssigneeIDPaged retrieves a bounded page of tasks assigned to a user
// plus the total count
func (r *TaskRepository) GetByAssigneeIDPaged(userID uuid.UUID, limit, offset int) ([]models.Task, int64, error) {
	var tasks []models.Task
	var total int64

	query := r.db.Model(&models.Task{}).Where("assigned_to_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// GetByCreatorID retrieves all tasks created by a user
func (r *TaskRepository) GetByCreatorID(userID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Where("created_by_id = ?", userID).Order("created_at DESC").Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetAll retrieves all tasks
func (r *TaskRepository) GetAll() ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Order("created_at DESC").Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetAllWithAssignees retrieves all tasks with their assignee preloaded,
// used by the performance rollup
func (r *TaskRepository) GetAllWithAssignees() ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Preload("AssignedTo").Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update updates a task
func (r *TaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete hard-deletes a task
func (r *TaskRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Task{}, "id = ?", id).Error
}
