package service

import (
	"sort"

	"taskask-backend/internal/database/models"
	"taskask-backend/internal/repository"

	"github.com/google/uuid"
)

// PerformanceService computes cross-task completion statistics.
// Read-only: a single pass over the full task set, no incremental state.
type PerformanceService struct {
	taskRepo repository.TaskRepositoryInterface
}

// NewPerformanceService creates a new performance service
func NewPerformanceService(taskRepo repository.TaskRepositoryInterface) *PerformanceService {
	return &PerformanceService{taskRepo: taskRepo}
}

// UserPerformance is the per-assignee rollup
type UserPerformance struct {
	UserID                uuid.UUID `json:"userId"`
	FullName              string    `json:"fullName"`
	Email                 string    `json:"email"`
	TotalTasks            int64     `json:"totalTasks"`
	CompletedTasks        int64     `json:"completedTasks"`
	CompletionRatePercent float64   `json:"completionRatePercent"`
}

// PerformanceSummary is the global rollup plus per-user entries sorted by
// completion rate descending
type PerformanceSummary struct {
	TotalTasks            int64             `json:"totalTasks"`
	CompletedTasks        int64             `json:"completedTasks"`
	InProgressTasks       int64             `json:"inProgressTasks"`
	PendingTasks          int64             `json:"pendingTasks"`
	CompletionRatePercent float64           `json:"completionRatePercent"`
	UserStats             []UserPerformance `json:"userStats"`
}

// GetSummary loads the full task set once and aggregates completion counts
// globally and per assignee. Tasks whose assignee no longer resolves are
// excluded from the per-user stats, not an error.
func (s *PerformanceService) GetSummary() (*PerformanceSummary, error) {
	tasks, err := s.taskRepo.GetAllWithAssignees()
	if err != nil {
		return nil, err
	}

	var total, completed, inProgress, pending int64
	counters := make(map[uuid.UUID]*UserPerformance)
	order := make([]uuid.UUID, 0)

	for i := range tasks {
		task := &tasks[i]
		total++
		switch task.Status {
		case models.TaskStatusCompleted:
			completed++
		case models.TaskStatusInProgress:
			inProgress++
		case models.TaskStatusPending:
			pending++
		}

		assignee := task.AssignedTo
		if assignee == nil || assignee.ID == uuid.Nil {
			continue
		}

		counter, ok := counters[assignee.ID]
		if !ok {
			counter = &UserPerformance{
				UserID:   assignee.ID,
				FullName: assignee.FullName,
				Email:    assignee.Email,
			}
			counters[assignee.ID] = counter
			order = append(order, assignee.ID)
		}
		counter.TotalTasks++
		if task.Status == models.TaskStatusCompleted {
			counter.CompletedTasks++
		}
	}

	userStats := make([]UserPerformance, 0, len(order))
	for _, id := range order {
		counter := counters[id]
		counter.CompletionRatePercent = completionRate(counter.CompletedTasks, counter.TotalTasks)
		userStats = append(userStats, *counter)
	}

	sort.SliceStable(userStats, func(i, j int) bool {
		return userStats[i].CompletionRatePercent > userStats[j].CompletionRatePercent
	})

	return &PerformanceSummary{
		TotalTasks:            total,
		CompletedTasks:        completed,
		InProgressTasks:       inProgress,
		PendingTasks:          pending,
		CompletionRatePercent: completionRate(completed, total),
		UserStats:             userStats,
	}, nil
}

// completionRate is completed/total as a percentage, 0 at zero total
func completionRate(completed, total int64) float64 {
	if total == 0 {
		return 0.0
	}
	return float64(completed) * 100.0 / float64(total)
}
