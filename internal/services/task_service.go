package services

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"task_planner/internal/engine"
	"task_planner/internal/models"
	"task_planner/internal/repository"
)

// StatsCache is the slice of the Redis client the task service uses to drop
// the cached analytics summary after a mutation. A nil cache disables this.
type StatsCache interface {
	InvalidateStatsCache() error
}

type TaskService interface {
	CreateTask(task *models.Task) error
	GetTaskByID(id string) (*models.Task, error)
	GetAllTasks() ([]models.Task, error)
	UpdateTask(task *models.Task) error
	DeleteTask(id string) error
	DuplicateTask(id string) (*models.Task, error)
	// ToggleSubtask flips one subtask and returns the updated task plus the
	// next occurrence if the toggle completed a recurring task.
	ToggleSubtask(taskID, subtaskID string, completed bool) (*models.Task, *models.Task, error)
	// SetCompletion marks a task completed or incomplete; completing a
	// recurring task spawns its next occurrence.
	SetCompletion(id string, completed bool) (*models.Task, *models.Task, error)
	SetReminder(id string, settings *models.ReminderSettings) (*models.Task, error)
}

type taskService struct {
	taskRepo repository.TaskRepository
	cache    StatsCache
}

func NewTaskService(taskRepo repository.TaskRepository, cache StatsCache) TaskService {
	return &taskService{taskRepo: taskRepo, cache: cache}
}

func (s *taskService) CreateTask(task *models.Task) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.Status == "" {
		task.Status = models.StatusIncomplete
	}
	if err := s.taskRepo.Create(task); err != nil {
		return err
	}
	s.invalidateStats()
	return nil
}

func (s *taskService) GetTaskByID(id string) (*models.Task, error) {
	return s.taskRepo.GetByID(id)
}

func (s *taskService) GetAllTasks() ([]models.Task, error) {
	return s.taskRepo.GetAll()
}

func (s *taskService) UpdateTask(task *models.Task) error {
	existing, err := s.taskRepo.GetByID(task.ID)
	if err != nil {
		return err
	}

	// A changed due date starts a fresh reminder cycle.
	if !existing.DueDate.Equal(task.DueDate) {
		*task = engine.ResetNotification(*task)
	}
	if err := s.taskRepo.Update(task); err != nil {
		return err
	}
	s.invalidateStats()
	return nil
}

func (s *taskService) DeleteTask(id string) error {
	if err := s.taskRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateStats()
	return nil
}

func (s *taskService) DuplicateTask(id string) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	dup := task.Clone()
	dup.ID = uuid.NewString()
	dup.Title = fmt.Sprintf("%s (Bản sao)", task.Title)
	dup.Status = models.StatusIncomplete
	if dup.Reminder != nil {
		dup.Reminder.Notified = false
	}
	if err := s.taskRepo.Create(&dup); err != nil {
		return nil, err
	}
	s.invalidateStats()
	return &dup, nil
}

func (s *taskService) ToggleSubtask(taskID, subtaskID string, completed bool) (*models.Task, *models.Task, error) {
	task, err := s.taskRepo.GetByID(taskID)
	if err != nil {
		return nil, nil, err
	}

	wasCompleted := task.Status == models.StatusCompleted
	updated, err := engine.ApplySubtaskToggle(*task, subtaskID, completed)
	if err != nil {
		return nil, nil, err
	}
	if err := s.taskRepo.Update(&updated); err != nil {
		return nil, nil, err
	}

	var spawned *models.Task
	if !wasCompleted && updated.Status == models.StatusCompleted {
		if spawned, err = s.spawnNextOccurrence(updated); err != nil {
			return nil, nil, err
		}
	}
	s.invalidateStats()
	return &updated, spawned, nil
}

func (s *taskService) SetCompletion(id string, completed bool) (*models.Task, *models.Task, error) {
	task, err := s.taskRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}

	wasCompleted := task.Status == models.StatusCompleted
	if completed {
		task.Status = models.StatusCompleted
	} else {
		task.Status = models.StatusIncomplete
	}
	if err := s.taskRepo.Update(task); err != nil {
		return nil, nil, err
	}

	var spawned *models.Task
	if completed && !wasCompleted {
		if spawned, err = s.spawnNextOccurrence(*task); err != nil {
			return nil, nil, err
		}
	}
	s.invalidateStats()
	return task, spawned, nil
}

func (s *taskService) SetReminder(id string, settings *models.ReminderSettings) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	// Disabled settings remove the reminder entirely.
	if settings == nil || !settings.Enabled {
		task.Reminder = nil
	} else {
		rem := *settings
		rem.Notified = false
		task.Reminder = &rem
	}
	if err := s.taskRepo.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) spawnNextOccurrence(task models.Task) (*models.Task, error) {
	next := engine.NextOccurrence(task)
	if next == nil {
		return nil, nil
	}

	createdAt := time.Now()
	next.CreatedAt = createdAt
	next.UpdatedAt = createdAt
	if err := s.taskRepo.Create(next); err != nil {
		return nil, fmt.Errorf("failed to create next occurrence: %w", err)
	}
	return next, nil
}

// invalidateStats drops the cached analytics summary so the next stats read
// reflects the mutation. Cache errors only log; the mutation already landed.
func (s *taskService) invalidateStats() {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateStatsCache(); err != nil {
		log.Printf("Failed to invalidate stats cache: %v", err)
	}
}
