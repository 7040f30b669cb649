package services

import (
	"time"

	"task_planner/internal/models"
	"task_planner/internal/redis"
	"task_planner/internal/repository"
)

// Summary is the completion-statistics snapshot behind the analytics view.
type Summary struct {
	Total          int            `json:"total"`
	Completed      int            `json:"completed"`
	Incomplete     int            `json:"incomplete"`
	Overdue        int            `json:"overdue"`
	CompletionRate int            `json:"completion_rate"` // percent, rounded
	ByPriority     map[string]int `json:"by_priority"`
	ByCategory     map[string]int `json:"by_category"`
	ByTag          map[string]int `json:"by_tag"`
}

type AnalyticsService interface {
	GetSummary() (*Summary, error)
}

type analyticsService struct {
	taskRepo repository.TaskRepository
	cache    *redis.Client
	cacheTTL time.Duration
}

func NewAnalyticsService(taskRepo repository.TaskRepository, cache *redis.Client, cacheTTL time.Duration) AnalyticsService {
	return &analyticsService{taskRepo: taskRepo, cache: cache, cacheTTL: cacheTTL}
}

func (s *analyticsService) GetSummary() (*Summary, error) {
	if s.cache != nil {
		var cached Summary
		if err := s.cache.GetStatsCache(&cached); err == nil {
			return &cached, nil
		}
	}

	tasks, err := s.taskRepo.GetAll()
	if err != nil {
		return nil, err
	}

	summary := Summarize(tasks)

	if s.cache != nil {
		// Stale-by-at-most-TTL is fine for a stats panel.
		_ = s.cache.SetStatsCache(summary, s.cacheTTL)
	}
	return summary, nil
}

// Summarize counts tasks by status, priority, category and tag.
func Summarize(tasks []models.Task) *Summary {
	summary := &Summary{
		Total:      len(tasks),
		ByPriority: make(map[string]int),
		ByCategory: make(map[string]int),
		ByTag:      make(map[string]int),
	}

	for _, task := range tasks {
		switch task.Status {
		case models.StatusCompleted:
			summary.Completed++
		case models.StatusOverdue:
			summary.Overdue++
		default:
			summary.Incomplete++
		}
		if task.Priority != "" {
			summary.ByPriority[string(task.Priority)]++
		}
		if task.Category != "" {
			summary.ByCategory[task.Category]++
		}
		for _, tag := range task.Tags {
			summary.ByTag[tag]++
		}
	}

	if summary.Total > 0 {
		summary.CompletionRate = (summary.Completed*100 + summary.Total/2) / summary.Total
	}
	return summary
}
