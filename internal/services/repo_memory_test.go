package services

import (
	"fmt"

	"task_planner/internal/models"
)

// memRepo is an in-memory TaskRepository for service tests.
type memRepo struct {
	tasks []models.Task
}

func (r *memRepo) Create(task *models.Task) error {
	r.tasks = append(r.tasks, task.Clone())
	return nil
}

func (r *memRepo) GetByID(id string) (*models.Task, error) {
	for _, task := range r.tasks {
		if task.ID == id {
			out := task.Clone()
			return &out, nil
		}
	}
	return nil, fmt.Errorf("task %s not found", id)
}

func (r *memRepo) GetAll() ([]models.Task, error) {
	out := make([]models.Task, len(r.tasks))
	for i, task := range r.tasks {
		out[i] = task.Clone()
	}
	return out, nil
}

func (r *memRepo) Update(task *models.Task) error {
	for i, existing := range r.tasks {
		if existing.ID == task.ID {
			r.tasks[i] = task.Clone()
			return nil
		}
	}
	return fmt.Errorf("task %s not found", task.ID)
}

func (r *memRepo) Delete(id string) error {
	for i, task := range r.tasks {
		if task.ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memRepo) CreateAll(tasks []models.Task) error {
	for i := range tasks {
		if err := r.Create(&tasks[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *memRepo) ReplaceAll(tasks []models.Task) error {
	r.tasks = nil
	return r.CreateAll(tasks)
}

// memStatsCache counts invalidations.
type memStatsCache struct {
	invalidations int
	err           error
}

func (c *memStatsCache) InvalidateStatsCache() error {
	if c.err != nil {
		return c.err
	}
	c.invalidations++
	return nil
}

// captureNotifier records notified tasks.
type captureNotifier struct {
	notified []models.Task
	err      error
}

func (n *captureNotifier) Notify(task models.Task) error {
	if n.err != nil {
		return n.err
	}
	n.notified = append(n.notified, task)
	return nil
}
