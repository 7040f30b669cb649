// Package engine implements the task temporal logic: status derivation,
// subtask completion propagation, recurrence expansion and reminder
// scheduling. Every function is pure; the caller supplies the reference
// instant and persists the result.
package engine

import (
	"time"

	"task_planner/internal/models"
)

// DeriveStatus recomputes a task's status against now. Completion is sticky;
// a task only becomes overdue once its due date's calendar day has fully
// passed, so a task due today is never overdue.
func DeriveStatus(task models.Task, now time.Time) models.TaskStatus {
	if task.Status == models.StatusCompleted {
		return models.StatusCompleted
	}
	if startOfDay(task.DueDate).Before(startOfDay(now)) {
		return models.StatusOverdue
	}
	return models.StatusIncomplete
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
