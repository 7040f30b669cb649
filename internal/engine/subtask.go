package engine

import (
	"errors"
	"fmt"

	"task_planner/internal/models"
)

// ErrSubtaskNotFound reports a toggle against a subtask id the task does not
// contain.
var ErrSubtaskNotFound = errors.New("subtask not found")

// ApplySubtaskToggle sets the completion flag of one subtask and promotes the
// parent to completed when every subtask is done. The promotion is one-way:
// un-checking a subtask never reverts an already completed parent. Subtask
// order and all other fields are preserved.
func ApplySubtaskToggle(task models.Task, subtaskID string, completed bool) (models.Task, error) {
	out := task.Clone()

	idx := -1
	for i, st := range out.SubTasks {
		if st.ID == subtaskID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return task, fmt.Errorf("task %s: %w: %s", task.ID, ErrSubtaskNotFound, subtaskID)
	}

	out.SubTasks[idx].Completed = completed

	allCompleted := len(out.SubTasks) > 0
	for _, st := range out.SubTasks {
		if !st.Completed {
			allCompleted = false
			break
		}
	}
	if allCompleted {
		out.Status = models.StatusCompleted
	}
	return out, nil
}
