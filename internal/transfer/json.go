package transfer

import (
	"encoding/json"
	"fmt"

	"task_planner/internal/models"
)

func exportJSON(tasks []models.Task) ([]byte, error) {
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tasks: %w", err)
	}
	return data, nil
}

func parseJSON(data []byte) ([]models.Task, error) {
	var tasks []models.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("%w: payload must be an array of tasks: %v", ErrInvalidData, err)
	}
	for i, task := range tasks {
		if task.ID == "" || task.Title == "" || task.DueDate.IsZero() {
			return nil, fmt.Errorf("%w: task %d is missing id, title or dueDate", ErrInvalidData, i)
		}
	}
	return tasks, nil
}
