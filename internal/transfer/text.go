package transfer

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"task_planner/internal/models"
)

// Plain-text record labels and the dd/MM/yyyy HH:mm date format follow the
// original share/export layout.
const textDateLayout = "02/01/2006 15:04"

const (
	labelTitle    = "Tiêu đề"
	labelDesc     = "Mô tả"
	labelCategory = "Danh mục"
	labelPriority = "Mức độ ưu tiên"
	labelDue      = "Hạn chót"
	labelStatus   = "Trạng thái"
	labelTags     = "Nhãn"
	labelRepeat   = "Lặp lại"
	labelNotes    = "Ghi chú"
)

func statusLabel(status models.TaskStatus) string {
	switch status {
	case models.StatusCompleted:
		return "Hoàn thành"
	case models.StatusOverdue:
		return "Quá hạn"
	default:
		return "Chưa hoàn thành"
	}
}

func statusFromLabel(label string) models.TaskStatus {
	switch label {
	case "Hoàn thành":
		return models.StatusCompleted
	case "Quá hạn":
		return models.StatusOverdue
	default:
		return models.StatusIncomplete
	}
}

func exportText(tasks []models.Task) []byte {
	var buf bytes.Buffer
	for _, task := range tasks {
		fmt.Fprintf(&buf, "%s: %s\n", labelTitle, task.Title)
		fmt.Fprintf(&buf, "%s: %s\n", labelDesc, task.Description)
		fmt.Fprintf(&buf, "%s: %s\n", labelCategory, task.Category)
		fmt.Fprintf(&buf, "%s: %s\n", labelPriority, task.Priority)
		fmt.Fprintf(&buf, "%s: %s\n", labelDue, task.DueDate.Format(textDateLayout))
		fmt.Fprintf(&buf, "%s: %s\n", labelStatus, statusLabel(task.Status))
		if len(task.Tags) > 0 {
			fmt.Fprintf(&buf, "%s: %s\n", labelTags, strings.Join(task.Tags, ", "))
		}
		if task.IsRecurring {
			fmt.Fprintf(&buf, "%s: %s\n", labelRepeat, task.RecurringPattern)
		}
		if task.Notes != "" {
			fmt.Fprintf(&buf, "%s: %s\n", labelNotes, task.Notes)
		}
		buf.WriteString("\n---\n\n")
	}
	return buf.Bytes()
}

func parseText(data []byte) ([]models.Task, error) {
	var tasks []models.Task

	for _, block := range strings.Split(string(data), "---") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		task := models.Task{
			ID:     uuid.NewString(),
			Status: models.StatusIncomplete,
		}

		for _, line := range strings.Split(block, "\n") {
			key, value, found := strings.Cut(line, ":")
			if !found {
				continue
			}
			key = strings.TrimSpace(key)
			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}

			switch key {
			case labelTitle:
				task.Title = value
			case labelDesc:
				task.Description = value
			case labelCategory:
				task.Category = value
			case labelPriority:
				task.Priority = models.TaskPriority(value)
			case labelDue:
				due, err := parseTextDate(value)
				if err != nil {
					return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
				}
				task.DueDate = due
			case labelStatus:
				task.Status = statusFromLabel(value)
			case labelTags:
				tags := strings.Split(value, ",")
				for i := range tags {
					tags[i] = strings.TrimSpace(tags[i])
				}
				task.Tags = tags
			case labelRepeat:
				task.IsRecurring = true
				task.RecurringPattern = value
			case labelNotes:
				task.Notes = value
			}
		}

		if task.Title != "" && !task.DueDate.IsZero() {
			tasks = append(tasks, task)
		}
	}

	if len(tasks) == 0 {
		return nil, fmt.Errorf("%w: no valid records found", ErrInvalidData)
	}
	return tasks, nil
}

func parseTextDate(value string) (time.Time, error) {
	if t, err := time.Parse(textDateLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse("02/01/2006", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad date %q", value)
	}
	return t, nil
}
