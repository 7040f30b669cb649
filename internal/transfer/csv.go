package transfer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"task_planner/internal/models"
)

// Column order is fixed by the original export format.
var columns = []string{
	"id", "title", "description", "category", "priority",
	"dueDate", "status", "tags", "isRecurring", "recurringPattern", "notes",
}

func exportCSV(tasks []models.Task) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(columns); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, task := range tasks {
		if err := w.Write(csvRecord(task)); err != nil {
			return nil, fmt.Errorf("failed to write csv record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func csvRecord(task models.Task) []string {
	return []string{
		task.ID,
		task.Title,
		task.Description,
		task.Category,
		string(task.Priority),
		task.DueDate.Format(time.RFC3339),
		string(task.Status),
		strings.Join(task.Tags, ","),
		strconv.FormatBool(task.IsRecurring),
		task.RecurringPattern,
		task.Notes,
	}
}

func parseCSV(data []byte) ([]models.Task, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: malformed csv: %v", ErrInvalidData, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: no data rows found", ErrInvalidData)
	}

	headers := rows[0]
	var tasks []models.Task
	for i, row := range rows[1:] {
		task, err := taskFromRow(headers, row)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrInvalidData, i+1, err)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func taskFromRow(headers, row []string) (models.Task, error) {
	var task models.Task
	for i, header := range headers {
		if i >= len(row) {
			break
		}
		value := row[i]
		switch header {
		case "id":
			task.ID = value
		case "title":
			task.Title = value
		case "description":
			task.Description = value
		case "category":
			task.Category = value
		case "priority":
			task.Priority = models.TaskPriority(value)
		case "dueDate":
			due, err := time.Parse(time.RFC3339, value)
			if err != nil {
				return task, fmt.Errorf("bad dueDate %q", value)
			}
			task.DueDate = due
		case "status":
			task.Status = models.TaskStatus(value)
		case "tags":
			if value != "" {
				task.Tags = strings.Split(value, ",")
			}
		case "isRecurring":
			task.IsRecurring = value == "true"
		case "recurringPattern":
			task.RecurringPattern = value
		case "notes":
			task.Notes = value
		}
	}
	if task.ID == "" || task.Title == "" || task.DueDate.IsZero() {
		return task, fmt.Errorf("missing id, title or dueDate")
	}
	if task.Status == "" {
		task.Status = models.StatusIncomplete
	}
	return task, nil
}

// exportTSV writes the tab-separated variant; tabs inside free-text fields
// are flattened to spaces instead of quoted.
func exportTSV(tasks []models.Task) []byte {
	var buf bytes.Buffer
	buf.WriteString(strings.Join(columns, "\t"))
	buf.WriteByte('\n')
	for _, task := range tasks {
		record := csvRecord(task)
		for i, field := range record {
			record[i] = strings.ReplaceAll(field, "\t", " ")
		}
		buf.WriteString(strings.Join(record, "\t"))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
