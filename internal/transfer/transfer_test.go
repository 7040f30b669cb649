package transfer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task_planner/internal/models"
)

func sampleTasks() []models.Task {
	endDate := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	return []models.Task{
		{
			ID:          "a1",
			Title:       `Họp nhóm "sprint"`,
			Description: "chuẩn bị slide, gửi trước cho cả nhóm",
			Category:    "công việc",
			Priority:    models.PriorityHigh,
			DueDate:     time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
			Status:      models.StatusIncomplete,
			Tags:        []string{"họp", "sprint"},
			Notes:       "phòng 302",
			SubTasks: []models.SubTask{
				{ID: "s1", Title: "làm slide", Completed: true},
				{ID: "s2", Title: "gửi mail", Completed: false},
			},
			Reminder: &models.ReminderSettings{Enabled: true, Time: 30, Unit: models.UnitMinutes},
		},
		{
			ID:               "a2",
			Title:            "tập thể dục",
			Category:         "sức khỏe",
			Priority:         models.PriorityLow,
			DueDate:          time.Date(2024, 3, 16, 6, 30, 0, 0, time.UTC),
			Status:           models.StatusCompleted,
			IsRecurring:      true,
			RecurringPattern: models.PatternCustom,
			RecurringCustom: &models.RecurrenceRule{
				Frequency: models.FreqWeekly,
				Interval:  1,
				Weekdays:  []time.Weekday{time.Monday, time.Friday},
				EndType:   models.EndOn,
				EndDate:   &endDate,
			},
		},
	}
}

func TestJSONRoundTrip(t *testing.T) {
	original := sampleTasks()

	data, name, err := Export(original, FormatJSON, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "tasks-2024-03-15.json", name)

	parsed, err := Parse(data, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestJSONImport_RejectsNonArray(t *testing.T) {
	_, err := Parse([]byte(`{"id":"x"}`), FormatJSON)
	assert.ErrorIs(t, err, ErrInvalidData)
}

func TestJSONImport_RejectsMissingFields(t *testing.T) {
	_, err := Parse([]byte(`[{"id":"x","title":"no due date"}]`), FormatJSON)
	assert.ErrorIs(t, err, ErrInvalidData)
}

func TestCSVRoundTrip(t *testing.T) {
	original := sampleTasks()

	data, name, err := Export(original, FormatCSV, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "tasks-2024-03-15.csv", name)

	parsed, err := Parse(data, FormatCSV)
	require.NoError(t, err)
	require.Len(t, parsed, 2)

	// CSV keeps only the flat columns.
	assert.Equal(t, original[0].ID, parsed[0].ID)
	assert.Equal(t, original[0].Title, parsed[0].Title)
	assert.Equal(t, original[0].Description, parsed[0].Description)
	assert.Equal(t, original[0].Priority, parsed[0].Priority)
	assert.Equal(t, original[0].Tags, parsed[0].Tags)
	assert.True(t, original[0].DueDate.Equal(parsed[0].DueDate))

	assert.True(t, parsed[1].IsRecurring)
	assert.Equal(t, models.PatternCustom, parsed[1].RecurringPattern)
	assert.Equal(t, models.StatusCompleted, parsed[1].Status)
}

func TestCSVImport_MalformedRow(t *testing.T) {
	data := "id,title,dueDate\nx1,hello,not-a-date\n"
	_, err := Parse([]byte(data), FormatCSV)
	assert.ErrorIs(t, err, ErrInvalidData)
}

func TestCSVImport_Empty(t *testing.T) {
	_, err := Parse([]byte("id,title,dueDate\n"), FormatCSV)
	assert.ErrorIs(t, err, ErrInvalidData)
}

func TestTSVExport(t *testing.T) {
	tasks := sampleTasks()
	tasks[0].Notes = "cột\tthứ hai"

	data, name, err := Export(tasks, FormatTSV, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "tasks-2024-03-15.tsv", name)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, 11, len(strings.Split(lines[0], "\t")))
	// Embedded tabs are flattened, so every row keeps the column count.
	assert.Equal(t, 11, len(strings.Split(lines[1], "\t")))
}

func TestTextRoundTrip(t *testing.T) {
	original := sampleTasks()

	data, _, err := Export(original, FormatText, time.Now())
	require.NoError(t, err)
	assert.Contains(t, string(data), "Tiêu đề: "+original[0].Title)
	assert.Contains(t, string(data), "Hạn chót: 15/03/2024 10:00")
	assert.Contains(t, string(data), "Trạng thái: Chưa hoàn thành")

	parsed, err := Parse(data, FormatText)
	require.NoError(t, err)
	require.Len(t, parsed, 2)

	assert.Equal(t, original[0].Title, parsed[0].Title)
	assert.Equal(t, original[0].Category, parsed[0].Category)
	assert.Equal(t, []string{"họp", "sprint"}, parsed[0].Tags)
	assert.Equal(t, models.StatusIncomplete, parsed[0].Status)
	assert.True(t, parsed[0].DueDate.Equal(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)))

	// Plain-text import assigns fresh ids.
	assert.NotEqual(t, original[0].ID, parsed[0].ID)
	assert.True(t, parsed[1].IsRecurring)
}

func TestTextImport_DateWithoutTime(t *testing.T) {
	payload := "Tiêu đề: việc nhà\nHạn chót: 20/03/2024\n"
	parsed, err := Parse([]byte(payload), FormatText)
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.Equal(t, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), parsed[0].DueDate)
}

func TestTextImport_NoRecords(t *testing.T) {
	_, err := Parse([]byte("just some prose without labels"), FormatText)
	assert.ErrorIs(t, err, ErrInvalidData)
}

func TestUnsupportedFormats(t *testing.T) {
	_, _, err := Export(nil, Format("xml"), time.Now())
	assert.Error(t, err)

	_, err = Parse([]byte("{}"), FormatTSV)
	assert.ErrorIs(t, err, ErrInvalidData)
}
