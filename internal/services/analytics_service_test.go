package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task_planner/internal/models"
)

func TestSummarize(t *testing.T) {
	due := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	tasks := []models.Task{
		{ID: "a", Status: models.StatusCompleted, Priority: models.PriorityHigh,
			Category: "công việc", Tags: []string{"họp"}, DueDate: due},
		{ID: "b", Status: models.StatusCompleted, Priority: models.PriorityMedium,
			Category: "công việc", DueDate: due},
		{ID: "c", Status: models.StatusIncomplete, Priority: models.PriorityLow,
			Category: "cá nhân", Tags: []string{"họp", "gia đình"}, DueDate: due},
		{ID: "d", Status: models.StatusOverdue, Priority: models.PriorityHigh, DueDate: due},
	}

	summary := Summarize(tasks)

	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 2, summary.Completed)
	assert.Equal(t, 1, summary.Incomplete)
	assert.Equal(t, 1, summary.Overdue)
	assert.Equal(t, 50, summary.CompletionRate)

	assert.Equal(t, 2, summary.ByPriority["cao"])
	assert.Equal(t, 2, summary.ByCategory["công việc"])
	assert.Equal(t, 2, summary.ByTag["họp"])
	assert.Equal(t, 1, summary.ByTag["gia đình"])
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)
	assert.Equal(t, 0, summary.Total)
	assert.Equal(t, 0, summary.CompletionRate)
}

func TestGetSummary_WithoutCache(t *testing.T) {
	repo := &memRepo{tasks: []models.Task{
		{ID: "a", Status: models.StatusCompleted, DueDate: time.Now()},
	}}
	svc := NewAnalyticsService(repo, nil, time.Minute)

	summary, err := svc.GetSummary()
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Completed)
	assert.Equal(t, 100, summary.CompletionRate)
}
