package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task_planner/internal/models"
)

func taskWithSubtasks(completed ...bool) models.Task {
	subs := make([]models.SubTask, len(completed))
	for i, c := range completed {
		subs[i] = models.SubTask{ID: string(rune('a' + i)), Title: "step", Completed: c}
	}
	return models.Task{ID: "t1", Title: "parent", Status: models.StatusIncomplete, SubTasks: subs}
}

func TestApplySubtaskToggle_LastSubtaskCompletesParent(t *testing.T) {
	task := taskWithSubtasks(true, true, false)

	out, err := ApplySubtaskToggle(task, "c", true)
	require.NoError(t, err)

	assert.Equal(t, models.StatusCompleted, out.Status)
	assert.True(t, out.SubTasks[2].Completed)
}

func TestApplySubtaskToggle_PartialCompletionKeepsStatus(t *testing.T) {
	task := taskWithSubtasks(false, false)

	out, err := ApplySubtaskToggle(task, "a", true)
	require.NoError(t, err)

	assert.Equal(t, models.StatusIncomplete, out.Status)
}

func TestApplySubtaskToggle_NoAutoRevert(t *testing.T) {
	task := taskWithSubtasks(true, true)
	task.Status = models.StatusCompleted

	out, err := ApplySubtaskToggle(task, "b", false)
	require.NoError(t, err)

	// One-way promotion: the parent stays completed when a subtask is
	// un-checked afterwards.
	assert.Equal(t, models.StatusCompleted, out.Status)
	assert.False(t, out.SubTasks[1].Completed)
}

func TestApplySubtaskToggle_NotFound(t *testing.T) {
	task := taskWithSubtasks(false)

	_, err := ApplySubtaskToggle(task, "missing", true)
	assert.ErrorIs(t, err, ErrSubtaskNotFound)
}

func TestApplySubtaskToggle_PreservesOrderAndOtherFields(t *testing.T) {
	task := taskWithSubtasks(false, false, false)
	task.SubTasks[0].Title = "first"
	task.SubTasks[1].Title = "second"
	task.SubTasks[2].Title = "third"

	out, err := ApplySubtaskToggle(task, "b", true)
	require.NoError(t, err)

	assert.Equal(t, "first", out.SubTasks[0].Title)
	assert.Equal(t, "second", out.SubTasks[1].Title)
	assert.Equal(t, "third", out.SubTasks[2].Title)
	assert.False(t, out.SubTasks[0].Completed)
	assert.True(t, out.SubTasks[1].Completed)
	assert.False(t, out.SubTasks[2].Completed)
}

func TestApplySubtaskToggle_DoesNotMutateInput(t *testing.T) {
	task := taskWithSubtasks(true, false)

	_, err := ApplySubtaskToggle(task, "b", true)
	require.NoError(t, err)

	assert.False(t, task.SubTasks[1].Completed)
	assert.Equal(t, models.StatusIncomplete, task.Status)
}
