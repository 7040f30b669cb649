package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task_planner/internal/models"
	"task_planner/internal/transfer"
)

func seededRepo() *memRepo {
	return &memRepo{tasks: []models.Task{
		{ID: "a1", Title: "một", Status: models.StatusIncomplete,
			DueDate: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)},
		{ID: "a2", Title: "hai", Status: models.StatusCompleted,
			DueDate: time.Date(2024, 3, 16, 10, 0, 0, 0, time.UTC)},
	}}
}

func TestImport_MergeSkipsDuplicateIDs(t *testing.T) {
	repo := seededRepo()
	svc := NewTransferService(repo, nil)

	payload := []byte(`[
		{"id":"a1","title":"một (đã sửa)","dueDate":"2024-03-15T10:00:00Z","status":"incomplete"},
		{"id":"a3","title":"ba","dueDate":"2024-03-17T10:00:00Z","status":"incomplete"}
	]`)

	count, err := svc.Import(payload, transfer.FormatJSON, ImportMerge)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	all, _ := repo.GetAll()
	require.Len(t, all, 3)
	// Existing record wins over the imported duplicate.
	assert.Equal(t, "một", all[0].Title)
}

func TestImport_ReplaceSwapsCollection(t *testing.T) {
	repo := seededRepo()
	svc := NewTransferService(repo, nil)

	payload := []byte(`[{"id":"b1","title":"mới","dueDate":"2024-04-01T08:00:00Z","status":"incomplete"}]`)

	count, err := svc.Import(payload, transfer.FormatJSON, ImportReplace)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	all, _ := repo.GetAll()
	require.Len(t, all, 1)
	assert.Equal(t, "b1", all[0].ID)
}

func TestImport_InvalidPayloadLeavesCollectionUntouched(t *testing.T) {
	repo := seededRepo()
	svc := NewTransferService(repo, nil)

	_, err := svc.Import([]byte(`{"not":"an array"}`), transfer.FormatJSON, ImportReplace)
	assert.ErrorIs(t, err, transfer.ErrInvalidData)

	all, _ := repo.GetAll()
	assert.Len(t, all, 2)
}

func TestExport_RoundTripsThroughImport(t *testing.T) {
	repo := seededRepo()
	svc := NewTransferService(repo, nil)

	data, name, err := svc.Export(transfer.FormatJSON, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "tasks-2024-03-20.json", name)

	fresh := &memRepo{}
	freshSvc := NewTransferService(fresh, nil)
	count, err := freshSvc.Import(data, transfer.FormatJSON, ImportReplace)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	original, _ := repo.GetAll()
	restored, _ := fresh.GetAll()
	assert.Equal(t, original, restored)
}
