package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"task_planner/internal/engine"
	"task_planner/internal/models"
	"task_planner/internal/services"
	"task_planner/internal/transfer"
)

type APIHandler struct {
	taskService      services.TaskService
	transferService  services.TransferService
	analyticsService services.AnalyticsService
}

func NewAPIHandler(
	taskService services.TaskService,
	transferService services.TransferService,
	analyticsService services.AnalyticsService,
) *APIHandler {
	return &APIHandler{
		taskService:      taskService,
		transferService:  transferService,
		analyticsService: analyticsService,
	}
}

// Task CRUD

func (h *APIHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.GetAllTasks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *APIHandler) GetTask(c *gin.Context) {
	task, err := h.taskService.GetTaskByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *APIHandler) CreateTask(c *gin.Context) {
	var task models.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if task.Title == "" || task.DueDate.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and dueDate are required"})
		return
	}

	if err := h.taskService.CreateTask(&task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (h *APIHandler) UpdateTask(c *gin.Context) {
	var task models.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	task.ID = c.Param("id")

	if err := h.taskService.UpdateTask(&task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *APIHandler) DeleteTask(c *gin.Context) {
	if err := h.taskService.DeleteTask(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *APIHandler) DuplicateTask(c *gin.Context) {
	dup, err := h.taskService.DuplicateTask(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	c.JSON(http.StatusCreated, dup)
}

// Engine-backed operations

func (h *APIHandler) ToggleSubtask(c *gin.Context) {
	var req struct {
		Completed bool `json:"completed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	updated, spawned, err := h.taskService.ToggleSubtask(c.Param("id"), c.Param("subtask_id"), req.Completed)
	if err != nil {
		if errors.Is(err, engine.ErrSubtaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subtask not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": updated, "next_occurrence": spawned})
}

func (h *APIHandler) SetCompletion(c *gin.Context) {
	var req struct {
		Completed bool `json:"completed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	updated, spawned, err := h.taskService.SetCompletion(c.Param("id"), req.Completed)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": updated, "next_occurrence": spawned})
}

func (h *APIHandler) SetReminder(c *gin.Context) {
	var settings models.ReminderSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	task, err := h.taskService.SetReminder(c.Param("id"), &settings)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, task)
}

// Import / export / backup

func (h *APIHandler) Export(c *gin.Context) {
	format := transfer.Format(c.DefaultQuery("format", "json"))

	content, filename, err := h.transferService.Export(format, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType(format), content)
}

func (h *APIHandler) Import(c *gin.Context) {
	var req struct {
		Format string `json:"format"`
		Mode   string `json:"mode"`
		Data   string `json:"data"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	mode := services.ImportMode(req.Mode)
	if mode == "" {
		mode = services.ImportMerge
	}

	count, err := h.transferService.Import([]byte(req.Data), transfer.Format(req.Format), mode)
	if err != nil {
		if errors.Is(err, transfer.ErrInvalidData) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": count})
}

func (h *APIHandler) Backup(c *gin.Context) {
	if err := h.transferService.Backup(time.Now()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "backed up"})
}

func (h *APIHandler) Restore(c *gin.Context) {
	if err := h.transferService.Restore(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "restored"})
}

func (h *APIHandler) LastBackup(c *gin.Context) {
	at, err := h.transferService.LastBackup()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No backup found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"last_backup": at})
}

// Analytics

func (h *APIHandler) GetStats(c *gin.Context) {
	summary, err := h.analyticsService.GetSummary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func contentType(format transfer.Format) string {
	switch format {
	case transfer.FormatCSV:
		return "text/csv"
	case transfer.FormatTSV:
		return "text/tab-separated-values"
	case transfer.FormatText:
		return "text/plain"
	default:
		return "application/json"
	}
}
