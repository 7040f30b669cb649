package main

import (
	"log"
	"time"

	"task_planner/internal/config"
	"task_planner/internal/database"
	"task_planner/internal/handlers"
	"task_planner/internal/redis"
	"task_planner/internal/repository"
	"task_planner/internal/services"
	"task_planner/pkg/webhook"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis (backup snapshots + stats cache)
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	// Initialize notification webhook client
	var webhookClient *webhook.Client
	if cfg.WebhookURL != "" {
		webhookClient = webhook.NewClient(cfg.WebhookURL, cfg.WebhookUsername, cfg.WebhookPassword)
	} else {
		log.Println("WEBHOOK_URL not set, reminders will be logged only")
	}

	// Initialize repositories
	taskRepo := repository.NewTaskRepository(db)

	// Initialize services
	taskService := services.NewTaskService(taskRepo, redisClient)
	notifier := services.NewNotificationService(webhookClient)
	transferService := services.NewTransferService(taskRepo, redisClient)
	analyticsService := services.NewAnalyticsService(taskRepo, redisClient, time.Duration(cfg.StatsCacheTTL)*time.Second)
	scheduler := services.NewSchedulerService(taskRepo, notifier, time.Duration(cfg.TickInterval)*time.Second)

	// Start the polling loop (status refresh + reminder checks)
	scheduler.Start()
	defer scheduler.Stop()

	// Initialize handlers
	apiHandler := handlers.NewAPIHandler(taskService, transferService, analyticsService)

	// Setup routes
	router := gin.Default()

	api := router.Group("/api")
	{
		api.GET("/tasks", apiHandler.ListTasks)
		api.POST("/tasks", apiHandler.CreateTask)
		api.GET("/tasks/:id", apiHandler.GetTask)
		api.PUT("/tasks/:id", apiHandler.UpdateTask)
		api.DELETE("/tasks/:id", apiHandler.DeleteTask)
		api.POST("/tasks/:id/duplicate", apiHandler.DuplicateTask)

		api.PUT("/tasks/:id/complete", apiHandler.SetCompletion)
		api.PUT("/tasks/:id/subtasks/:subtask_id", apiHandler.ToggleSubtask)
		api.PUT("/tasks/:id/reminder", apiHandler.SetReminder)

		api.GET("/export", apiHandler.Export)
		api.POST("/import", apiHandler.Import)
		api.POST("/backup", apiHandler.Backup)
		api.POST("/restore", apiHandler.Restore)
		api.GET("/backup/last", apiHandler.LastBackup)

		api.GET("/stats", apiHandler.GetStats)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
