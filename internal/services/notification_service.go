package services

import (
	"fmt"
	"log"
	"time"

	"task_planner/internal/models"
	"task_planner/pkg/webhook"
)

type notificationService struct {
	client *webhook.Client
}

// NewNotificationService wraps the webhook client as a Notifier. A nil
// client degrades to log-only delivery, which keeps local setups working
// without a webhook endpoint.
func NewNotificationService(client *webhook.Client) Notifier {
	return &notificationService{client: client}
}

func (s *notificationService) Notify(task models.Task) error {
	message := fmt.Sprintf("%q sẽ đến hạn vào %s", task.Title, task.DueDate.Format("15:04 - 02/01/2006"))

	if s.client == nil {
		log.Printf("Nhắc nhở kế hoạch: %s", message)
		return nil
	}

	notification := webhook.Notification{
		Title:   "Nhắc nhở kế hoạch",
		Message: message,
		TaskID:  task.ID,
		DueDate: task.DueDate.Format(time.RFC3339),
	}
	if r := task.Reminder; r != nil {
		notification.Type = r.NotificationType
		notification.Sound = r.Sound
		notification.Volume = r.SoundVolume
	}

	_, err := s.client.Send(notification)
	return err
}
