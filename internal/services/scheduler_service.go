package services

import (
	"log"
	"time"

	"task_planner/internal/engine"
	"task_planner/internal/models"
	"task_planner/internal/repository"
)

// Notifier delivers a reminder alert for a task. The scheduler does not care
// how; the webhook-backed NotificationService is the production notifier.
type Notifier interface {
	Notify(task models.Task) error
}

type SchedulerService interface {
	Start()
	Stop()
	Tick(now time.Time) error
}

type schedulerService struct {
	taskRepo repository.TaskRepository
	notifier Notifier
	interval time.Duration
	done     chan struct{}
}

func NewSchedulerService(taskRepo repository.TaskRepository, notifier Notifier, interval time.Duration) SchedulerService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &schedulerService{
		taskRepo: taskRepo,
		notifier: notifier,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start runs the polling loop: one tick immediately, then one per interval
// until Stop.
func (s *schedulerService) Start() {
	go func() {
		if err := s.Tick(time.Now()); err != nil {
			log.Printf("scheduler tick failed: %v", err)
		}

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case now := <-ticker.C:
				if err := s.Tick(now); err != nil {
					log.Printf("scheduler tick failed: %v", err)
				}
			case <-s.done:
				return
			}
		}
	}()
}

func (s *schedulerService) Stop() {
	close(s.done)
}

// Tick evaluates the whole collection at now: status derivation first, then
// reminder checks against the refreshed status, so a reminder never fires
// with a stale status from the previous tick.
func (s *schedulerService) Tick(now time.Time) error {
	tasks, err := s.taskRepo.GetAll()
	if err != nil {
		return err
	}

	for _, task := range tasks {
		if status := engine.DeriveStatus(task, now); status != task.Status {
			task.Status = status
			if err := s.taskRepo.Update(&task); err != nil {
				log.Printf("failed to persist status of task %s: %v", task.ID, err)
				continue
			}
		}

		if !engine.ShouldFireReminder(task, now) {
			continue
		}
		if err := s.notifier.Notify(task); err != nil {
			// Leave the dedup flag untouched so the next tick inside the
			// tolerance window retries.
			log.Printf("failed to notify for task %s: %v", task.ID, err)
			continue
		}
		task = engine.MarkNotified(task)
		if err := s.taskRepo.Update(&task); err != nil {
			log.Printf("failed to persist reminder flag of task %s: %v", task.ID, err)
		}
	}
	return nil
}
