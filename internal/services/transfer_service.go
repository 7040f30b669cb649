package services

import (
	"fmt"
	"time"

	"task_planner/internal/models"
	"task_planner/internal/redis"
	"task_planner/internal/repository"
	"task_planner/internal/transfer"
)

type ImportMode string

const (
	ImportMerge   ImportMode = "merge"   // add new records, skip duplicate ids
	ImportReplace ImportMode = "replace" // swap the whole collection
)

type TransferService interface {
	Export(format transfer.Format, now time.Time) (content []byte, filename string, err error)
	// Import parses the payload and persists it per mode. Parsing is
	// all-or-nothing: on error the stored collection is untouched.
	Import(data []byte, format transfer.Format, mode ImportMode) (int, error)
	Backup(now time.Time) error
	Restore() error
	LastBackup() (time.Time, error)
}

type transferService struct {
	taskRepo repository.TaskRepository
	backups  *redis.Client
}

func NewTransferService(taskRepo repository.TaskRepository, backups *redis.Client) TransferService {
	return &transferService{taskRepo: taskRepo, backups: backups}
}

func (s *transferService) Export(format transfer.Format, now time.Time) ([]byte, string, error) {
	tasks, err := s.taskRepo.GetAll()
	if err != nil {
		return nil, "", err
	}
	return transfer.Export(tasks, format, now)
}

func (s *transferService) Import(data []byte, format transfer.Format, mode ImportMode) (int, error) {
	parsed, err := transfer.Parse(data, format)
	if err != nil {
		return 0, err
	}

	if mode == ImportReplace {
		if err := s.taskRepo.ReplaceAll(parsed); err != nil {
			return 0, err
		}
		return len(parsed), nil
	}

	existing, err := s.taskRepo.GetAll()
	if err != nil {
		return 0, err
	}
	existingIDs := make(map[string]bool, len(existing))
	for _, task := range existing {
		existingIDs[task.ID] = true
	}

	var fresh []models.Task
	for _, task := range parsed {
		if !existingIDs[task.ID] {
			fresh = append(fresh, task)
		}
	}
	if err := s.taskRepo.CreateAll(fresh); err != nil {
		return 0, err
	}
	return len(fresh), nil
}

func (s *transferService) Backup(now time.Time) error {
	if s.backups == nil {
		return fmt.Errorf("backup store is not configured")
	}
	tasks, err := s.taskRepo.GetAll()
	if err != nil {
		return err
	}
	return s.backups.SetBackup(tasks, now)
}

func (s *transferService) Restore() error {
	if s.backups == nil {
		return fmt.Errorf("backup store is not configured")
	}
	tasks, err := s.backups.GetBackup()
	if err != nil {
		return err
	}
	return s.taskRepo.ReplaceAll(tasks)
}

func (s *transferService) LastBackup() (time.Time, error) {
	if s.backups == nil {
		return time.Time{}, fmt.Errorf("backup store is not configured")
	}
	return s.backups.LastBackupTime()
}
