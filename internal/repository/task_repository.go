package repository

import (
	"task_planner/internal/models"

	"gorm.io/gorm"
)

type TaskRepository interface {
	Create(task *models.Task) error
	GetByID(id string) (*models.Task, error)
	GetAll() ([]models.Task, error)
	Update(task *models.Task) error
	Delete(id string) error
	CreateAll(tasks []models.Task) error
	ReplaceAll(tasks []models.Task) error
}

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

func (r *taskRepository) GetByID(id string) (*models.Task, error) {
	var task models.Task
	err := r.db.First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) GetAll() ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Order("due_date asc").Find(&tasks).Error
	return tasks, err
}

func (r *taskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

func (r *taskRepository) Delete(id string) error {
	return r.db.Delete(&models.Task{}, "id = ?", id).Error
}

// CreateAll inserts a batch of tasks, used by merge imports after duplicate
// ids have been filtered out.
func (r *taskRepository) CreateAll(tasks []models.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	return r.db.Create(&tasks).Error
}

// ReplaceAll swaps the whole collection inside one transaction, used by
// replace imports and backup restore.
func (r *taskRepository) ReplaceAll(tasks []models.Task) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Task{}).Error; err != nil {
			return err
		}
		if len(tasks) == 0 {
			return nil
		}
		return tx.Create(&tasks).Error
	})
}
