package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"roomies-api/domain/apperrors"
	"roomies-api/domain/models"
	"roomies-api/domain/repositories"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task, assigneeIDs []uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(task).Error; err != nil {
			return err
		}
		for _, userID := range assigneeIDs {
			link := &models.TaskAssignee{
				ID:        uuid.New(),
				TaskID:    task.ID,
				UserID:    userID,
				CreatedAt: time.Now(),
			}
			if err := tx.Create(link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return translateTaskError(err)
	}
	return nil
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Preload("CompletedBy").
		Preload("Assignees").
		Where("id = ?", id).
		First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("task %s not found", id)
		}
		return nil, apperrors.Storage(err)
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) List(ctx context.Context) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Preload("CompletedBy").
		Preload("Assignees").
		Order("created_at").
		Find(&tasks).Error
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	return tasks, nil
}

// UpdateWithAssignees เขียน field updates และ edge adds/removes ใน transaction เดียว
// write ไหนพัง gorm rollback ให้ทั้งก้อน ตาม atomicity contract ของ task update
func (r *TaskRepositoryImpl) UpdateWithAssignees(ctx context.Context, task *models.Task, addIDs, removeIDs []uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Omit associations กัน Save ไป upsert edges เอง
		// edges จัดการตรงๆ ข้างล่างนี้แทน
		if err := tx.Omit("CreatedBy", "CompletedBy", "Assignees").Save(task).Error; err != nil {
			return err
		}

		for _, userID := range addIDs {
			link := &models.TaskAssignee{
				ID:        uuid.New(),
				TaskID:    task.ID,
				UserID:    userID,
				CreatedAt: time.Now(),
			}
			if err := tx.Create(link).Error; err != nil {
				return err
			}
		}

		for _, userID := range removeIDs {
			if err := tx.Where("task_id = ? AND user_id = ?", task.ID, userID).
				Delete(&models.TaskAssignee{}).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return translateTaskError(err)
	}
	return nil
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// cascade ลบ assignment edges ของ task นี้ก่อน
		if err := tx.Where("task_id = ?", id).Delete(&models.TaskAssignee{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Task{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.NotFound("task %s not found", id)
		}
		return nil
	})
	if err != nil {
		return translateTaskError(err)
	}
	return nil
}

func (r *TaskRepositoryImpl) AssigneeIDs(ctx context.Context, taskID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&models.TaskAssignee{}).
		Where("task_id = ?", taskID).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	return ids, nil
}

func translateTaskError(err error) error {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// unique (task_id, user_id) โดน insert ซ้ำ ไม่ควรเกิดเพราะ reconcile เป็น set อยู่แล้ว
		return apperrors.Conflict("assignment already exists")
	}
	return apperrors.Storage(err)
}
