package repositories

import (
	"context"

	"github.com/google/uuid"

	"roomies-api/domain/models"
)

type TaskRepository interface {
	// Create เขียน task และ assignment edges เริ่มต้นใน transaction เดียว
	Create(ctx context.Context, task *models.Task, assigneeIDs []uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	List(ctx context.Context) ([]*models.Task, error)
	// UpdateWithAssignees เขียน field updates + add/remove edges เป็น transaction เดียว
	// ถ้า write ไหนพังต้อง rollback ทั้งหมด (atomicity contract ของ update request)
	UpdateWithAssignees(ctx context.Context, task *models.Task, addIDs, removeIDs []uuid.UUID) error
	// Delete ลบ task พร้อม cascade edges ใน tasks_assignees
	Delete(ctx context.Context, id uuid.UUID) error
	AssigneeIDs(ctx context.Context, taskID uuid.UUID) ([]uuid.UUID, error)
}
