package services

import (
	"context"

	"github.com/google/uuid"

	"roomies-api/domain/dto"
	"roomies-api/domain/models"
)

type TaskService interface {
	CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error)
	GetTask(ctx context.Context, id uuid.UUID) (*models.Task, error)
	ListTasks(ctx context.Context) ([]*models.Task, error)
	// UpdateTask merge field ที่ส่งมา แล้ว reconcile assignees เป็น transaction เดียว
	UpdateTask(ctx context.Context, id uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
}
