package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskPayload struct {
	Task CreateTaskRequest `json:"task"`
}

type UpdateTaskPayload struct {
	Task UpdateTaskRequest `json:"task"`
}

type CreateTaskRequest struct {
	Name        string     `json:"name" validate:"required,min=1,max=60"`
	Description string     `json:"description" validate:"omitempty,max=120"`
	CreatedBy   IDRef      `json:"created_by"`
	Assignees   []IDRef    `json:"assignees" validate:"omitempty,dive"`
	DueDate     *time.Time `json:"due_date"`
}

// UpdateTaskRequest merge เฉพาะ field ที่ส่งมา
// Assignees nil = ไม่แตะ, Assignees ว่าง = ถอดทุกคนออก
type UpdateTaskRequest struct {
	Name        *string    `json:"name" validate:"omitempty,min=1,max=60"`
	Description *string    `json:"description" validate:"omitempty,max=120"`
	DueDate     *time.Time `json:"due_date"`
	IsCompleted *bool      `json:"is_completed"`
	CompletedBy *IDRef     `json:"completed_by"`
	Assignees   *[]IDRef   `json:"assignees" validate:"omitempty,dive"`
}

type TaskResponse struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	CreatedBy   *UserSummary  `json:"created_by"`
	CompletedBy *UserSummary  `json:"completed_by,omitempty"`
	Assignees   []UserSummary `json:"assignees"`
	DueDate     *time.Time    `json:"due_date,omitempty"`
	IsCompleted bool          `json:"is_completed"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
