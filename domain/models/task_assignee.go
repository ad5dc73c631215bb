package models

import (
	"time"

	"github.com/google/uuid"
)

// TaskAssignee คือ join table ระหว่าง tasks กับ users
// หนึ่ง row = หนึ่ง assignment edge, ห้ามซ้ำ (task_id, user_id)
type TaskAssignee struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	TaskID    uuid.UUID `gorm:"not null;uniqueIndex:idx_task_user"`
	Task      Task      `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
	UserID    uuid.UUID `gorm:"not null;uniqueIndex:idx_task_user"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

func (TaskAssignee) TableName() string {
	return "tasks_assignees"
}
