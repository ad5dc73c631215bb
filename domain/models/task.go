package models

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID            uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name          string    `gorm:"not null"`
	Description   string
	CreatedByID   uuid.UUID `gorm:"not null"`
	CreatedBy     User      `gorm:"foreignKey:CreatedByID"`
	CompletedByID *uuid.UUID
	CompletedBy   *User  `gorm:"foreignKey:CompletedByID"`
	Assignees     []User `gorm:"many2many:tasks_assignees;joinForeignKey:TaskID;joinReferences:UserID"`
	DueDate       *time.Time
	IsCompleted   bool `gorm:"not null;default:false"`
	CompletedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Task) TableName() string {
	return "tasks"
}

// AssigneeIDs ดึง id ของ assignees ที่ preload มาแล้ว
func (t *Task) AssigneeIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(t.Assignees))
	for i, u := range t.Assignees {
		ids[i] = u.ID
	}
	return ids
}
