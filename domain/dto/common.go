package dto

import "github.com/google/uuid"

// IDRef คือ reference ไป entity อื่นใน payload เช่น {"created_by": {"id": "..."}}
type IDRef struct {
	ID uuid.UUID `json:"id" validate:"required"`
}

// UserSummary คือ nested user แบบย่อใน task representation
type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}
