package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateUserPayload คือ envelope ของ JSON API: {"user": {...}}
type CreateUserPayload struct {
	User CreateUserRequest `json:"user"`
}

type UpdateUserPayload struct {
	User UpdateUserRequest `json:"user"`
}

type CreateUserRequest struct {
	Email     string `json:"email" validate:"required,email,max=60"`
	Username  string `json:"username" validate:"required,min=3,max=60"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	FirstName string `json:"first_name" validate:"omitempty,max=60"`
	LastName  string `json:"last_name" validate:"omitempty,max=60"`
}

// UpdateUserRequest ใช้ pointer ทุก field เพื่อแยก "ไม่ได้ส่งมา" ออกจาก "ส่งค่าว่าง"
// (partial update จะ merge เฉพาะ field ที่ไม่เป็น nil)
type UpdateUserRequest struct {
	Email     *string `json:"email" validate:"omitempty,email,max=60"`
	Username  *string `json:"username" validate:"omitempty,min=3,max=60"`
	FirstName *string `json:"first_name" validate:"omitempty,max=60"`
	LastName  *string `json:"last_name" validate:"omitempty,max=60"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
