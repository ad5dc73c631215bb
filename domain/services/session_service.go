package services

import (
	"context"

	"github.com/google/uuid"
)

// SessionService เก็บ session token ของ cookie flow (login/logout หน้า HTML)
type SessionService interface {
	Create(ctx context.Context, userID uuid.UUID) (string, error)
	// Resolve คืน user id ของ token; token ที่ไม่รู้จักหรือหมดอายุได้ Unauthorized
	Resolve(ctx context.Context, token string) (uuid.UUID, error)
	Destroy(ctx context.Context, token string) error
}
