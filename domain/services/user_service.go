package services

import (
	"context"

	"github.com/google/uuid"

	"roomies-api/domain/dto"
	"roomies-api/domain/models"
)

type UserService interface {
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) (*models.User, error)

	// Auth
	Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error)
	GenerateJWT(user *models.User) (string, error)
}
