package handlers

import (
	"roomies-api/domain/ports"
	"roomies-api/domain/services"
)

// Services รวม dependencies ทั้งหมดที่ handlers ต้องใช้
type Services struct {
	UserService    services.UserService
	TaskService    services.TaskService
	SessionService services.SessionService
	StoragePort    ports.StoragePort // avatar uploads
	JWTSecret      string
	SessionCookie  string
	SessionMaxAge  int // seconds
}

// Handlers รวม HTTP handlers ทั้งหมด
type Handlers struct {
	UserHandler *UserHandler
	TaskHandler *TaskHandler
	AuthHandler *AuthHandler
	PageHandler *PageHandler
}

func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		UserHandler: NewUserHandler(services.UserService, services.StoragePort),
		TaskHandler: NewTaskHandler(services.TaskService),
		AuthHandler: NewAuthHandler(services.UserService),
		PageHandler: NewPageHandler(
			services.UserService,
			services.SessionService,
			services.SessionCookie,
			services.SessionMaxAge,
		),
	}
}
