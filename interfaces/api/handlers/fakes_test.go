package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"

	"roomies-api/domain/apperrors"
	"roomies-api/domain/dto"
	"roomies-api/domain/models"
)

// fakeUserService เก็บ users ใน map พอสำหรับทดสอบ handler ชั้นบนสุด
type fakeUserService struct {
	users map[uuid.UUID]*models.User
}

func newFakeUserService(users ...*models.User) *fakeUserService {
	s := &fakeUserService{users: make(map[uuid.UUID]*models.User)}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *fakeUserService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	for _, existing := range s.users {
		if existing.Email == req.Email || existing.Username == req.Username {
			return nil, apperrors.Conflict("email or username already exists")
		}
	}
	user := &models.User{
		ID:        uuid.New(),
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	s.users[user.ID] = user
	return user, nil
}

func (s *fakeUserService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.NotFound("user %s not found", id)
	}
	return user, nil
}

func (s *fakeUserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	out := make([]*models.User, 0, len(s.users))
	for _, user := range s.users {
		out = append(out, user)
	}
	return out, nil
}

func (s *fakeUserService) UpdateUser(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.NotFound("user %s not found", id)
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	return user, nil
}

func (s *fakeUserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if _, ok := s.users[id]; !ok {
		return apperrors.NotFound("user %s not found", id)
	}
	delete(s.users, id)
	return nil
}

func (s *fakeUserService) UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.NotFound("user %s not found", id)
	}
	user.Avatar = avatarURL
	return user, nil
}

func (s *fakeUserService) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error) {
	for _, user := range s.users {
		if user.Username == req.Username && req.Password == "supersecret" {
			return "fake-token", user, nil
		}
	}
	return "", nil, apperrors.Unauthorized("invalid username or password")
}

func (s *fakeUserService) GenerateJWT(user *models.User) (string, error) {
	return "fake-token", nil
}

// fakeTaskService เช็ค existence ของ creator/assignees กับ userService ที่ฉีดเข้ามา
type fakeTaskService struct {
	users *fakeUserService
	tasks map[uuid.UUID]*models.Task
}

func newFakeTaskService(users *fakeUserService) *fakeTaskService {
	return &fakeTaskService{
		users: users,
		tasks: make(map[uuid.UUID]*models.Task),
	}
}

func (s *fakeTaskService) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error) {
	creator, ok := s.users.users[req.CreatedBy.ID]
	if !ok {
		return nil, apperrors.NotFound("user %s not found", req.CreatedBy.ID)
	}

	var assignees []models.User
	for _, ref := range req.Assignees {
		user, ok := s.users.users[ref.ID]
		if !ok {
			return nil, apperrors.NotFound("user %s not found", ref.ID)
		}
		assignees = append(assignees, *user)
	}

	task := &models.Task{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		CreatedByID: creator.ID,
		CreatedBy:   *creator,
		Assignees:   assignees,
		DueDate:     req.DueDate,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	s.tasks[task.ID] = task
	return task, nil
}

func (s *fakeTaskService) GetTask(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	task, ok := s.tasks[id]
	if !ok {
		return nil, apperrors.NotFound("task %s not found", id)
	}
	return task, nil
}

func (s *fakeTaskService) ListTasks(ctx context.Context) ([]*models.Task, error) {
	out := make([]*models.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		out = append(out, task)
	}
	return out, nil
}

func (s *fakeTaskService) UpdateTask(ctx context.Context, id uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, ok := s.tasks[id]
	if !ok {
		return nil, apperrors.NotFound("task %s not found", id)
	}

	if req.Assignees != nil {
		var assignees []models.User
		for _, ref := range *req.Assignees {
			user, ok := s.users.users[ref.ID]
			if !ok {
				return nil, apperrors.NotFound("user %s not found", ref.ID)
			}
			assignees = append(assignees, *user)
		}
		task.Assignees = assignees
	}

	if req.Name != nil {
		task.Name = *req.Name
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.IsCompleted != nil {
		task.IsCompleted = *req.IsCompleted
	}
	return task, nil
}

func (s *fakeTaskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if _, ok := s.tasks[id]; !ok {
		return apperrors.NotFound("task %s not found", id)
	}
	delete(s.tasks, id)
	return nil
}
