package serviceimpl

import (
	"context"
	"time"

	"github.com/google/uuid"

	"roomies-api/domain/apperrors"
	"roomies-api/domain/dto"
	"roomies-api/domain/models"
	"roomies-api/domain/ports"
	"roomies-api/domain/repositories"
	"roomies-api/domain/services"
	"roomies-api/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo  repositories.TaskRepository
	userRepo  repositories.UserRepository
	publisher ports.TaskEventPublisherPort // nil ได้ ถ้า NATS ไม่พร้อมใช้งาน
}

func NewTaskService(taskRepo repositories.TaskRepository, userRepo repositories.UserRepository, publisher ports.TaskEventPublisherPort) services.TaskService {
	return &TaskServiceImpl{
		taskRepo:  taskRepo,
		userRepo:  userRepo,
		publisher: publisher,
	}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error) {
	// creator ต้องมีจริงก่อนเขียน task row ใดๆ
	creator, err := s.userRepo.GetByID(ctx, req.CreatedBy.ID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFound("user %s not found", req.CreatedBy.ID)
		}
		return nil, err
	}

	assigneeIDs := dedupeIDs(refIDs(req.Assignees))
	if err := s.requireUsers(ctx, assigneeIDs); err != nil {
		return nil, err
	}

	task := &models.Task{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		CreatedByID: creator.ID,
		DueDate:     req.DueDate,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.taskRepo.Create(ctx, task, assigneeIDs); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "created_by", creator.ID, "assignees", len(assigneeIDs))

	created, err := s.taskRepo.GetByID(ctx, task.ID)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, &ports.TaskEvent{
		Type:     ports.TaskEventCreated,
		TaskID:   created.ID.String(),
		TaskName: created.Name,
		AddedIDs: idStrings(assigneeIDs),
	})

	return created, nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	return s.taskRepo.GetByID(ctx, id)
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context) ([]*models.Task, error) {
	return s.taskRepo.List(ctx)
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, id uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	wasCompleted := task.IsCompleted

	if err := s.applyTaskUpdate(ctx, task, req); err != nil {
		return nil, err
	}

	// reconcile assignees: desired set จาก payload เทียบกับ edges ที่เก็บอยู่
	var toAdd, toRemove []uuid.UUID
	if req.Assignees != nil {
		desired := dedupeIDs(refIDs(*req.Assignees))

		// pre-pass: ทุก id ใน desired ต้องมี user จริง ก่อนแตะอะไรทั้งนั้น
		if err := s.requireUsers(ctx, desired); err != nil {
			return nil, err
		}

		current, err := s.taskRepo.AssigneeIDs(ctx, id)
		if err != nil {
			return nil, err
		}
		toAdd, toRemove = diffAssignees(current, desired)
	}

	task.UpdatedAt = time.Now()

	// field updates + edge adds/removes ทั้งก้อน commit หรือ rollback ด้วยกัน
	if err := s.taskRepo.UpdateWithAssignees(ctx, task, toAdd, toRemove); err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task updated", "task_id", id, "added", len(toAdd), "removed", len(toRemove))

	updated, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	eventType := ports.TaskEventUpdated
	if !wasCompleted && updated.IsCompleted {
		eventType = ports.TaskEventCompleted
	}
	s.publishEvent(ctx, &ports.TaskEvent{
		Type:       eventType,
		TaskID:     updated.ID.String(),
		TaskName:   updated.Name,
		AddedIDs:   idStrings(toAdd),
		RemovedIDs: idStrings(toRemove),
	})

	return updated, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, id uuid.UUID) error {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.taskRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", id, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", id)

	s.publishEvent(ctx, &ports.TaskEvent{
		Type:     ports.TaskEventDeleted,
		TaskID:   task.ID.String(),
		TaskName: task.Name,
	})

	return nil
}

// applyTaskUpdate merge เฉพาะ field ที่ส่งมา แล้วดูแล bookkeeping ของ completion
func (s *TaskServiceImpl) applyTaskUpdate(ctx context.Context, task *models.Task, req *dto.UpdateTaskRequest) error {
	if req.Name != nil {
		task.Name = *req.Name
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}

	if req.CompletedBy != nil {
		completer, err := s.userRepo.GetByID(ctx, req.CompletedBy.ID)
		if err != nil {
			if apperrors.IsNotFound(err) {
				return apperrors.NotFound("user %s not found", req.CompletedBy.ID)
			}
			return err
		}
		task.CompletedByID = &completer.ID
	}

	if req.IsCompleted != nil {
		task.IsCompleted = *req.IsCompleted
		if *req.IsCompleted {
			if task.CompletedAt == nil {
				now := time.Now()
				task.CompletedAt = &now
			}
		} else {
			task.CompletedAt = nil
			task.CompletedByID = nil
		}
	}

	return nil
}

// requireUsers ตรวจว่า ids ทุกตัวมี user จริง ถ้าไม่ครบตอบ NotFound พร้อมชื่อ id ที่หาย
func (s *TaskServiceImpl) requireUsers(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	existing, err := s.userRepo.ExistingIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if !existing[id] {
			return apperrors.NotFound("user %s not found", id)
		}
	}
	return nil
}

func (s *TaskServiceImpl) publishEvent(ctx context.Context, event *ports.TaskEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishTaskEvent(ctx, event); err != nil {
		// event bus ล่มไม่ควรทำให้ request พัง แค่ log ไว้
		logger.WarnContext(ctx, "Failed to publish task event", "type", event.Type, "task_id", event.TaskID, "error", err)
	}
}

func refIDs(refs []dto.IDRef) []uuid.UUID {
	ids := make([]uuid.UUID, len(refs))
	for i, ref := range refs {
		ids[i] = ref.ID
	}
	return ids
}

func idStrings(ids []uuid.UUID) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
