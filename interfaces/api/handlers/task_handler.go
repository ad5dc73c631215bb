package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"roomies-api/domain/dto"
	"roomies-api/domain/services"
	"roomies-api/pkg/logger"
	"roomies-api/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask รับ envelope {"task": {...}} พร้อม created_by และ assignees เริ่มต้น
func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var payload dto.CreateTaskPayload
	if err := c.BodyParser(&payload); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&payload.Task); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	task, err := h.taskService.CreateTask(ctx, &payload.Task)
	if err != nil {
		logger.WarnContext(ctx, "Task creation failed", "name", payload.Task.Name, "error", err)
		return utils.ErrorFrom(c, err)
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "name", task.Name)
	return utils.CreatedResponse(c, fiber.Map{"task": dto.TaskToTaskResponse(task)})
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	tasks, err := h.taskService.ListTasks(c.UserContext())
	if err != nil {
		return utils.ErrorFrom(c, err)
	}

	responses := make([]*dto.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, dto.TaskToTaskResponse(task))
	}

	return utils.SuccessResponse(c, fiber.Map{"tasks": responses})
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	task, err := h.taskService.GetTask(c.UserContext(), id)
	if err != nil {
		return utils.ErrorFrom(c, err)
	}

	return utils.SuccessResponse(c, fiber.Map{"task": dto.TaskToTaskResponse(task)})
}

// UpdateTask partial update รวม reconcile assignees ถ้าส่ง list มา
func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var payload dto.UpdateTaskPayload
	if err := c.BodyParser(&payload); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&payload.Task); err != nil {
		errors := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, errors)
	}

	task, err := h.taskService.UpdateTask(ctx, id, &payload.Task)
	if err != nil {
		logger.WarnContext(ctx, "Task update failed", "task_id", id, "error", err)
		return utils.ErrorFrom(c, err)
	}

	logger.InfoContext(ctx, "Task updated", "task_id", task.ID)
	return utils.SuccessResponse(c, fiber.Map{"task": dto.TaskToTaskResponse(task)})
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	if err := h.taskService.DeleteTask(ctx, id); err != nil {
		logger.WarnContext(ctx, "Task deletion failed", "task_id", id, "error", err)
		return utils.ErrorFrom(c, err)
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", id)
	return utils.NoContentResponse(c)
}
