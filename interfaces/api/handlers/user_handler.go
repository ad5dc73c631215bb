package handlers

import (
	"fmt"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"roomies-api/domain/dto"
	"roomies-api/domain/ports"
	"roomies-api/domain/services"
	"roomies-api/pkg/logger"
	"roomies-api/pkg/utils"
)

type UserHandler struct {
	userService services.UserService
	storage     ports.StoragePort
}

func NewUserHandler(userService services.UserService, storage ports.StoragePort) *UserHandler {
	return &UserHandler{
		userService: userService,
		storage:     storage,
	}
}

// CreateUser รับ envelope {"user": {...}}
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var payload dto.CreateUserPayload
	if err := c.BodyParser(&payload); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&payload.User); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	user, err := h.userService.CreateUser(ctx, &payload.User)
	if err != nil {
		logger.WarnContext(ctx, "User creation failed", "email", payload.User.Email, "error", err)
		return utils.ErrorFrom(c, err)
	}

	logger.InfoContext(ctx, "User created", "user_id", user.ID, "email", user.Email)
	return utils.CreatedResponse(c, fiber.Map{"user": dto.UserToUserResponse(user)})
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers(c.UserContext())
	if err != nil {
		return utils.ErrorFrom(c, err)
	}

	responses := make([]*dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, dto.UserToUserResponse(user))
	}

	return utils.SuccessResponse(c, fiber.Map{"users": responses})
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	user, err := h.userService.GetUser(c.UserContext(), id)
	if err != nil {
		return utils.ErrorFrom(c, err)
	}

	return utils.SuccessResponse(c, fiber.Map{"user": dto.UserToUserResponse(user)})
}

// UpdateUser partial update ตาม field ที่ส่งมาใน envelope
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	var payload dto.UpdateUserPayload
	if err := c.BodyParser(&payload); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&payload.User); err != nil {
		errors := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, errors)
	}

	user, err := h.userService.UpdateUser(ctx, id, &payload.User)
	if err != nil {
		logger.WarnContext(ctx, "User update failed", "user_id", id, "error", err)
		return utils.ErrorFrom(c, err)
	}

	logger.InfoContext(ctx, "User updated", "user_id", user.ID)
	return utils.SuccessResponse(c, fiber.Map{"user": dto.UserToUserResponse(user)})
}

func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	if err := h.userService.DeleteUser(ctx, id); err != nil {
		logger.WarnContext(ctx, "User deletion failed", "user_id", id, "error", err)
		return utils.ErrorFrom(c, err)
	}

	logger.InfoContext(ctx, "User deleted", "user_id", id)
	return utils.NoContentResponse(c)
}

// UploadAvatar รับ multipart field "avatar" แล้วเก็บผ่าน storage port
func (h *UserHandler) UploadAvatar(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return utils.BadRequestResponse(c, "Avatar file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.BadRequestResponse(c, "Cannot read avatar file")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	path := fmt.Sprintf("avatars/%s%s", id, filepath.Ext(fileHeader.Filename))

	if _, err := h.storage.UploadFile(file, fileHeader.Size, path, contentType); err != nil {
		logger.ErrorContext(ctx, "Avatar upload failed", "user_id", id, "error", err)
		return utils.ErrorFrom(c, err)
	}

	user, err := h.userService.UpdateAvatar(ctx, id, h.storage.GetFileURL(path))
	if err != nil {
		return utils.ErrorFrom(c, err)
	}

	logger.InfoContext(ctx, "Avatar updated", "user_id", id, "provider", h.storage.GetProviderName())
	return utils.SuccessResponse(c, fiber.Map{"user": dto.UserToUserResponse(user)})
}
