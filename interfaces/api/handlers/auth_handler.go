package handlers

import (
	"github.com/gofiber/fiber/v2"

	"roomies-api/domain/dto"
	"roomies-api/domain/services"
	"roomies-api/pkg/logger"
	"roomies-api/pkg/utils"
)

type AuthHandler struct {
	userService services.UserService
}

func NewAuthHandler(userService services.UserService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

// Login แลก username/password เป็น JWT สำหรับ programmatic clients
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, errors)
	}

	token, user, err := h.userService.Login(ctx, &req)
	if err != nil {
		logger.WarnContext(ctx, "Login failed", "username", req.Username)
		return utils.UnauthorizedResponse(c, "Invalid credentials")
	}

	logger.InfoContext(ctx, "Login successful", "user_id", user.ID, "username", user.Username)

	return utils.SuccessResponse(c, &dto.LoginResponse{
		Token: token,
		User:  *dto.UserToUserResponse(user),
	})
}

// Me คืนข้อมูล user ของ token ที่ส่งมา
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userService.GetUser(c.UserContext(), userCtx.ID)
	if err != nil {
		return utils.ErrorFrom(c, err)
	}

	return utils.SuccessResponse(c, fiber.Map{"user": dto.UserToUserResponse(user)})
}
