package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"roomies-api/domain/apperrors"
)

// ========== Response Structures ==========

type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ========== Error Code Constants ==========

const (
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeConflict      = "CONFLICT"
	ErrCodeInternalError = "INTERNAL_ERROR"
	ErrCodeBadRequest    = "BAD_REQUEST"
)

// ========== Success Responses ==========

func SuccessResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Success: true,
		Data:    data,
	})
}

func CreatedResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(Response{
		Success: true,
		Data:    data,
	})
}

func NoContentResponse(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// ========== Error Responses ==========

func ErrorResponse(c *fiber.Ctx, statusCode int, code, message string, details any) error {
	return c.Status(statusCode).JSON(Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func ValidationErrorResponse(c *fiber.Ctx, details any) error {
	return ErrorResponse(c, fiber.StatusBadRequest, ErrCodeValidation, "Validation failed", details)
}

func BadRequestResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, fiber.StatusBadRequest, ErrCodeBadRequest, message, nil)
}

func UnauthorizedResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Unauthorized"
	}
	return ErrorResponse(c, fiber.StatusUnauthorized, ErrCodeUnauthorized, message, nil)
}

func NotFoundResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return ErrorResponse(c, fiber.StatusNotFound, ErrCodeNotFound, message, nil)
}

func ConflictResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, fiber.StatusBadRequest, ErrCodeConflict, message, nil)
}

func InternalServerErrorResponse(c *fiber.Ctx) error {
	return ErrorResponse(c, fiber.StatusInternalServerError, ErrCodeInternalError, "Internal server error", nil)
}

// ErrorFrom คือจุดแปลง domain error -> HTTP response จุดเดียวของระบบ
// taxonomy: validation/conflict/persistence = 400, not found = 404, unauthorized = 401
func ErrorFrom(c *fiber.Ctx, err error) error {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		return InternalServerErrorResponse(c)
	}

	switch appErr.Kind {
	case apperrors.KindValidation:
		return ErrorResponse(c, fiber.StatusBadRequest, ErrCodeValidation, appErr.Message, appErr.Details)
	case apperrors.KindNotFound:
		return ErrorResponse(c, fiber.StatusNotFound, ErrCodeNotFound, appErr.Message, nil)
	case apperrors.KindConflict:
		// conflict ตอบ 400 พร้อม message แบบ generic ตามสัญญาของ API
		return ErrorResponse(c, fiber.StatusBadRequest, ErrCodeConflict, appErr.Message, nil)
	case apperrors.KindUnauthorized:
		return ErrorResponse(c, fiber.StatusUnauthorized, ErrCodeUnauthorized, appErr.Message, nil)
	case apperrors.KindStorage:
		return ErrorResponse(c, fiber.StatusBadRequest, ErrCodeBadRequest, appErr.Error(), nil)
	default:
		return InternalServerErrorResponse(c)
	}
}
