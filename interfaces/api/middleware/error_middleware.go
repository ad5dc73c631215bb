package middleware

import (
	"github.com/gofiber/fiber/v2"

	"roomies-api/pkg/logger"
	"roomies-api/pkg/utils"
)

// ErrorHandler จับ error ที่หลุดจาก handlers มา serialize เป็น envelope เดียวกันทั้งระบบ
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if e, ok := err.(*fiber.Error); ok {
			code := utils.ErrCodeInternalError
			switch e.Code {
			case fiber.StatusBadRequest:
				code = utils.ErrCodeBadRequest
			case fiber.StatusUnauthorized:
				code = utils.ErrCodeUnauthorized
			case fiber.StatusNotFound:
				code = utils.ErrCodeNotFound
			}
			return utils.ErrorResponse(c, e.Code, code, e.Message, nil)
		}

		logger.ErrorContext(c.UserContext(), "Unhandled error", "error", err)
		return utils.ErrorFrom(c, err)
	}
}
