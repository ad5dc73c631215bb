package middleware

import (
	"github.com/gofiber/fiber/v2"

	"roomies-api/domain/services"
	"roomies-api/pkg/logger"
	"roomies-api/pkg/utils"
)

// AuthDeps คือ dependencies ของ auth middleware
// ส่งเข้ามาตรงๆ แทน global state เพื่อให้ test แยก instance ได้
type AuthDeps struct {
	Users         services.UserService
	Sessions      services.SessionService
	JWTSecret     string
	SessionCookie string
}

// Protected ยอมรับทั้ง Bearer JWT (programmatic clients) และ session cookie (หน้า HTML)
func Protected(deps AuthDeps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userCtx, err := resolveUser(c, deps)
		if err != nil {
			return utils.UnauthorizedResponse(c, "")
		}

		c.Locals("user", userCtx)
		return c.Next()
	}
}

// Optional ไม่บังคับ auth แต่ใส่ user context ให้ถ้ามี credential มา
func Optional(deps AuthDeps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if userCtx, err := resolveUser(c, deps); err == nil {
			c.Locals("user", userCtx)
		}
		return c.Next()
	}
}

func resolveUser(c *fiber.Ctx, deps AuthDeps) (*utils.UserContext, error) {
	// Bearer token ก่อน
	if authHeader := c.Get("Authorization"); authHeader != "" {
		token := utils.ExtractTokenFromHeader(authHeader)
		userCtx, err := utils.ValidateTokenStringToUUID(token, deps.JWTSecret)
		if err != nil {
			logger.DebugContext(c.UserContext(), "Token validation failed", "error", err)
			return nil, err
		}
		return userCtx, nil
	}

	// ตามด้วย session cookie
	token := c.Cookies(deps.SessionCookie)
	userID, err := deps.Sessions.Resolve(c.UserContext(), token)
	if err != nil {
		return nil, err
	}

	user, err := deps.Users.GetUser(c.UserContext(), userID)
	if err != nil {
		return nil, err
	}

	return &utils.UserContext{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}
