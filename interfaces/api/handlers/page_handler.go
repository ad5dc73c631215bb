package handlers

import (
	"fmt"
	"html"

	"github.com/gofiber/fiber/v2"

	"roomies-api/domain/dto"
	"roomies-api/domain/services"
	"roomies-api/pkg/logger"
	"roomies-api/pkg/utils"
)

// PageHandler เสิร์ฟหน้า HTML ของ flow login/register/logout (session cookie)
type PageHandler struct {
	userService    services.UserService
	sessionService services.SessionService
	cookieName     string
	sessionMaxAge  int
}

func NewPageHandler(
	userService services.UserService,
	sessionService services.SessionService,
	cookieName string,
	sessionMaxAge int,
) *PageHandler {
	return &PageHandler{
		userService:    userService,
		sessionService: sessionService,
		cookieName:     cookieName,
		sessionMaxAge:  sessionMaxAge,
	}
}

func (h *PageHandler) LoginPage(c *fiber.Ctx) error {
	return renderPage(c, "Login", loginForm(""))
}

// LoginSubmit รับ form POST ตรวจ credential แล้วตั้ง session cookie
func (h *PageHandler) LoginSubmit(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return renderPage(c, "Login", loginForm("Invalid form submission"))
	}

	_, user, err := h.userService.Login(ctx, &req)
	if err != nil {
		logger.WarnContext(ctx, "Page login failed", "username", req.Username)
		return renderPage(c, "Login", loginForm("Invalid username or password"))
	}

	token, err := h.sessionService.Create(ctx, user.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Session creation failed", "user_id", user.ID, "error", err)
		return renderPage(c, "Login", loginForm("Something went wrong, try again"))
	}

	h.setSessionCookie(c, token)
	logger.InfoContext(ctx, "Page login successful", "user_id", user.ID)
	return c.Redirect("/", fiber.StatusSeeOther)
}

// Logout ทำลาย session แล้วเคลียร์ cookie
func (h *PageHandler) Logout(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if token := c.Cookies(h.cookieName); token != "" {
		if err := h.sessionService.Destroy(ctx, token); err != nil {
			logger.WarnContext(ctx, "Session destroy failed", "error", err)
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.Redirect("/login", fiber.StatusSeeOther)
}

func (h *PageHandler) RegisterPage(c *fiber.Ctx) error {
	return renderPage(c, "Register", registerForm(""))
}

// RegisterSubmit สร้าง user จาก form แล้ว login ให้เลย
func (h *PageHandler) RegisterSubmit(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return renderPage(c, "Register", registerForm("Invalid form submission"))
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		return renderPage(c, "Register", registerForm(firstMessage(errors)))
	}

	createReq := &dto.CreateUserRequest{
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	user, err := h.userService.CreateUser(ctx, createReq)
	if err != nil {
		logger.WarnContext(ctx, "Page registration failed", "username", req.Username, "error", err)
		return renderPage(c, "Register", registerForm("Could not create account: "+err.Error()))
	}

	token, err := h.sessionService.Create(ctx, user.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Session creation failed", "user_id", user.ID, "error", err)
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	h.setSessionCookie(c, token)
	logger.InfoContext(ctx, "Page registration successful", "user_id", user.ID)
	return c.Redirect("/", fiber.StatusSeeOther)
}

// HomePage หน้าแรกหลัง login แสดงชื่อ user ที่ resolve จาก session
func (h *PageHandler) HomePage(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	body := fmt.Sprintf(
		`<p>Signed in as <strong>%s</strong></p><p><a href="/logout">Logout</a></p>`,
		html.EscapeString(userCtx.Username),
	)
	return renderPage(c, "Roomies", body)
}

func (h *PageHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    token,
		MaxAge:   h.sessionMaxAge,
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

func firstMessage(errors map[string]string) string {
	for field, msg := range errors {
		return field + ": " + msg
	}
	return "Invalid form submission"
}

func renderPage(c *fiber.Ctx, title, body string) error {
	page := fmt.Sprintf(pageShell, html.EscapeString(title), body)
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(page)
}

func loginForm(errMsg string) string {
	return fmt.Sprintf(`%s<form method="post" action="/login">
  <label>Username <input type="text" name="username" required></label>
  <label>Password <input type="password" name="password" required></label>
  <button type="submit">Login</button>
</form>
<p>No account? <a href="/register">Register</a></p>`, errorBanner(errMsg))
}

func registerForm(errMsg string) string {
	return fmt.Sprintf(`%s<form method="post" action="/register">
  <label>Email <input type="email" name="email" required></label>
  <label>Username <input type="text" name="username" required></label>
  <label>Password <input type="password" name="password" required></label>
  <label>First name <input type="text" name="first_name"></label>
  <label>Last name <input type="text" name="last_name"></label>
  <button type="submit">Register</button>
</form>
<p>Already registered? <a href="/login">Login</a></p>`, errorBanner(errMsg))
}

func errorBanner(msg string) string {
	if msg == "" {
		return ""
	}
	return fmt.Sprintf(`<p class="error">%s</p>`, html.EscapeString(msg))
}

const pageShell = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>%s</title>
  <style>
    body { font-family: sans-serif; max-width: 28rem; margin: 4rem auto; }
    label { display: block; margin-bottom: 0.75rem; }
    input { display: block; width: 100%%; padding: 0.4rem; }
    .error { color: #b00020; }
  </style>
</head>
<body>
%s
</body>
</html>
`
