package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"roomies-api/domain/models"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func newUserTestApp(users ...*models.User) (*fiber.App, *fakeUserService) {
	userSvc := newFakeUserService(users...)
	h := NewUserHandler(userSvc, nil)

	app := fiber.New()
	app.Post("/api/users", h.CreateUser)
	app.Get("/api/users", h.ListUsers)
	app.Get("/api/users/:id", h.GetUser)
	app.Patch("/api/users/:id", h.UpdateUser)
	app.Delete("/api/users/:id", h.DeleteUser)
	return app, userSvc
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, envelope) {
	t.Helper()

	var reqBody bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&reqBody).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &reqBody)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	var env envelope
	if resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return resp, env
}

func TestCreateUserEndpoint(t *testing.T) {
	app, _ := newUserTestApp()

	resp, env := doJSON(t, app, "POST", "/api/users", fiber.Map{
		"user": fiber.Map{
			"email":    "alice@example.com",
			"username": "alice",
			"password": "supersecret",
		},
	})

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	if !env.Success {
		t.Error("success = false")
	}

	var data struct {
		User struct {
			ID       uuid.UUID `json:"id"`
			Email    string    `json:"email"`
			Username string    `json:"username"`
		} `json:"user"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.User.Email != "alice@example.com" || data.User.Username != "alice" {
		t.Errorf("user = %+v", data.User)
	}
	if data.User.ID == uuid.Nil {
		t.Error("user id not generated")
	}
}

func TestCreateUserEndpointValidation(t *testing.T) {
	app, _ := newUserTestApp()

	tests := []struct {
		name string
		user fiber.Map
		want string // field ที่ต้องโผล่ใน details
	}{
		{"missing email", fiber.Map{"username": "alice", "password": "supersecret"}, "email"},
		{"bad email", fiber.Map{"email": "not-an-email", "username": "alice", "password": "supersecret"}, "email"},
		{"short password", fiber.Map{"email": "a@b.com", "username": "alice", "password": "short"}, "password"},
		{"short username", fiber.Map{"email": "a@b.com", "username": "al", "password": "supersecret"}, "username"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, env := doJSON(t, app, "POST", "/api/users", fiber.Map{"user": tt.user})

			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", resp.StatusCode)
			}
			if env.Error == nil {
				t.Fatal("error body missing")
			}
			if _, ok := env.Error.Details[tt.want]; !ok {
				t.Errorf("details = %v, want field %q", env.Error.Details, tt.want)
			}
		})
	}
}

func TestCreateUserEndpointConflict(t *testing.T) {
	app, _ := newUserTestApp()

	body := fiber.Map{"user": fiber.Map{
		"email":    "alice@example.com",
		"username": "alice",
		"password": "supersecret",
	}}
	doJSON(t, app, "POST", "/api/users", body)
	resp, env := doJSON(t, app, "POST", "/api/users", body)

	// conflict ตอบ 400 message เดียวแบบ generic
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if env.Error == nil || env.Error.Code != "CONFLICT" {
		t.Errorf("error = %+v, want CONFLICT", env.Error)
	}
}

func TestGetUserEndpoint(t *testing.T) {
	alice := &models.User{ID: uuid.New(), Email: "alice@example.com", Username: "alice"}
	app, _ := newUserTestApp(alice)

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{"existing user", "/api/users/" + alice.ID.String(), http.StatusOK},
		{"unknown id", "/api/users/" + uuid.NewString(), http.StatusNotFound},
		{"malformed id", "/api/users/42", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := doJSON(t, app, "GET", tt.path, nil)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestUpdateUserEndpoint(t *testing.T) {
	alice := &models.User{ID: uuid.New(), Email: "alice@example.com", Username: "alice"}
	app, svc := newUserTestApp(alice)

	resp, env := doJSON(t, app, "PATCH", "/api/users/"+alice.ID.String(), fiber.Map{
		"user": fiber.Map{"first_name": "Alicia"},
	})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !env.Success {
		t.Error("success = false")
	}
	if svc.users[alice.ID].FirstName != "Alicia" {
		t.Errorf("FirstName = %q, want Alicia", svc.users[alice.ID].FirstName)
	}
	// field อื่นห้ามเปลี่ยน
	if svc.users[alice.ID].Email != "alice@example.com" {
		t.Errorf("Email changed to %q", svc.users[alice.ID].Email)
	}
}

func TestDeleteUserEndpoint(t *testing.T) {
	alice := &models.User{ID: uuid.New(), Email: "alice@example.com", Username: "alice"}
	app, svc := newUserTestApp(alice)

	resp, _ := doJSON(t, app, "DELETE", "/api/users/"+alice.ID.String(), nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", resp.StatusCode)
	}
	if len(svc.users) != 0 {
		t.Error("user not deleted")
	}

	resp, _ = doJSON(t, app, "DELETE", fmt.Sprintf("/api/users/%s", alice.ID), nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", resp.StatusCode)
	}
}
