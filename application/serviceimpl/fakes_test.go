package serviceimpl

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"roomies-api/domain/apperrors"
	"roomies-api/domain/models"
	"roomies-api/domain/ports"
)

// fakeUserRepo เก็บ users ใน map ธรรมดา พอสำหรับ service tests
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uuid.UUID]*models.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return apperrors.Conflict("email or username already exists")
		}
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.NotFound("user %s not found", id)
	}
	return user, nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, apperrors.NotFound("user %s not found", username)
}

func (r *fakeUserRepo) ExistingIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing := make(map[uuid.UUID]bool)
	for _, id := range ids {
		if _, ok := r.users[id]; ok {
			existing[id] = true
		}
	}
	return existing, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return apperrors.NotFound("user %s not found", user.ID)
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return apperrors.NotFound("user %s not found", id)
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, user)
	}
	return out, nil
}

// fakeTaskRepo เก็บ tasks + edges และจดว่าแต่ละ method ถูกเรียกกี่ครั้ง
type fakeTaskRepo struct {
	mu        sync.Mutex
	tasks     map[uuid.UUID]*models.Task
	assignees map[uuid.UUID][]uuid.UUID

	createCalls int
	updateCalls int

	lastAddIDs    []uuid.UUID
	lastRemoveIDs []uuid.UUID
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{
		tasks:     make(map[uuid.UUID]*models.Task),
		assignees: make(map[uuid.UUID][]uuid.UUID),
	}
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *models.Task, assigneeIDs []uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createCalls++
	r.tasks[task.ID] = task
	r.assignees[task.ID] = append([]uuid.UUID(nil), assigneeIDs...)
	return nil
}

func (r *fakeTaskRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	if !ok {
		return nil, apperrors.NotFound("task %s not found", id)
	}
	return task, nil
}

func (r *fakeTaskRepo) List(ctx context.Context) ([]*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		out = append(out, task)
	}
	return out, nil
}

func (r *fakeTaskRepo) UpdateWithAssignees(ctx context.Context, task *models.Task, addIDs, removeIDs []uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[task.ID]; !ok {
		return apperrors.NotFound("task %s not found", task.ID)
	}

	r.updateCalls++
	r.lastAddIDs = append([]uuid.UUID(nil), addIDs...)
	r.lastRemoveIDs = append([]uuid.UUID(nil), removeIDs...)

	r.tasks[task.ID] = task

	removeSet := make(map[uuid.UUID]bool, len(removeIDs))
	for _, id := range removeIDs {
		removeSet[id] = true
	}
	var next []uuid.UUID
	for _, id := range r.assignees[task.ID] {
		if !removeSet[id] {
			next = append(next, id)
		}
	}
	next = append(next, addIDs...)
	r.assignees[task.ID] = next
	return nil
}

func (r *fakeTaskRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[id]; !ok {
		return apperrors.NotFound("task %s not found", id)
	}
	delete(r.tasks, id)
	delete(r.assignees, id)
	return nil
}

func (r *fakeTaskRepo) AssigneeIDs(ctx context.Context, taskID uuid.UUID) ([]uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]uuid.UUID(nil), r.assignees[taskID]...), nil
}

// fakePublisher จดทุก event ที่ถูก publish
type fakePublisher struct {
	mu     sync.Mutex
	events []*ports.TaskEvent
}

func (p *fakePublisher) PublishTaskEvent(ctx context.Context, event *ports.TaskEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *fakePublisher) eventTypes() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, len(p.events))
	for i, e := range p.events {
		types[i] = e.Type
	}
	return types
}
