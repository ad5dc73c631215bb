package serviceimpl

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"roomies-api/domain/apperrors"
	"roomies-api/domain/dto"
	"roomies-api/domain/models"
	"roomies-api/domain/ports"
)

func newTestUser(username string) *models.User {
	return &models.User{
		ID:       uuid.New(),
		Email:    username + "@example.com",
		Username: username,
	}
}

func TestCreateTask(t *testing.T) {
	creator := newTestUser("creator")
	assignee := newTestUser("assignee")

	userRepo := newFakeUserRepo(creator, assignee)
	taskRepo := newFakeTaskRepo()
	pub := &fakePublisher{}
	svc := NewTaskService(taskRepo, userRepo, pub)

	task, err := svc.CreateTask(context.Background(), &dto.CreateTaskRequest{
		Name:      "dishes",
		CreatedBy: dto.IDRef{ID: creator.ID},
		Assignees: []dto.IDRef{{ID: assignee.ID}, {ID: assignee.ID}},
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if task.Name != "dishes" {
		t.Errorf("task.Name = %q, want %q", task.Name, "dishes")
	}
	if task.CreatedByID != creator.ID {
		t.Errorf("task.CreatedByID = %s, want %s", task.CreatedByID, creator.ID)
	}

	// assignee ซ้ำต้องยุบเหลือ edge เดียว
	ids, _ := taskRepo.AssigneeIDs(context.Background(), task.ID)
	if len(ids) != 1 || ids[0] != assignee.ID {
		t.Errorf("stored assignees = %v, want [%s]", ids, assignee.ID)
	}

	types := pub.eventTypes()
	if len(types) != 1 || types[0] != ports.TaskEventCreated {
		t.Errorf("published events = %v, want [created]", types)
	}
}

func TestCreateTaskUnknownCreator(t *testing.T) {
	userRepo := newFakeUserRepo()
	taskRepo := newFakeTaskRepo()
	svc := NewTaskService(taskRepo, userRepo, nil)

	_, err := svc.CreateTask(context.Background(), &dto.CreateTaskRequest{
		Name:      "dishes",
		CreatedBy: dto.IDRef{ID: uuid.New()},
	})
	if !apperrors.IsNotFound(err) {
		t.Fatalf("err = %v, want NotFound", err)
	}
	if taskRepo.createCalls != 0 {
		t.Errorf("repo.Create called %d times, want 0", taskRepo.createCalls)
	}
}

func TestCreateTaskUnknownAssignee(t *testing.T) {
	creator := newTestUser("creator")
	userRepo := newFakeUserRepo(creator)
	taskRepo := newFakeTaskRepo()
	svc := NewTaskService(taskRepo, userRepo, nil)

	_, err := svc.CreateTask(context.Background(), &dto.CreateTaskRequest{
		Name:      "dishes",
		CreatedBy: dto.IDRef{ID: creator.ID},
		Assignees: []dto.IDRef{{ID: uuid.New()}},
	})
	if !apperrors.IsNotFound(err) {
		t.Fatalf("err = %v, want NotFound", err)
	}
	// ห้ามมี row ใดถูกเขียนเมื่อ validation พัง
	if taskRepo.createCalls != 0 {
		t.Errorf("repo.Create called %d times, want 0", taskRepo.createCalls)
	}
}

func TestUpdateTaskReconcilesAssignees(t *testing.T) {
	creator := newTestUser("creator")
	alice := newTestUser("alice")
	bob := newTestUser("bob")
	carol := newTestUser("carol")

	userRepo := newFakeUserRepo(creator, alice, bob, carol)
	taskRepo := newFakeTaskRepo()
	svc := NewTaskService(taskRepo, userRepo, nil)

	task, err := svc.CreateTask(context.Background(), &dto.CreateTaskRequest{
		Name:      "laundry",
		CreatedBy: dto.IDRef{ID: creator.ID},
		Assignees: []dto.IDRef{{ID: alice.ID}, {ID: bob.ID}},
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	// {alice, bob} -> {bob, carol}: เพิ่ม carol ถอด alice
	desired := []dto.IDRef{{ID: bob.ID}, {ID: carol.ID}}
	if _, err := svc.UpdateTask(context.Background(), task.ID, &dto.UpdateTaskRequest{
		Assignees: &desired,
	}); err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}

	if !sameIDSet(taskRepo.lastAddIDs, []uuid.UUID{carol.ID}) {
		t.Errorf("addIDs = %v, want [%s]", taskRepo.lastAddIDs, carol.ID)
	}
	if !sameIDSet(taskRepo.lastRemoveIDs, []uuid.UUID{alice.ID}) {
		t.Errorf("removeIDs = %v, want [%s]", taskRepo.lastRemoveIDs, alice.ID)
	}

	ids, _ := taskRepo.AssigneeIDs(context.Background(), task.ID)
	if !sameIDSet(ids, []uuid.UUID{bob.ID, carol.ID}) {
		t.Errorf("stored assignees = %v, want {bob, carol}", ids)
	}
}

func TestUpdateTaskEmptyAssigneesRemovesAll(t *testing.T) {
	creator := newTestUser("creator")
	alice := newTestUser("alice")

	userRepo := newFakeUserRepo(creator, alice)
	taskRepo := newFakeTaskRepo()
	svc := NewTaskService(taskRepo, userRepo, nil)

	task, _ := svc.CreateTask(context.Background(), &dto.CreateTaskRequest{
		Name:      "trash",
		CreatedBy: dto.IDRef{ID: creator.ID},
		Assignees: []dto.IDRef{{ID: alice.ID}},
	})

	empty := []dto.IDRef{}
	if _, err := svc.UpdateTask(context.Background(), task.ID, &dto.UpdateTaskRequest{
		Assignees: &empty,
	}); err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}

	ids, _ := taskRepo.AssigneeIDs(context.Background(), task.ID)
	if len(ids) != 0 {
		t.Errorf("stored assignees = %v, want empty", ids)
	}
}

func TestUpdateTaskNilAssigneesUntouched(t *testing.T) {
	creator := newTestUser("creator")
	alice := newTestUser("alice")

	userRepo := newFakeUserRepo(creator, alice)
	taskRepo := newFakeTaskRepo()
	svc := NewTaskService(taskRepo, userRepo, nil)

	task, _ := svc.CreateTask(context.Background(), &dto.CreateTaskRequest{
		Name:      "vacuum",
		CreatedBy: dto.IDRef{ID: creator.ID},
		Assignees: []dto.IDRef{{ID: alice.ID}},
	})

	name := "vacuum upstairs"
	if _, err := svc.UpdateTask(context.Background(), task.ID, &dto.UpdateTaskRequest{
		Name: &name,
	}); err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}

	if len(taskRepo.lastAddIDs) != 0 || len(taskRepo.lastRemoveIDs) != 0 {
		t.Errorf("assignees touched: add=%v remove=%v", taskRepo.lastAddIDs, taskRepo.lastRemoveIDs)
	}
	ids, _ := taskRepo.AssigneeIDs(context.Background(), task.ID)
	if !sameIDSet(ids, []uuid.UUID{alice.ID}) {
		t.Errorf("stored assignees = %v, want [alice]", ids)
	}
}

func TestUpdateTaskUnknownAssigneeNoMutation(t *testing.T) {
	creator := newTestUser("creator")
	alice := newTestUser("alice")

	userRepo := newFakeUserRepo(creator, alice)
	taskRepo := newFakeTaskRepo()
	svc := NewTaskService(taskRepo, userRepo, nil)

	task, _ := svc.CreateTask(context.Background(), &dto.CreateTaskRequest{
		Name:      "mop",
		CreatedBy: dto.IDRef{ID: creator.ID},
		Assignees: []dto.IDRef{{ID: alice.ID}},
	})

	name := "changed"
	desired := []dto.IDRef{{ID: uuid.New()}}
	_, err := svc.UpdateTask(context.Background(), task.ID, &dto.UpdateTaskRequest{
		Name:      &name,
		Assignees: &desired,
	})
	if !apperrors.IsNotFound(err) {
		t.Fatalf("err = %v, want NotFound", err)
	}

	// pre-pass fail ต้องหยุดทั้ง request: field update ก็ห้ามไปถึง repo
	if taskRepo.updateCalls != 0 {
		t.Errorf("UpdateWithAssignees called %d times, want 0", taskRepo.updateCalls)
	}
	stored, _ := taskRepo.GetByID(context.Background(), task.ID)
	if stored.Name != "mop" {
		t.Errorf("task.Name = %q, want untouched %q", stored.Name, "mop")
	}
}

func TestUpdateTaskCompletionBookkeeping(t *testing.T) {
	creator := newTestUser("creator")
	userRepo := newFakeUserRepo(creator)
	taskRepo := newFakeTaskRepo()
	pub := &fakePublisher{}
	svc := NewTaskService(taskRepo, userRepo, pub)

	task, _ := svc.CreateTask(context.Background(), &dto.CreateTaskRequest{
		Name:      "dishes",
		CreatedBy: dto.IDRef{ID: creator.ID},
	})

	done := true
	updated, err := svc.UpdateTask(context.Background(), task.ID, &dto.UpdateTaskRequest{
		IsCompleted: &done,
		CompletedBy: &dto.IDRef{ID: creator.ID},
	})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if !updated.IsCompleted {
		t.Error("IsCompleted = false, want true")
	}
	if updated.CompletedAt == nil {
		t.Error("CompletedAt not stamped")
	}
	if updated.CompletedByID == nil || *updated.CompletedByID != creator.ID {
		t.Errorf("CompletedByID = %v, want %s", updated.CompletedByID, creator.ID)
	}

	types := pub.eventTypes()
	if len(types) != 2 || types[1] != ports.TaskEventCompleted {
		t.Errorf("published events = %v, want [created completed]", types)
	}

	// ย้อนกลับเป็นไม่เสร็จต้องล้าง bookkeeping
	notDone := false
	updated, err = svc.UpdateTask(context.Background(), task.ID, &dto.UpdateTaskRequest{
		IsCompleted: &notDone,
	})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if updated.IsCompleted || updated.CompletedAt != nil || updated.CompletedByID != nil {
		t.Errorf("completion bookkeeping not cleared: %+v", updated)
	}
}

func TestUpdateTaskNotFound(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo(), newFakeUserRepo(), nil)

	name := "x"
	_, err := svc.UpdateTask(context.Background(), uuid.New(), &dto.UpdateTaskRequest{Name: &name})
	if !apperrors.IsNotFound(err) {
		t.Fatalf("err = %v, want NotFound", err)
	}
}

func TestDeleteTask(t *testing.T) {
	creator := newTestUser("creator")
	userRepo := newFakeUserRepo(creator)
	taskRepo := newFakeTaskRepo()
	pub := &fakePublisher{}
	svc := NewTaskService(taskRepo, userRepo, pub)

	task, _ := svc.CreateTask(context.Background(), &dto.CreateTaskRequest{
		Name:      "dishes",
		CreatedBy: dto.IDRef{ID: creator.ID},
	})

	if err := svc.DeleteTask(context.Background(), task.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if _, err := svc.GetTask(context.Background(), task.ID); !apperrors.IsNotFound(err) {
		t.Errorf("GetTask after delete = %v, want NotFound", err)
	}

	// ลบซ้ำต้องได้ NotFound ไม่ใช่ no-op
	if err := svc.DeleteTask(context.Background(), task.ID); !apperrors.IsNotFound(err) {
		t.Errorf("second delete = %v, want NotFound", err)
	}

	types := pub.eventTypes()
	if len(types) != 2 || types[1] != ports.TaskEventDeleted {
		t.Errorf("published events = %v, want [created deleted]", types)
	}
}
