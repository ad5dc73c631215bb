package dto

import (
	"roomies-api/domain/models"
)

func UserToUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func UserToSummary(user *models.User) *UserSummary {
	if user == nil {
		return nil
	}
	return &UserSummary{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

func TaskToTaskResponse(task *models.Task) *TaskResponse {
	if task == nil {
		return nil
	}
	assignees := make([]UserSummary, len(task.Assignees))
	for i := range task.Assignees {
		assignees[i] = *UserToSummary(&task.Assignees[i])
	}
	return &TaskResponse{
		ID:          task.ID,
		Name:        task.Name,
		Description: task.Description,
		CreatedBy:   UserToSummary(&task.CreatedBy),
		CompletedBy: UserToSummary(task.CompletedBy),
		Assignees:   assignees,
		DueDate:     task.DueDate,
		IsCompleted: task.IsCompleted,
		CompletedAt: task.CompletedAt,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}
