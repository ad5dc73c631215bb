package dto

type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type RegisterRequest struct {
	Email     string `json:"email" form:"email" validate:"required,email,max=60"`
	Username  string `json:"username" form:"username" validate:"required,min=3,max=60"`
	Password  string `json:"password" form:"password" validate:"required,min=8,max=72"`
	FirstName string `json:"first_name" form:"first_name" validate:"omitempty,max=60"`
	LastName  string `json:"last_name" form:"last_name" validate:"omitempty,max=60"`
}
