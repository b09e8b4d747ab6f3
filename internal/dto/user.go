package dto

import "shareit/internal/models"

// NewUserRequest is the body of POST /users.
type NewUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// UpdateUserRequest is the body of PATCH /users/{id}. Blank fields are left
// unchanged.
type UpdateUserRequest struct {
	Name  string `json:"name" validate:"omitempty"`
	Email string `json:"email" validate:"omitempty,email"`
}

func (r UpdateUserRequest) HasName() bool  { return r.Name != "" }
func (r UpdateUserRequest) HasEmail() bool { return r.Email != "" }

// UserDto is the wire representation of a user.
type UserDto struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func MapToUser(req NewUserRequest) models.User {
	return models.User{Name: req.Name, Email: req.Email}
}

func MapToUserDto(user models.User) UserDto {
	return UserDto{ID: user.ID, Name: user.Name, Email: user.Email}
}

// UpdateUserFields applies a partial update onto an existing user.
func UpdateUserFields(user *models.User, req UpdateUserRequest) {
	if req.HasName() {
		user.Name = req.Name
	}
	if req.HasEmail() {
		user.Email = req.Email
	}
}
