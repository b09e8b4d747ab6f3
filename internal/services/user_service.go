package services

import (
	"shareit/internal/dto"
	"shareit/internal/repositories"
)

// UserService handles the identity store: plain CRUD over users. Email
// uniqueness is enforced by the storage layer's unique index.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetAllUsers retrieves every registered user.
func (s *UserService) GetAllUsers() ([]dto.UserDto, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, err
	}
	result := make([]dto.UserDto, 0, len(users))
	for _, user := range users {
		result = append(result, dto.MapToUserDto(user))
	}
	return result, nil
}

// GetUserByID retrieves a single user.
func (s *UserService) GetUserByID(userID int64) (*dto.UserDto, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	result := dto.MapToUserDto(*user)
	return &result, nil
}

// CreateUser registers a new user.
func (s *UserService) CreateUser(req dto.NewUserRequest) (*dto.UserDto, error) {
	user := dto.MapToUser(req)
	if err := s.userRepo.Create(&user); err != nil {
		return nil, err
	}
	result := dto.MapToUserDto(user)
	return &result, nil
}

// UpdateUser applies a partial update; blank fields are left unchanged.
func (s *UserService) UpdateUser(userID int64, req dto.UpdateUserRequest) (*dto.UserDto, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	dto.UpdateUserFields(user, req)
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	result := dto.MapToUserDto(*user)
	return &result, nil
}

// DeleteUser removes a user by id.
func (s *UserService) DeleteUser(userID int64) error {
	return s.userRepo.Delete(userID)
}
