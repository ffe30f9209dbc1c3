package service

import (
	"time"

	"taskask-backend/internal/database/models"
	apperrors "taskask-backend/internal/errors"
	"taskask-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// PasswordHasher is the one-way credential hasher injected into the user
// service. Verification is the authentication layer's concern.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
}

// UserService handles business logic for the user directory
type UserService struct {
	repo      repository.UserRepositoryInterface
	hasher    PasswordHasher
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, hasher PasswordHasher, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		hasher:    hasher,
		validator: validator,
	}
}

// CreateUserRequest represents the data needed to create a user
type CreateUserRequest struct {
	FullName string `json:"fullName" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=150"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Role     string `json:"role" validate:"required"`
}

// UserResponse represents the response data for a user. It never carries
// credential data.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// EmployeeResponse is the summary shape for the assignable-user pool
type EmployeeResponse struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"fullName"`
	Email    string    `json:"email"`
}

// UserSummary is the admin listing shape
type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"fullName"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"isActive"`
}

// CreateUser registers a new account with a hashed credential
func (s *UserService) CreateUser(req *CreateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	role := models.Role(req.Role)
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("role", "role must be one of MANAGER, EMPLOYEE, ADMIN, TEAM_LEAD")
	}

	// Check if email already exists (unique within system)
	if existing, err := s.repo.GetByEmail(req.Email); err == nil && existing != nil {
		return nil, apperrors.ErrUserExists
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}

	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	return s.convertToResponse(user), nil
}

// GetUserByID resolves a user or fails with a not-found error
func (s *UserService) GetUserByID(id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil || user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return s.convertToResponse(user), nil
}

// GetUserByEmail resolves a user by email or fails with a not-found error
func (s *UserService) GetUserByEmail(email string) (*UserResponse, error) {
	user, err := s.repo.GetByEmail(email)
	if err != nil || user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return s.convertToResponse(user), nil
}

// ListEmployees returns the assignable pool: EMPLOYEE and TEAM_LEAD users
func (s *UserService) ListEmployees() ([]EmployeeResponse, error) {
	users, err := s.repo.GetByRoles([]models.Role{models.RoleEmployee, models.RoleTeamLead})
	if err != nil {
		return nil, err
	}

	employees := make([]EmployeeResponse, 0, len(users))
	for _, user := range users {
		employees = append(employees, EmployeeResponse{
			ID:       user.ID,
			FullName: user.FullName,
			Email:    user.Email,
		})
	}
	return employees, nil
}

// ListAllUsers returns the admin view of all accounts
func (s *UserService) ListAllUsers() ([]UserSummary, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	summaries := make([]UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, UserSummary{
			ID:       user.ID,
			FullName: user.FullName,
			Email:    user.Email,
			Role:     string(user.Role),
			IsActive: user.IsActive,
		})
	}
	return summaries, nil
}

func (s *UserService) convertToResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		Role:      string(user.Role),
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}
