package handlers

import (
	"net/http"

	"taskask-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user directory operations
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUser handles POST /users
// @Summary Register a new user
// @Description Create an account with a role; the password is hashed before storage
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.CreateUserRequest true "User data"
// @Success 201 {object} service.UserResponse "Successfully created user"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Email already registered"
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.CreateUser(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// ListEmployees handles GET /employees
// @Summary List assignable users
// @Description Returns users with role EMPLOYEE or TEAM_LEAD
// @Tags users
// @Produce json
// @Success 200 {array} service.EmployeeResponse "Assignable users"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /employees [get]
func (h *UserHandler) ListEmployees(c *gin.Context) {
	employees, err := h.userService.ListEmployees()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, employees)
}

// ListAllUsers handles GET /admin/users
// @Summary List all users (admin)
// @Description Returns every account; credential data is never included
// @Tags admin
// @Produce json
// @Success 200 {array} service.UserSummary "All users"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /admin/users [get]
func (h *UserHandler) ListAllUsers(c *gin.Context) {
	users, err := h.userService.ListAllUsers()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}
