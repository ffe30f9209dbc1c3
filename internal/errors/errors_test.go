package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "task"}
		assert.Equal(t, "task not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "task"}
		err2 := &NotFoundError{Entity: "task"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "task"}
		err2 := &NotFoundError{Entity: "user"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrTaskNotFound, ErrTaskNotFound))
		assert.False(t, errors.Is(ErrTaskNotFound, ErrUserNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrTaskNotFound))
		assert.True(t, IsNotFound(ErrTeamForLeadNotFound))
		assert.False(t, IsNotFound(ErrUserExists))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user", Context: "with this email"}
		assert.Equal(t, "user already exists with this email", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team"}
		assert.Equal(t, "team already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "team", Context: "for this lead"}
		err2 := &AlreadyExistsError{Entity: "team", Context: "for this lead"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrUserExists))
		assert.True(t, IsAlreadyExists(ErrTeamMemberExists))
		assert.False(t, IsAlreadyExists(ErrTaskNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(ErrCreatorRoleNotAllowed))
		assert.True(t, IsValidation(ErrAssigneeNotEmployee))
		assert.True(t, IsValidation(ErrLeadRoleRequired))
		assert.True(t, IsValidation(ErrMemberNotEmployee))
		assert.False(t, IsValidation(ErrNotTeamLead))
	})

	t.Run("Role rule messages", func(t *testing.T) {
		assert.Contains(t, ErrCreatorRoleNotAllowed.Error(), "createdBy must be a MANAGER, ADMIN, or TEAM_LEAD")
		assert.Contains(t, ErrAssigneeNotEmployee.Error(), "assignedTo must be an EMPLOYEE")
	})
}

func TestAuthenticationError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		assert.Equal(t, "invalid email or password", ErrInvalidCredentials.Error())
		assert.Equal(t, "user account is deactivated", ErrInactiveUser.Error())
	})

	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidCredentials))
		assert.True(t, IsAuthentication(ErrInactiveUser))
		assert.False(t, IsAuthentication(ErrNotTeamLead))
	})
}

func TestAuthorizationError(t *testing.T) {
	t.Run("IsAuthorization helper", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrNotTeamLead))
		assert.False(t, IsAuthorization(ErrInvalidCredentials))
	})
}

func TestConstructors(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("widget")
		assert.True(t, IsNotFound(err))
		assert.Equal(t, "widget not found", err.Error())
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("widget", "with this name")
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("dueDate", "must be a date")
		assert.True(t, IsValidation(err))
	})

	t.Run("NewAuthenticationError", func(t *testing.T) {
		assert.True(t, IsAuthentication(NewAuthenticationError("bad token")))
	})

	t.Run("NewAuthorizationError", func(t *testing.T) {
		assert.True(t, IsAuthorization(NewAuthorizationError("not allowed")))
	})
}

func TestHelpersWithWrappedErrors(t *testing.T) {
	wrapped := errors.Join(errors.New("outer"), ErrTaskNotFound)
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.False(t, IsNotFound(nil))
}
