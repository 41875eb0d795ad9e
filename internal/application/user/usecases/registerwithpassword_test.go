package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volunteerhub/internal/application/testutil"
	"volunteerhub/internal/shared/authorization"
	"volunteerhub/internal/shared/errors"
)

func TestRegisterWithPassword_Success(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	uc := NewRegisterWithPasswordUseCase(userRepo, testutil.NewMockPasswordHasher(), &mockJWTService{}, testutil.NewMockLogger())

	result, err := uc.Execute(context.Background(), RegisterWithPasswordCommand{
		Name:     "Bob Park",
		Email:    "Bob@Example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.NotZero(t, result.User.ID)
	assert.Equal(t, "bob@example.com", result.User.Email, "email is stored lowercased")
	assert.Equal(t, authorization.RoleVolunteer, result.User.Role, "registration always yields a volunteer")
	assert.NotEmpty(t, result.AccessToken)
}

func TestRegisterWithPassword_DuplicateEmail(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	seedUser(t, userRepo, "bob@example.com", "secret123", authorization.RoleVolunteer)

	uc := NewRegisterWithPasswordUseCase(userRepo, testutil.NewMockPasswordHasher(), &mockJWTService{}, testutil.NewMockLogger())

	result, err := uc.Execute(context.Background(), RegisterWithPasswordCommand{
		Name:     "Other Bob",
		Email:    "bob@example.com",
		Password: "secret456",
	})
	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestRegisterWithPassword_ShortPassword(t *testing.T) {
	uc := NewRegisterWithPasswordUseCase(testutil.NewMockUserRepository(), testutil.NewMockPasswordHasher(), &mockJWTService{}, testutil.NewMockLogger())

	_, err := uc.Execute(context.Background(), RegisterWithPasswordCommand{
		Name:     "Bob Park",
		Email:    "bob@example.com",
		Password: "abc",
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
