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

func TestUpdateProfile_Success(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	seeded := seedUser(t, userRepo, "alice@example.com", "secret123", authorization.RoleVolunteer)

	uc := NewUpdateProfileUseCase(userRepo, testutil.NewMockLogger())

	result, err := uc.Execute(context.Background(), UpdateProfileCommand{
		UserID:  seeded.ID(),
		Name:    "Alice C.",
		Phone:   "555-0100",
		Address: "12 Elm St",
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice C.", result.Name)
	assert.Equal(t, "555-0100", result.Phone)
	assert.Equal(t, "12 Elm St", result.Address)
}

// Email and role are immutable through the profile path.
func TestUpdateProfile_EmailAndRoleUnchanged(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	seeded := seedUser(t, userRepo, "alice@example.com", "secret123", authorization.RoleAdmin)

	uc := NewUpdateProfileUseCase(userRepo, testutil.NewMockLogger())

	result, err := uc.Execute(context.Background(), UpdateProfileCommand{
		UserID: seeded.ID(),
		Name:   "New Name",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", result.Email)
	assert.Equal(t, authorization.RoleAdmin, result.Role)
}

func TestUpdateProfile_UserNotFound(t *testing.T) {
	uc := NewUpdateProfileUseCase(testutil.NewMockUserRepository(), testutil.NewMockLogger())

	_, err := uc.Execute(context.Background(), UpdateProfileCommand{UserID: 42, Name: "Ghost"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestGetProfile_Success(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	seeded := seedUser(t, userRepo, "alice@example.com", "secret123", authorization.RoleVolunteer)

	uc := NewGetProfileUseCase(userRepo, testutil.NewMockLogger())

	result, err := uc.Execute(context.Background(), GetProfileQuery{UserID: seeded.ID()})
	require.NoError(t, err)
	assert.Equal(t, seeded.ID(), result.ID)
	assert.Equal(t, "alice@example.com", result.Email)
}

func TestGetProfile_NotFound(t *testing.T) {
	uc := NewGetProfileUseCase(testutil.NewMockUserRepository(), testutil.NewMockLogger())

	_, err := uc.Execute(context.Background(), GetProfileQuery{UserID: 99})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
