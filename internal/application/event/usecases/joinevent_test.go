package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volunteerhub/internal/application/testutil"
	"volunteerhub/internal/domain/event"
	"volunteerhub/internal/domain/user"
	"volunteerhub/internal/shared/authorization"
	"volunteerhub/internal/shared/errors"
)

func seedEvent(t *testing.T, repo *testutil.MockEventRepository, maxVolunteers int) *event.Event {
	t.Helper()
	e, err := event.NewEvent(
		"Park Cleanup", "Bring gloves",
		time.Now().Add(72*time.Hour), "08:30", "Riverside Park", "Environment",
		maxVolunteers,
	)
	require.NoError(t, err)
	repo.AddEvent(e)
	return e
}

func seedVolunteer(t *testing.T, repo *testutil.MockUserRepository, name, email string) *user.User {
	t.Helper()
	u, err := user.NewUser(name, email, "hashed:pw", authorization.RoleVolunteer)
	require.NoError(t, err)
	repo.AddUser(u)
	return u
}

func TestJoinEvent_Success(t *testing.T) {
	eventRepo := testutil.NewMockEventRepository()
	userRepo := testutil.NewMockUserRepository()
	e := seedEvent(t, eventRepo, 5)
	u := seedVolunteer(t, userRepo, "Alice Chen", "alice@example.com")

	uc := NewJoinEventUseCase(eventRepo, userRepo, testutil.NewMockLogger())

	result, err := uc.Execute(context.Background(), JoinEventCommand{EventID: e.ID(), UserID: u.ID()})
	require.NoError(t, err)

	require.Len(t, result.Volunteers, 1)
	assert.Equal(t, u.ID(), result.Volunteers[0].ID)
	assert.Equal(t, "Alice Chen", result.Volunteers[0].Name)
	assert.Equal(t, "alice@example.com", result.Volunteers[0].Email)
}

func TestJoinEvent_AlreadyEnrolled(t *testing.T) {
	eventRepo := testutil.NewMockEventRepository()
	userRepo := testutil.NewMockUserRepository()
	e := seedEvent(t, eventRepo, 5)
	u := seedVolunteer(t, userRepo, "Alice Chen", "alice@example.com")

	uc := NewJoinEventUseCase(eventRepo, userRepo, testutil.NewMockLogger())

	_, err := uc.Execute(context.Background(), JoinEventCommand{EventID: e.ID(), UserID: u.ID()})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), JoinEventCommand{EventID: e.ID(), UserID: u.ID()})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestJoinEvent_Full(t *testing.T) {
	eventRepo := testutil.NewMockEventRepository()
	userRepo := testutil.NewMockUserRepository()
	e := seedEvent(t, eventRepo, 1)
	first := seedVolunteer(t, userRepo, "Alice Chen", "alice@example.com")
	second := seedVolunteer(t, userRepo, "Bob Park", "bob@example.com")

	uc := NewJoinEventUseCase(eventRepo, userRepo, testutil.NewMockLogger())

	_, err := uc.Execute(context.Background(), JoinEventCommand{EventID: e.ID(), UserID: first.ID()})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), JoinEventCommand{EventID: e.ID(), UserID: second.ID()})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestJoinEvent_EventNotFound(t *testing.T) {
	uc := NewJoinEventUseCase(testutil.NewMockEventRepository(), testutil.NewMockUserRepository(), testutil.NewMockLogger())

	_, err := uc.Execute(context.Background(), JoinEventCommand{EventID: 99, UserID: 1})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestLeaveEvent_Success(t *testing.T) {
	eventRepo := testutil.NewMockEventRepository()
	userRepo := testutil.NewMockUserRepository()
	e := seedEvent(t, eventRepo, 5)
	u := seedVolunteer(t, userRepo, "Alice Chen", "alice@example.com")

	join := NewJoinEventUseCase(eventRepo, userRepo, testutil.NewMockLogger())
	_, err := join.Execute(context.Background(), JoinEventCommand{EventID: e.ID(), UserID: u.ID()})
	require.NoError(t, err)

	leave := NewLeaveEventUseCase(eventRepo, userRepo, testutil.NewMockLogger())
	result, err := leave.Execute(context.Background(), LeaveEventCommand{EventID: e.ID(), UserID: u.ID()})
	require.NoError(t, err)
	assert.Empty(t, result.Volunteers)
}

func TestLeaveEvent_NotEnrolled(t *testing.T) {
	eventRepo := testutil.NewMockEventRepository()
	userRepo := testutil.NewMockUserRepository()
	e := seedEvent(t, eventRepo, 5)
	u := seedVolunteer(t, userRepo, "Alice Chen", "alice@example.com")

	leave := NewLeaveEventUseCase(eventRepo, userRepo, testutil.NewMockLogger())
	_, err := leave.Execute(context.Background(), LeaveEventCommand{EventID: e.ID(), UserID: u.ID()})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestRemoveVolunteer_Success(t *testing.T) {
	eventRepo := testutil.NewMockEventRepository()
	userRepo := testutil.NewMockUserRepository()
	e := seedEvent(t, eventRepo, 5)
	u := seedVolunteer(t, userRepo, "Alice Chen", "alice@example.com")

	join := NewJoinEventUseCase(eventRepo, userRepo, testutil.NewMockLogger())
	_, err := join.Execute(context.Background(), JoinEventCommand{EventID: e.ID(), UserID: u.ID()})
	require.NoError(t, err)

	remove := NewRemoveVolunteerUseCase(eventRepo, userRepo, testutil.NewMockLogger())
	result, err := remove.Execute(context.Background(), RemoveVolunteerCommand{EventID: e.ID(), UserID: u.ID()})
	require.NoError(t, err)
	assert.Empty(t, result.Volunteers)
}
