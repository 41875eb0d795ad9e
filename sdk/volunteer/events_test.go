package volunteer_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volunteerhub/sdk/volunteer"
)

func TestEventLifecycle_AdminOnly(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	admin := newAdminClient(t, srv)
	vol := newVolunteerClient(t, srv, "Alice Chen", "alice@example.com")

	// Volunteers cannot touch the registry
	_, err := vol.CreateEvent(ctx, testEventRequest(5))
	require.Error(t, err)
	assert.True(t, volunteer.IsForbidden(err))

	created, err := admin.CreateEvent(ctx, testEventRequest(5))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Empty(t, created.Volunteers)

	_, err = vol.UpdateEvent(ctx, created.ID, testEventRequest(10))
	require.Error(t, err)
	assert.True(t, volunteer.IsForbidden(err))

	err = vol.DeleteEvent(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, volunteer.IsForbidden(err))

	// Both roles can read
	events, err := vol.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, created.ID, events[0].ID)

	require.NoError(t, admin.DeleteEvent(ctx, created.ID))

	_, err = vol.GetEvent(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, volunteer.IsNotFound(err))
}

func TestJoinLeave_RoundTrip(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	admin := newAdminClient(t, srv)
	vol := newVolunteerClient(t, srv, "Alice Chen", "alice@example.com")

	created, err := admin.CreateEvent(ctx, testEventRequest(5))
	require.NoError(t, err)

	joined, err := vol.JoinEvent(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, joined.Volunteers, 1)
	assert.True(t, vol.IsEnrolled(joined))

	// A duplicate join is a conflict, not a second seat
	_, err = vol.JoinEvent(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, volunteer.IsConflict(err))

	mine, err := vol.MyEvents(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	left, err := vol.LeaveEvent(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, left.Volunteers)
	assert.False(t, vol.IsEnrolled(left))

	_, err = vol.LeaveEvent(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, volunteer.IsConflict(err))

	// Withdraw and rejoin is allowed
	rejoined, err := vol.JoinEvent(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, rejoined.Volunteers, 1)
}

func TestJoin_CapacityNeverExceeded(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	admin := newAdminClient(t, srv)
	created, err := admin.CreateEvent(ctx, testEventRequest(2))
	require.NoError(t, err)

	clients := []*volunteer.Client{
		newVolunteerClient(t, srv, "V One", "v1@example.com"),
		newVolunteerClient(t, srv, "V Two", "v2@example.com"),
		newVolunteerClient(t, srv, "V Three", "v3@example.com"),
	}

	var wg sync.WaitGroup
	results := make([]error, len(clients))
	for i, c := range clients {
		wg.Add(1)
		go func(i int, c *volunteer.Client) {
			defer wg.Done()
			_, results[i] = c.JoinEvent(ctx, created.ID)
		}(i, c)
	}
	wg.Wait()

	succeeded, conflicts := 0, 0
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case volunteer.IsConflict(err):
			conflicts++
		default:
			t.Fatalf("unexpected join error: %v", err)
		}
	}
	assert.Equal(t, 2, succeeded, "exactly capacity joins may win")
	assert.Equal(t, 1, conflicts)

	final, err := admin.GetEvent(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, final.Volunteers, 2)
}

func TestUpdateEvent_RejectsCapacityBelowRoster(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	admin := newAdminClient(t, srv)
	created, err := admin.CreateEvent(ctx, testEventRequest(5))
	require.NoError(t, err)

	for _, email := range []string{"a@example.com", "b@example.com"} {
		c := newVolunteerClient(t, srv, "Volunteer", email)
		_, err := c.JoinEvent(ctx, created.ID)
		require.NoError(t, err)
	}

	_, err = admin.UpdateEvent(ctx, created.ID, testEventRequest(1))
	require.Error(t, err)
	assert.True(t, volunteer.IsConflict(err))

	// Shrinking to exactly the roster size is fine
	updated, err := admin.UpdateEvent(ctx, created.ID, testEventRequest(2))
	require.NoError(t, err)
	assert.Equal(t, 2, updated.MaxVolunteers)
	assert.True(t, updated.IsFull())
	assert.Zero(t, updated.SpotsLeft())
}

func TestRemoveVolunteer_AdminOnly(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	admin := newAdminClient(t, srv)
	vol := newVolunteerClient(t, srv, "Alice Chen", "alice@example.com")
	other := newVolunteerClient(t, srv, "Bob Park", "bob@example.com")

	created, err := admin.CreateEvent(ctx, testEventRequest(5))
	require.NoError(t, err)

	joined, err := vol.JoinEvent(ctx, created.ID)
	require.NoError(t, err)
	target := joined.Volunteers[0].ID

	_, err = other.RemoveVolunteer(ctx, created.ID, target)
	require.Error(t, err)
	assert.True(t, volunteer.IsForbidden(err))

	after, err := admin.RemoveVolunteer(ctx, created.ID, target)
	require.NoError(t, err)
	assert.Empty(t, after.Volunteers)
}
