package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvent(t *testing.T, maxVolunteers int) *Event {
	t.Helper()
	e, err := NewEvent(
		"Beach Cleanup", "Clean the north shore",
		time.Now().Add(48*time.Hour), "09:00", "North Shore", "Environment",
		maxVolunteers,
	)
	require.NoError(t, err)
	return e
}

// =============================================================================
// NewEvent - validation
// =============================================================================

func TestNewEvent_Valid(t *testing.T) {
	e := newTestEvent(t, 5)

	assert.Equal(t, uint(0), e.ID(), "new event should have zero ID")
	assert.Equal(t, "Beach Cleanup", e.Title())
	assert.Equal(t, 5, e.MaxVolunteers())
	assert.Empty(t, e.Volunteers(), "new event starts with an empty roster")
	assert.False(t, e.IsFull())
	assert.WithinDuration(t, time.Now(), e.CreatedAt(), 2*time.Second)
}

func TestNewEvent_DefaultsCategory(t *testing.T) {
	e, err := NewEvent("Food Drive", "Collect donations", time.Now().Add(time.Hour), "10:00", "Main Hall", "", 10)
	require.NoError(t, err)
	assert.Equal(t, "General", e.Category())
}

func TestNewEvent_RequiredFields(t *testing.T) {
	date := time.Now().Add(time.Hour)

	tests := []struct {
		name          string
		title         string
		description   string
		date          time.Time
		timeOfDay     string
		location      string
		maxVolunteers int
	}{
		{"blank title", "  ", "desc", date, "10:00", "here", 5},
		{"blank description", "title", "", date, "10:00", "here", 5},
		{"zero date", "title", "desc", time.Time{}, "10:00", "here", 5},
		{"blank time", "title", "desc", date, "", "here", 5},
		{"blank location", "title", "desc", date, "10:00", " ", 5},
		{"zero capacity", "title", "desc", date, "10:00", "here", 0},
		{"negative capacity", "title", "desc", date, "10:00", "here", -1},
		{"capacity above limit", "title", "desc", date, "10:00", "here", 1001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEvent(tt.title, tt.description, tt.date, tt.timeOfDay, tt.location, "General", tt.maxVolunteers)
			assert.Error(t, err)
		})
	}
}

func TestNewEvent_CapacityBounds(t *testing.T) {
	_, err := NewEvent("t", "d", time.Now(), "10:00", "l", "", MinVolunteers)
	assert.NoError(t, err)

	_, err = NewEvent("t", "d", time.Now(), "10:00", "l", "", MaxVolunteers)
	assert.NoError(t, err)
}

// =============================================================================
// Enroll / Withdraw
// =============================================================================

func TestEnroll_AddsToRoster(t *testing.T) {
	e := newTestEvent(t, 3)

	require.NoError(t, e.Enroll(7))
	assert.True(t, e.IsEnrolled(7))
	assert.Equal(t, []uint{7}, e.Volunteers())
	assert.Equal(t, 1, e.VolunteerCount())
}

func TestEnroll_DuplicateSurfacesAlreadyEnrolled(t *testing.T) {
	e := newTestEvent(t, 3)

	require.NoError(t, e.Enroll(7))
	err := e.Enroll(7)

	assert.ErrorIs(t, err, ErrAlreadyEnrolled)
	assert.Equal(t, 1, e.VolunteerCount(), "duplicate join must not add a second membership")
}

func TestEnroll_FullEventRejected(t *testing.T) {
	e := newTestEvent(t, 2)

	require.NoError(t, e.Enroll(1))
	require.NoError(t, e.Enroll(2))
	require.True(t, e.IsFull())

	err := e.Enroll(3)

	assert.ErrorIs(t, err, ErrEventFull)
	assert.Equal(t, 2, e.VolunteerCount())
}

func TestEnroll_CapacityInvariantHolds(t *testing.T) {
	e := newTestEvent(t, 4)

	for userID := uint(1); userID <= 10; userID++ {
		_ = e.Enroll(userID)
		assert.LessOrEqual(t, e.VolunteerCount(), e.MaxVolunteers())
	}
	assert.Equal(t, 4, e.VolunteerCount())
}

func TestWithdraw_RemovesFromRoster(t *testing.T) {
	e := newTestEvent(t, 3)
	require.NoError(t, e.Enroll(1))
	require.NoError(t, e.Enroll(2))

	require.NoError(t, e.Withdraw(1))

	assert.False(t, e.IsEnrolled(1))
	assert.Equal(t, []uint{2}, e.Volunteers())
}

func TestWithdraw_NotEnrolledLeavesRosterUnchanged(t *testing.T) {
	e := newTestEvent(t, 3)
	require.NoError(t, e.Enroll(1))

	err := e.Withdraw(99)

	assert.ErrorIs(t, err, ErrNotEnrolled)
	assert.Equal(t, []uint{1}, e.Volunteers())
}

func TestWithdraw_ThenRejoin(t *testing.T) {
	e := newTestEvent(t, 1)

	require.NoError(t, e.Enroll(1))
	require.NoError(t, e.Withdraw(1))
	require.NoError(t, e.Enroll(1), "leaving must free the capacity slot")
}

// =============================================================================
// Update
// =============================================================================

func TestUpdate_RejectsShrinkBelowEnrollment(t *testing.T) {
	e := newTestEvent(t, 5)
	require.NoError(t, e.Enroll(1))
	require.NoError(t, e.Enroll(2))
	require.NoError(t, e.Enroll(3))

	err := e.Update("Beach Cleanup", "Clean the north shore", e.Date(), "09:00", "North Shore", "Environment", 2)

	assert.ErrorIs(t, err, ErrCapacityBelowEnrollment)
	assert.Equal(t, 5, e.MaxVolunteers(), "failed update must leave the event unchanged")
}

func TestUpdate_AllowsShrinkToEnrollment(t *testing.T) {
	e := newTestEvent(t, 5)
	require.NoError(t, e.Enroll(1))
	require.NoError(t, e.Enroll(2))

	err := e.Update("Beach Cleanup", "Clean the north shore", e.Date(), "09:00", "North Shore", "Environment", 2)

	require.NoError(t, err)
	assert.Equal(t, 2, e.MaxVolunteers())
	assert.True(t, e.IsFull())
}

func TestUpdate_ValidatesFields(t *testing.T) {
	e := newTestEvent(t, 5)

	err := e.Update("", "desc", e.Date(), "09:00", "loc", "", 5)

	assert.Error(t, err)
	assert.Equal(t, "Beach Cleanup", e.Title())
}

// =============================================================================
// Reconstruct
// =============================================================================

func TestReconstructEvent_RosterExceedingCapacityRejected(t *testing.T) {
	_, err := ReconstructEvent(
		1, "t", "d", time.Now(), "10:00", "l", "General",
		2, []uint{1, 2, 3}, time.Now(), time.Now(),
	)
	assert.Error(t, err)
}

func TestReconstructEvent_CopiesRoster(t *testing.T) {
	roster := []uint{1, 2}
	e, err := ReconstructEvent(1, "t", "d", time.Now(), "10:00", "l", "General", 5, roster, time.Now(), time.Now())
	require.NoError(t, err)

	roster[0] = 99
	assert.Equal(t, []uint{1, 2}, e.Volunteers())
}
