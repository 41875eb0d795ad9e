package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volunteerhub/internal/domain/event"
	apperrors "volunteerhub/internal/shared/errors"
)

func TestEventRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	e := createTestEvent(t, db, 5)
	require.NotZero(t, e.ID())

	loaded, err := repo.GetByID(ctx, e.ID())
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "Beach Cleanup", loaded.Title())
	assert.Equal(t, 5, loaded.MaxVolunteers())
	assert.Empty(t, loaded.Volunteers())
}

func TestEventRepository_GetMissingReturnsNil(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)

	loaded, err := repo.GetByID(context.Background(), 9999)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestEventRepository_AddVolunteer(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	e := createTestEvent(t, db, 3)
	u := createTestUser(t, db, "Ada", "ada@example.org")

	require.NoError(t, repo.AddVolunteer(ctx, e.ID(), u.ID()))

	loaded, err := repo.GetByID(ctx, e.ID())
	require.NoError(t, err)
	assert.True(t, loaded.IsEnrolled(u.ID()))
	assert.Equal(t, 1, loaded.VolunteerCount())
}

func TestEventRepository_AddVolunteer_DuplicateReportsAlreadyEnrolled(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	e := createTestEvent(t, db, 3)
	u := createTestUser(t, db, "Ada", "ada@example.org")

	require.NoError(t, repo.AddVolunteer(ctx, e.ID(), u.ID()))
	err := repo.AddVolunteer(ctx, e.ID(), u.ID())

	assert.ErrorIs(t, err, event.ErrAlreadyEnrolled)

	loaded, err := repo.GetByID(ctx, e.ID())
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.VolunteerCount(), "duplicate join must not double-count")
}

func TestEventRepository_AddVolunteer_FullEvent(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	e := createTestEvent(t, db, 1)
	u1 := createTestUser(t, db, "Ada", "ada@example.org")
	u2 := createTestUser(t, db, "Grace", "grace@example.org")

	require.NoError(t, repo.AddVolunteer(ctx, e.ID(), u1.ID()))
	err := repo.AddVolunteer(ctx, e.ID(), u2.ID())

	assert.ErrorIs(t, err, event.ErrEventFull)
}

func TestEventRepository_AddVolunteer_MissingEvent(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)

	err := repo.AddVolunteer(context.Background(), 9999, 1)
	assert.True(t, apperrors.IsNotFoundError(err))
}

// TestEventRepository_ConcurrentJoins verifies the store serializes joins
// against the same event: capacity 2, three users racing, exactly one
// rejection and a final roster of two.
func TestEventRepository_ConcurrentJoins(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	e := createTestEvent(t, db, 2)
	users := []uint{
		createTestUser(t, db, "Ada", "ada@example.org").ID(),
		createTestUser(t, db, "Grace", "grace@example.org").ID(),
		createTestUser(t, db, "Edsger", "edsger@example.org").ID(),
	}

	var wg sync.WaitGroup
	results := make([]error, len(users))
	for i, userID := range users {
		wg.Add(1)
		go func(i int, userID uint) {
			defer wg.Done()
			results[i] = repo.AddVolunteer(ctx, e.ID(), userID)
		}(i, userID)
	}
	wg.Wait()

	var succeeded, full int
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, event.ErrEventFull):
			full++
		default:
			t.Fatalf("unexpected join error: %v", err)
		}
	}
	assert.Equal(t, 2, succeeded)
	assert.Equal(t, 1, full)

	loaded, err := repo.GetByID(ctx, e.ID())
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.VolunteerCount(), "capacity must never be exceeded")
}

func TestEventRepository_RemoveVolunteer(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	e := createTestEvent(t, db, 2)
	u := createTestUser(t, db, "Ada", "ada@example.org")

	require.NoError(t, repo.AddVolunteer(ctx, e.ID(), u.ID()))
	require.NoError(t, repo.RemoveVolunteer(ctx, e.ID(), u.ID()))

	loaded, err := repo.GetByID(ctx, e.ID())
	require.NoError(t, err)
	assert.False(t, loaded.IsEnrolled(u.ID()))
}

func TestEventRepository_RemoveVolunteer_NotEnrolled(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)

	e := createTestEvent(t, db, 2)

	err := repo.RemoveVolunteer(context.Background(), e.ID(), 777)
	assert.ErrorIs(t, err, event.ErrNotEnrolled)
}

func TestEventRepository_ListByVolunteer(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	e1 := createTestEvent(t, db, 5)
	_ = createTestEvent(t, db, 5)
	u := createTestUser(t, db, "Ada", "ada@example.org")

	require.NoError(t, repo.AddVolunteer(ctx, e1.ID(), u.ID()))

	mine, err := repo.ListByVolunteer(ctx, u.ID())
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, e1.ID(), mine[0].ID())
}

func TestEventRepository_DeleteCascadesRoster(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	e := createTestEvent(t, db, 2)
	u := createTestUser(t, db, "Ada", "ada@example.org")
	require.NoError(t, repo.AddVolunteer(ctx, e.ID(), u.ID()))

	require.NoError(t, repo.Delete(ctx, e.ID()))

	loaded, err := repo.GetByID(ctx, e.ID())
	require.NoError(t, err)
	assert.Nil(t, loaded)

	mine, err := repo.ListByVolunteer(ctx, u.ID())
	require.NoError(t, err)
	assert.Empty(t, mine)
}

// Saving an event back unchanged must not be misread as the row being
// gone; mysql reports zero affected rows for such an update.
func TestEventRepository_Update_UnchangedEventSucceeds(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	e := createTestEvent(t, db, 5)

	loaded, err := repo.GetByID(ctx, e.ID())
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, loaded))

	again, err := repo.GetByID(ctx, e.ID())
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, 5, again.MaxVolunteers())
}

func TestEventRepository_Update_MissingReturnsNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	e := createTestEvent(t, db, 5)
	loaded, err := repo.GetByID(ctx, e.ID())
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, e.ID()))

	err = repo.Update(ctx, loaded)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestEventRepository_Delete_Missing(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)

	err := repo.Delete(context.Background(), 424242)
	assert.True(t, apperrors.IsNotFoundError(err))
}
