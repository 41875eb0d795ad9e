package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volunteerhub/internal/domain/announcement"
	apperrors "volunteerhub/internal/shared/errors"
)

func TestAnnouncementRepository_CreateWithEmptySnapshot(t *testing.T) {
	db := newTestDB(t)
	repo := NewAnnouncementRepository(db)
	ctx := context.Background()

	e := createTestEvent(t, db, 5)
	admin := createTestUser(t, db, "Root", "root@example.org")

	ann, err := announcement.NewAnnouncement(e.ID(), "Reminder", "Bring gloves", admin.ID(), nil)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, ann))
	require.NotZero(t, ann.ID())

	loaded, err := repo.GetByID(ctx, ann.ID())
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 0, loaded.RecipientCount(), "zero-recipient announcement must be retrievable")
	assert.Equal(t, "Bring gloves", loaded.Message())
}

func TestAnnouncementRepository_SnapshotExcludesLaterJoiners(t *testing.T) {
	db := newTestDB(t)
	annRepo := NewAnnouncementRepository(db)
	eventRepo := NewEventRepository(db)
	ctx := context.Background()

	e := createTestEvent(t, db, 5)
	admin := createTestUser(t, db, "Root", "root@example.org")
	early := createTestUser(t, db, "Ada", "ada@example.org")
	late := createTestUser(t, db, "Grace", "grace@example.org")

	require.NoError(t, eventRepo.AddVolunteer(ctx, e.ID(), early.ID()))

	ann, err := announcement.NewAnnouncement(e.ID(), "Reminder", "Bring gloves", admin.ID(), []uint{early.ID()})
	require.NoError(t, err)
	require.NoError(t, annRepo.Create(ctx, ann))

	// Joining after the send must not backfill the recipient set.
	require.NoError(t, eventRepo.AddVolunteer(ctx, e.ID(), late.ID()))

	earlyList, err := annRepo.ListByRecipient(ctx, early.ID())
	require.NoError(t, err)
	require.Len(t, earlyList, 1)

	lateList, err := annRepo.ListByRecipient(ctx, late.ID())
	require.NoError(t, err)
	assert.Empty(t, lateList)
}

func TestAnnouncementRepository_ListByRecipient_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	annRepo := NewAnnouncementRepository(db)
	ctx := context.Background()

	e := createTestEvent(t, db, 5)
	admin := createTestUser(t, db, "Root", "root@example.org")
	u := createTestUser(t, db, "Ada", "ada@example.org")

	for _, msg := range []string{"first", "second", "third"} {
		ann, err := announcement.NewAnnouncement(e.ID(), "t", msg, admin.ID(), []uint{u.ID()})
		require.NoError(t, err)
		require.NoError(t, annRepo.Create(ctx, ann))
	}

	list, err := annRepo.ListByRecipient(ctx, u.ID())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].Message())

	// Ordering must be stable across repeated calls.
	again, err := annRepo.ListByRecipient(ctx, u.ID())
	require.NoError(t, err)
	for i := range list {
		assert.Equal(t, list[i].ID(), again[i].ID())
	}
}

func TestAnnouncementRepository_MarkRead_Idempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewAnnouncementRepository(db)
	ctx := context.Background()

	e := createTestEvent(t, db, 5)
	admin := createTestUser(t, db, "Root", "root@example.org")
	u := createTestUser(t, db, "Ada", "ada@example.org")

	ann, err := announcement.NewAnnouncement(e.ID(), "t", "m", admin.ID(), []uint{u.ID()})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, ann))

	require.NoError(t, repo.MarkRead(ctx, ann.ID(), u.ID()))
	require.NoError(t, repo.MarkRead(ctx, ann.ID(), u.ID()), "duplicate mark must be success")

	loaded, err := repo.GetByID(ctx, ann.ID())
	require.NoError(t, err)
	assert.Len(t, loaded.ReadBy(), 1)
	assert.True(t, loaded.IsReadBy(u.ID()))
}

func TestAnnouncementRepository_MarkRead_MissingAnnouncement(t *testing.T) {
	db := newTestDB(t)
	repo := NewAnnouncementRepository(db)

	err := repo.MarkRead(context.Background(), 9999, 1)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestAnnouncementRepository_SurvivesEventDeletion(t *testing.T) {
	db := newTestDB(t)
	annRepo := NewAnnouncementRepository(db)
	eventRepo := NewEventRepository(db)
	ctx := context.Background()

	e := createTestEvent(t, db, 5)
	admin := createTestUser(t, db, "Root", "root@example.org")
	u := createTestUser(t, db, "Ada", "ada@example.org")
	require.NoError(t, eventRepo.AddVolunteer(ctx, e.ID(), u.ID()))

	ann, err := announcement.NewAnnouncement(e.ID(), "t", "m", admin.ID(), []uint{u.ID()})
	require.NoError(t, err)
	require.NoError(t, annRepo.Create(ctx, ann))

	require.NoError(t, eventRepo.Delete(ctx, e.ID()))

	// The announcement's event is gone; reading it must still work.
	list, err := annRepo.ListByRecipient(ctx, u.ID())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, e.ID(), list[0].EventID())
}
