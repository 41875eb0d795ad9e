package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"volunteerhub/internal/domain/event"
	"volunteerhub/internal/domain/user"
	"volunteerhub/internal/infrastructure/database"
	"volunteerhub/internal/infrastructure/persistence"
	"volunteerhub/internal/shared/authorization"
	"volunteerhub/internal/shared/config"

	"gorm.io/gorm"
)

// newTestDB opens a throwaway sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(&config.DatabaseConfig{
		Driver:   "sqlite",
		Database: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)

	require.NoError(t, persistence.AutoMigrate(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name, email string) *user.User {
	t.Helper()

	u, err := user.NewUser(name, email, "bcrypt-hash", authorization.RoleVolunteer)
	require.NoError(t, err)
	require.NoError(t, NewUserRepository(db).Create(context.Background(), u))
	return u
}

func createTestEvent(t *testing.T, db *gorm.DB, maxVolunteers int) *event.Event {
	t.Helper()

	e, err := event.NewEvent(
		"Beach Cleanup", "Clean the north shore",
		time.Now().Add(48*time.Hour), "09:00", "North Shore", "Environment",
		maxVolunteers,
	)
	require.NoError(t, err)
	require.NoError(t, NewEventRepository(db).Create(context.Background(), e))
	return e
}
