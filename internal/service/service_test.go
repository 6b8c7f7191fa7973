package service

import (
	"testing"

	"github.com/focusflow/focusflow/internal/db"
	"github.com/focusflow/focusflow/internal/repository"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory SQLite database with the full schema.
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Connect("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// A second connection would open a second empty in-memory database
	database.SetMaxOpenConns(1)

	err = db.RunMigrations(database.DB, "sqlite")
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		database.Close()
	})

	return database
}

func newTestServices(t *testing.T) (*AuthService, *GoalService) {
	t.Helper()

	database := setupTestDB(t)
	userRepo := repository.NewUserRepository(database)
	goalRepo := repository.NewGoalRepository(database)
	milestoneRepo := repository.NewMilestoneRepository(database)

	auth := NewAuthService(userRepo, NewPlainTokenScheme())
	goals := NewGoalService(goalRepo, milestoneRepo)
	return auth, goals
}

func registerTestUser(t *testing.T, auth *AuthService, username string) int64 {
	t.Helper()

	user, err := auth.Register(username, "secret-password")
	if err != nil {
		t.Fatalf("failed to register test user: %v", err)
	}
	return user.ID
}
