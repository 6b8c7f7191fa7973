package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/focusflow/focusflow/internal/model"
	"github.com/jmoiron/sqlx"
)

func createTestMilestone(t *testing.T, db *sqlx.DB, goalID int64, title string) *model.Milestone {
	t.Helper()

	repo := NewMilestoneRepository(db)
	milestone := &model.Milestone{
		GoalID:    goalID,
		Title:     title,
		CreatedAt: time.Now(),
	}
	err := repo.Create(milestone)
	if err != nil {
		t.Fatalf("failed to create test milestone: %v", err)
	}
	return milestone
}

func completedAt(m *model.Milestone) *model.Milestone {
	now := time.Now()
	m.Completed = true
	m.CompletedAt = &now
	return m
}

func TestMilestoneRepository_ByGoalOrder(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice")
	goal := createTestGoal(t, db, user.ID, "Ordered")
	repo := NewMilestoneRepository(db)

	first := createTestMilestone(t, db, goal.ID, "first")
	second := createTestMilestone(t, db, goal.ID, "second")

	milestones, err := repo.ByGoal(goal.ID)
	if err != nil {
		t.Fatalf("ByGoal() error = %v", err)
	}
	if len(milestones) != 2 {
		t.Fatalf("ByGoal() = %d milestones, want 2", len(milestones))
	}
	if milestones[0].ID != first.ID || milestones[1].ID != second.ID {
		t.Error("ByGoal() should return milestones in creation order")
	}
}

func TestMilestoneRepository_ByIDForUser(t *testing.T) {
	db := setupTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	goal := createTestGoal(t, db, alice.ID, "Mine")
	repo := NewMilestoneRepository(db)

	milestone := createTestMilestone(t, db, goal.ID, "step")

	found, err := repo.ByIDForUser(alice.ID, milestone.ID)
	if err != nil {
		t.Fatalf("ByIDForUser() error = %v", err)
	}
	if found.Title != "step" {
		t.Errorf("expected title %q, got %q", "step", found.Title)
	}

	_, err = repo.ByIDForUser(bob.ID, milestone.ID)
	if !errors.Is(err, ErrMilestoneNotFound) {
		t.Errorf("ByIDForUser() by other user = %v, want ErrMilestoneNotFound", err)
	}

	_, err = repo.ByIDForUser(alice.ID, 9999)
	if !errors.Is(err, ErrMilestoneNotFound) {
		t.Errorf("ByIDForUser() unknown id = %v, want ErrMilestoneNotFound", err)
	}
}

func TestMilestoneRepository_UpdateArchivesCompletedGoal(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice")
	goal := createTestGoal(t, db, user.ID, "Two steps")
	goalRepo := NewGoalRepository(db)
	repo := NewMilestoneRepository(db)

	a := createTestMilestone(t, db, goal.ID, "A")
	b := createTestMilestone(t, db, goal.ID, "B")

	// First completion: one milestone still open, goal stays active
	archived, err := repo.Update(completedAt(a))
	if err != nil {
		t.Fatalf("Update(A) error = %v", err)
	}
	if archived {
		t.Error("goal should not be archived while a milestone is open")
	}

	found, err := goalRepo.ByID(user.ID, goal.ID)
	if err != nil {
		t.Fatalf("ByID() error = %v", err)
	}
	if found.Archived {
		t.Error("goal should still be active")
	}

	// Second completion: all milestones done, goal auto-archives
	archived, err = repo.Update(completedAt(b))
	if err != nil {
		t.Fatalf("Update(B) error = %v", err)
	}
	if !archived {
		t.Error("goal should be archived once all milestones are completed")
	}

	found, err = goalRepo.ByID(user.ID, goal.ID)
	if err != nil {
		t.Fatalf("ByID() error = %v", err)
	}
	if !found.Archived || found.ArchivedAt == nil {
		t.Error("goal should be archived with archived_at set")
	}
}

func TestMilestoneRepository_UpdateTitleOnlyReevaluates(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice")
	goal := createTestGoal(t, db, user.ID, "Renames")
	goalRepo := NewGoalRepository(db)
	repo := NewMilestoneRepository(db)

	m := createTestMilestone(t, db, goal.ID, "old name")
	completedAt(m)
	_, err := repo.Update(m)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	// A title-only update still re-evaluates the milestone set and
	// refreshes archived_at on the already-archived goal
	before, err := goalRepo.ByID(user.ID, goal.ID)
	if err != nil {
		t.Fatalf("ByID() error = %v", err)
	}

	m.Title = "new name"
	archived, err := repo.Update(m)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if !archived {
		t.Error("fully-completed goal should archive on every milestone update")
	}

	after, err := goalRepo.ByID(user.ID, goal.ID)
	if err != nil {
		t.Fatalf("ByID() error = %v", err)
	}
	if after.ArchivedAt.Before(*before.ArchivedAt) {
		t.Error("archived_at should not move backwards")
	}
}

func TestMilestoneRepository_UpdateUnknownID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMilestoneRepository(db)

	_, err := repo.Update(&model.Milestone{ID: 42, GoalID: 1, Title: "ghost"})
	if !errors.Is(err, ErrMilestoneNotFound) {
		t.Errorf("Update() unknown id = %v, want ErrMilestoneNotFound", err)
	}
}

func TestMilestoneRepository_DeleteForUser(t *testing.T) {
	db := setupTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	goal := createTestGoal(t, db, alice.ID, "Mine")
	repo := NewMilestoneRepository(db)

	milestone := createTestMilestone(t, db, goal.ID, "step")

	err := repo.DeleteForUser(bob.ID, milestone.ID)
	if !errors.Is(err, ErrMilestoneNotFound) {
		t.Errorf("DeleteForUser() by other user = %v, want ErrMilestoneNotFound", err)
	}

	err = repo.DeleteForUser(alice.ID, milestone.ID)
	if err != nil {
		t.Fatalf("DeleteForUser() error = %v", err)
	}

	milestones, err := repo.ByGoal(goal.ID)
	if err != nil {
		t.Fatalf("ByGoal() error = %v", err)
	}
	if len(milestones) != 0 {
		t.Errorf("expected 0 milestones after delete, got %d", len(milestones))
	}
}
