package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/focusflow/focusflow/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

type GoalRepository interface {
	Create(goal *model.Goal) error
	ByID(userID, goalID int64) (*model.Goal, error)
	Goals(userID int64, includeArchived bool) ([]*model.Goal, error)
	Archived(userID int64) ([]*model.Goal, error)
	Update(goal *model.Goal) error
	SetArchived(userID, goalID int64, archivedAt *time.Time) error
	Delete(userID, goalID int64) error
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(goal *model.Goal) error {
	query := `INSERT INTO goals (user_id, title, description, category, archived, archived_at, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`

	return r.db.Get(&goal.ID, query,
		goal.UserID,
		goal.Title,
		goal.Description,
		goal.Category,
		goal.Archived,
		goal.ArchivedAt,
		goal.CreatedAt,
		goal.UpdatedAt,
	)
}

func (r *goalRepository) ByID(userID, goalID int64) (*model.Goal, error) {
	goal := &model.Goal{}
	query := `SELECT * FROM goals WHERE id = $1 AND user_id = $2`

	err := r.db.Get(goal, query, goalID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrGoalNotFound
	}

	return goal, err
}

// Goals returns the user's goals in insertion order. Archived goals are
// excluded unless includeArchived is set.
func (r *goalRepository) Goals(userID int64, includeArchived bool) ([]*model.Goal, error) {
	var goals []*model.Goal

	query := `SELECT * FROM goals WHERE user_id = $1 ORDER BY id ASC`
	if !includeArchived {
		query = `SELECT * FROM goals WHERE user_id = $1 AND archived = FALSE ORDER BY id ASC`
	}

	err := r.db.Select(&goals, query, userID)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *goalRepository) Archived(userID int64) ([]*model.Goal, error) {
	var goals []*model.Goal
	query := `SELECT * FROM goals WHERE user_id = $1 AND archived = TRUE ORDER BY id ASC`

	err := r.db.Select(&goals, query, userID)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *goalRepository) Update(goal *model.Goal) error {
	query := `UPDATE goals
	          SET title = $1, description = $2, category = $3, updated_at = $4
	          WHERE id = $5 AND user_id = $6`

	result, err := r.db.Exec(query,
		goal.Title,
		goal.Description,
		goal.Category,
		goal.UpdatedAt,
		goal.ID,
		goal.UserID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}

// SetArchived archives the goal when archivedAt is non-nil and unarchives it
// when nil. Archiving an already-archived goal refreshes archived_at.
func (r *goalRepository) SetArchived(userID, goalID int64, archivedAt *time.Time) error {
	query := `UPDATE goals SET archived = $1, archived_at = $2 WHERE id = $3 AND user_id = $4`

	result, err := r.db.Exec(query, archivedAt != nil, archivedAt, goalID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}

// Delete removes the goal and all its milestones in one transaction. The
// cascade is an explicit step so the guarantee lives in this contract, not
// in a store trigger.
func (r *goalRepository) Delete(userID, goalID int64) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`DELETE FROM milestones WHERE goal_id IN (SELECT id FROM goals WHERE id = $1 AND user_id = $2)`, goalID, userID)
	if err != nil {
		return err
	}

	result, err := tx.Exec(`DELETE FROM goals WHERE id = $1 AND user_id = $2`, goalID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return tx.Commit()
}
