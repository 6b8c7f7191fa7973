package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/focusflow/focusflow/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrMilestoneNotFound = errors.New("milestone not found")
)

type MilestoneRepository interface {
	Create(milestone *model.Milestone) error
	ByGoal(goalID int64) ([]*model.Milestone, error)
	ByIDForUser(userID, milestoneID int64) (*model.Milestone, error)
	Update(milestone *model.Milestone) (goalArchived bool, err error)
	DeleteForUser(userID, milestoneID int64) error
}

type milestoneRepository struct {
	db *sqlx.DB
}

func NewMilestoneRepository(db *sqlx.DB) MilestoneRepository {
	return &milestoneRepository{db: db}
}

func (r *milestoneRepository) Create(milestone *model.Milestone) error {
	query := `INSERT INTO milestones (goal_id, title, completed, completed_at, created_at)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`

	return r.db.Get(&milestone.ID, query,
		milestone.GoalID,
		milestone.Title,
		milestone.Completed,
		milestone.CompletedAt,
		milestone.CreatedAt,
	)
}

// ByGoal returns the goal's milestones in creation order.
func (r *milestoneRepository) ByGoal(goalID int64) ([]*model.Milestone, error) {
	var milestones []*model.Milestone
	query := `SELECT * FROM milestones WHERE goal_id = $1 ORDER BY id ASC`

	err := r.db.Select(&milestones, query, goalID)
	if err != nil {
		return nil, err
	}

	return milestones, nil
}

// ByIDForUser loads a milestone only if its parent goal belongs to the user.
// A foreign milestone and a missing one are the same ErrMilestoneNotFound.
func (r *milestoneRepository) ByIDForUser(userID, milestoneID int64) (*model.Milestone, error) {
	milestone := &model.Milestone{}
	query := `SELECT m.* FROM milestones m
	          JOIN goals g ON g.id = m.goal_id
	          WHERE m.id = $1 AND g.user_id = $2`

	err := r.db.Get(milestone, query, milestoneID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrMilestoneNotFound
	}
	if err != nil {
		return nil, err
	}

	return milestone, nil
}

// Update writes the milestone and re-evaluates the parent goal's archive
// state in the same transaction: a goal with at least one milestone and no
// incomplete ones is archived, refreshing archived_at even if it already
// was. Returns whether the goal ended up archived by this call.
func (r *milestoneRepository) Update(milestone *model.Milestone) (bool, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	query := `UPDATE milestones SET title = $1, completed = $2, completed_at = $3 WHERE id = $4`
	result, err := tx.Exec(query,
		milestone.Title,
		milestone.Completed,
		milestone.CompletedAt,
		milestone.ID,
	)
	if err != nil {
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if rows == 0 {
		return false, ErrMilestoneNotFound
	}

	var total, incomplete int
	err = tx.Get(&total, `SELECT COUNT(*) FROM milestones WHERE goal_id = $1`, milestone.GoalID)
	if err != nil {
		return false, err
	}
	err = tx.Get(&incomplete, `SELECT COUNT(*) FROM milestones WHERE goal_id = $1 AND completed = FALSE`, milestone.GoalID)
	if err != nil {
		return false, err
	}

	archived := total > 0 && incomplete == 0
	if archived {
		now := time.Now()
		_, err = tx.Exec(`UPDATE goals SET archived = TRUE, archived_at = $1 WHERE id = $2`, now, milestone.GoalID)
		if err != nil {
			return false, err
		}
	}

	return archived, tx.Commit()
}

// DeleteForUser removes the milestone, enforcing ownership through the
// parent goal.
func (r *milestoneRepository) DeleteForUser(userID, milestoneID int64) error {
	query := `DELETE FROM milestones
	          WHERE id = $1 AND goal_id IN (SELECT id FROM goals WHERE user_id = $2)`

	result, err := r.db.Exec(query, milestoneID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrMilestoneNotFound
	}

	return nil
}
