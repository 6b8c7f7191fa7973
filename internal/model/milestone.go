package model

import (
	"time"
)

type Milestone struct {
	ID          int64      `db:"id" json:"id"`
	GoalID      int64      `db:"goal_id" json:"goal_id"`
	Title       string     `db:"title" json:"title"`
	Completed   bool       `db:"completed" json:"completed"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}
