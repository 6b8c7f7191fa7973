package model

import (
	"time"
)

type Goal struct {
	ID          int64      `db:"id" json:"id"`
	UserID      int64      `db:"user_id" json:"user_id"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	Category    string     `db:"category" json:"category"`
	Archived    bool       `db:"archived" json:"archived"`
	ArchivedAt  *time.Time `db:"archived_at" json:"archived_at"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`

	// Loaded alongside the goal, not a column
	Milestones []*Milestone `db:"-" json:"milestones"`
}
