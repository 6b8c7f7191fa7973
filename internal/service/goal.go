package service

import (
	"log/slog"
	"time"

	"github.com/focusflow/focusflow/internal/model"
	"github.com/focusflow/focusflow/internal/repository"
	"github.com/focusflow/focusflow/internal/validation"
)

// GoalService implements the goal/milestone lifecycle. Every operation takes
// the authenticated user id and enforces ownership: a missing resource and a
// foreign one are the same not-found error.
type GoalService struct {
	repo          repository.GoalRepository
	milestoneRepo repository.MilestoneRepository
}

func NewGoalService(repo repository.GoalRepository, milestoneRepo repository.MilestoneRepository) *GoalService {
	return &GoalService{
		repo:          repo,
		milestoneRepo: milestoneRepo,
	}
}

func (s *GoalService) Create(userID int64, title, description, category string) (*model.Goal, error) {
	err := validation.ValidateTitle(title)
	if err != nil {
		return nil, validationError(err)
	}

	if category == "" {
		category = model.CategoryDefault
	}

	now := time.Now()
	goal := &model.Goal{
		UserID:      userID,
		Title:       title,
		Description: description,
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
		Milestones:  []*model.Milestone{},
	}

	err = s.repo.Create(goal)
	if err != nil {
		return nil, err
	}

	return goal, nil
}

func (s *GoalService) ByID(userID, goalID int64) (*model.Goal, error) {
	goal, err := s.repo.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	err = s.attachMilestones(goal)
	if err != nil {
		return nil, err
	}

	return goal, nil
}

// Goals returns the user's goals with milestones inline, in insertion order.
// Archived goals are excluded unless includeArchived is set.
func (s *GoalService) Goals(userID int64, includeArchived bool) ([]*model.Goal, error) {
	goals, err := s.repo.Goals(userID, includeArchived)
	if err != nil {
		return nil, err
	}

	for _, goal := range goals {
		err = s.attachMilestones(goal)
		if err != nil {
			return nil, err
		}
	}

	return goals, nil
}

func (s *GoalService) ArchivedGoals(userID int64) ([]*model.Goal, error) {
	goals, err := s.repo.Archived(userID)
	if err != nil {
		return nil, err
	}

	for _, goal := range goals {
		err = s.attachMilestones(goal)
		if err != nil {
			return nil, err
		}
	}

	return goals, nil
}

// Update applies only the supplied fields and refreshes updated_at, even
// when no field is supplied.
func (s *GoalService) Update(userID, goalID int64, title, description, category *string) (*model.Goal, error) {
	goal, err := s.repo.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	if title != nil {
		err = validation.ValidateTitle(*title)
		if err != nil {
			return nil, validationError(err)
		}
		goal.Title = *title
	}
	if description != nil {
		goal.Description = *description
	}
	if category != nil {
		goal.Category = *category
	}

	goal.UpdatedAt = time.Now()

	err = s.repo.Update(goal)
	if err != nil {
		return nil, err
	}

	err = s.attachMilestones(goal)
	if err != nil {
		return nil, err
	}

	return goal, nil
}

func (s *GoalService) Delete(userID, goalID int64) error {
	return s.repo.Delete(userID, goalID)
}

// Archive marks the goal archived. Archiving an already-archived goal
// refreshes archived_at.
func (s *GoalService) Archive(userID, goalID int64) error {
	now := time.Now()
	return s.repo.SetArchived(userID, goalID, &now)
}

func (s *GoalService) Unarchive(userID, goalID int64) error {
	return s.repo.SetArchived(userID, goalID, nil)
}

func (s *GoalService) Milestones(userID, goalID int64) ([]*model.Milestone, error) {
	// Verify ownership
	_, err := s.repo.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	return s.milestoneRepo.ByGoal(goalID)
}

func (s *GoalService) CreateMilestone(userID, goalID int64, title string) (*model.Milestone, error) {
	// Verify ownership
	_, err := s.repo.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	err = validation.ValidateTitle(title)
	if err != nil {
		return nil, validationError(err)
	}

	milestone := &model.Milestone{
		GoalID:    goalID,
		Title:     title,
		CreatedAt: time.Now(),
	}

	err = s.milestoneRepo.Create(milestone)
	if err != nil {
		return nil, err
	}

	return milestone, nil
}

// UpdateMilestone applies the supplied fields, stamping completed_at when
// the completed flag flips on and clearing it when it flips off. After the
// update, if the parent goal has at least one milestone and all of them are
// completed, the goal is archived as part of the same transaction.
func (s *GoalService) UpdateMilestone(userID, milestoneID int64, title *string, completed *bool) (*model.Milestone, error) {
	milestone, err := s.milestoneRepo.ByIDForUser(userID, milestoneID)
	if err != nil {
		return nil, err
	}

	if title != nil {
		err = validation.ValidateTitle(*title)
		if err != nil {
			return nil, validationError(err)
		}
		milestone.Title = *title
	}
	if completed != nil && *completed != milestone.Completed {
		milestone.Completed = *completed
		if *completed {
			now := time.Now()
			milestone.CompletedAt = &now
		} else {
			milestone.CompletedAt = nil
		}
	}

	goalArchived, err := s.milestoneRepo.Update(milestone)
	if err != nil {
		return nil, err
	}

	if goalArchived {
		slog.Info("goal auto-archived, all milestones completed",
			"goal_id", milestone.GoalID, "user_id", userID)
	}

	return milestone, nil
}

func (s *GoalService) DeleteMilestone(userID, milestoneID int64) error {
	return s.milestoneRepo.DeleteForUser(userID, milestoneID)
}

func (s *GoalService) attachMilestones(goal *model.Goal) error {
	milestones, err := s.milestoneRepo.ByGoal(goal.ID)
	if err != nil {
		return err
	}

	if milestones == nil {
		milestones = []*model.Milestone{}
	}
	goal.Milestones = milestones

	return nil
}
