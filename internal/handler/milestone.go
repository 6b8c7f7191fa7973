package handler

import (
	"net/http"

	"github.com/focusflow/focusflow/internal/ctxkeys"
	"github.com/focusflow/focusflow/internal/model"
	"github.com/focusflow/focusflow/internal/repository"
	"github.com/focusflow/focusflow/internal/service"
)

type MilestoneHandler struct {
	goalService *service.GoalService
}

func NewMilestoneHandler(goalService *service.GoalService) *MilestoneHandler {
	return &MilestoneHandler{goalService: goalService}
}

// List serves GET /goals/{id}/milestones
func (h *MilestoneHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	goalID := pathID(r, "id")
	if goalID == 0 {
		respondServiceError(w, repository.ErrGoalNotFound)
		return
	}

	milestones, err := h.goalService.Milestones(userID, goalID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	if milestones == nil {
		milestones = []*model.Milestone{}
	}
	respondJSON(w, http.StatusOK, milestones)
}

type createMilestoneRequest struct {
	Title string `json:"title"`
}

// Create serves POST /goals/{id}/milestones
func (h *MilestoneHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	goalID := pathID(r, "id")
	if goalID == 0 {
		respondServiceError(w, repository.ErrGoalNotFound)
		return
	}

	var req createMilestoneRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Title is required")
		return
	}

	milestone, err := h.goalService.CreateMilestone(userID, goalID, req.Title)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, milestone)
}

type updateMilestoneRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

// Update serves PUT /milestones/{id}. Completing the last open milestone of
// a goal archives the goal as a side effect.
func (h *MilestoneHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	milestoneID := pathID(r, "id")
	if milestoneID == 0 {
		respondServiceError(w, repository.ErrMilestoneNotFound)
		return
	}

	var req updateMilestoneRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	milestone, err := h.goalService.UpdateMilestone(userID, milestoneID, req.Title, req.Completed)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, milestone)
}

// Delete serves DELETE /milestones/{id}
func (h *MilestoneHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	milestoneID := pathID(r, "id")
	if milestoneID == 0 {
		respondServiceError(w, repository.ErrMilestoneNotFound)
		return
	}

	err := h.goalService.DeleteMilestone(userID, milestoneID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Milestone deleted successfully"})
}
