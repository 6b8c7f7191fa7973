package handler

import (
	"net/http"

	"github.com/focusflow/focusflow/internal/ctxkeys"
	"github.com/focusflow/focusflow/internal/model"
	"github.com/focusflow/focusflow/internal/repository"
	"github.com/focusflow/focusflow/internal/service"
)

type GoalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	includeArchived := r.URL.Query().Get("include_archived") == "true"

	goals, err := h.goalService.Goals(userID, includeArchived)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	if goals == nil {
		goals = []*model.Goal{}
	}
	respondJSON(w, http.StatusOK, goals)
}

func (h *GoalHandler) ListArchived(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	goals, err := h.goalService.ArchivedGoals(userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	if goals == nil {
		goals = []*model.Goal{}
	}
	respondJSON(w, http.StatusOK, goals)
}

func (h *GoalHandler) Categories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, model.GoalCategories)
}

type createGoalRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	var req createGoalRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Title is required")
		return
	}

	goal, err := h.goalService.Create(userID, req.Title, req.Description, req.Category)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, goal)
}

func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	goalID := pathID(r, "id")
	if goalID == 0 {
		respondServiceError(w, repository.ErrGoalNotFound)
		return
	}

	goal, err := h.goalService.ByID(userID, goalID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, goal)
}

type updateGoalRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
}

func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	goalID := pathID(r, "id")
	if goalID == 0 {
		respondServiceError(w, repository.ErrGoalNotFound)
		return
	}

	var req updateGoalRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	goal, err := h.goalService.Update(userID, goalID, req.Title, req.Description, req.Category)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, goal)
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	goalID := pathID(r, "id")
	if goalID == 0 {
		respondServiceError(w, repository.ErrGoalNotFound)
		return
	}

	err := h.goalService.Delete(userID, goalID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Goal deleted successfully"})
}

func (h *GoalHandler) Archive(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	goalID := pathID(r, "id")
	if goalID == 0 {
		respondServiceError(w, repository.ErrGoalNotFound)
		return
	}

	err := h.goalService.Archive(userID, goalID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Goal archived successfully"})
}

func (h *GoalHandler) Unarchive(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	goalID := pathID(r, "id")
	if goalID == 0 {
		respondServiceError(w, repository.ErrGoalNotFound)
		return
	}

	err := h.goalService.Unarchive(userID, goalID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Goal unarchived successfully"})
}
