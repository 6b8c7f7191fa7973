package routes

import (
	"net/http"

	"github.com/focusflow/focusflow/internal/app"
	"github.com/focusflow/focusflow/internal/handler"
	"github.com/focusflow/focusflow/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService)
	goal := handler.NewGoalHandler(app.GoalService)
	milestone := handler.NewMilestoneHandler(app.GoalService)
	health := handler.NewHealthHandler(app.DB)

	mux := http.NewServeMux()

	// Health
	mux.HandleFunc("GET /healthz", health.Health)

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth(app.Cfg.AuthRateLimit, app.Cfg.AuthRateWindow)
	mux.HandleFunc("POST /auth/register", rateLimiter(auth.Register))
	mux.HandleFunc("POST /auth/login", rateLimiter(auth.Login))

	// Goals
	mux.HandleFunc("GET /goals", middleware.RequireAuth(goal.List))
	mux.HandleFunc("POST /goals", middleware.RequireAuth(goal.Create))
	mux.HandleFunc("GET /goals/archived", middleware.RequireAuth(goal.ListArchived))
	mux.HandleFunc("GET /goals/categories", middleware.RequireAuth(goal.Categories))
	mux.HandleFunc("GET /goals/{id}", middleware.RequireAuth(goal.Get))
	mux.HandleFunc("PUT /goals/{id}", middleware.RequireAuth(goal.Update))
	mux.HandleFunc("DELETE /goals/{id}", middleware.RequireAuth(goal.Delete))
	mux.HandleFunc("POST /goals/{id}/archive", middleware.RequireAuth(goal.Archive))
	mux.HandleFunc("POST /goals/{id}/unarchive", middleware.RequireAuth(goal.Unarchive))

	// Milestones
	mux.HandleFunc("GET /goals/{id}/milestones", middleware.RequireAuth(milestone.List))
	mux.HandleFunc("POST /goals/{id}/milestones", middleware.RequireAuth(milestone.Create))
	mux.HandleFunc("PUT /milestones/{id}", middleware.RequireAuth(milestone.Update))
	mux.HandleFunc("DELETE /milestones/{id}", middleware.RequireAuth(milestone.Delete))

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.CORS(app.Cfg.CORSAllowOrigin),
		middleware.RequestID,
		middleware.RequestLogging,
		middleware.Auth(app.AuthService),
	)
}
