package app

import (
	"fmt"

	"github.com/focusflow/focusflow/internal/config"
	"github.com/focusflow/focusflow/internal/db"
	"github.com/focusflow/focusflow/internal/repository"
	"github.com/focusflow/focusflow/internal/service"
	"github.com/jmoiron/sqlx"
)

type App struct {
	Cfg         *config.Config
	DB          *sqlx.DB
	AuthService *service.AuthService
	GoalService *service.GoalService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	goalRepository := repository.NewGoalRepository(database)
	milestoneRepository := repository.NewMilestoneRepository(database)

	// Token scheme selection; the lifecycle service contract is the same
	// either way
	var tokens service.TokenScheme
	if cfg.AuthScheme == config.AuthSchemeJWT {
		tokens = service.NewJWTTokenScheme(cfg.JWTSecret, cfg.JWTExpiry)
	} else {
		tokens = service.NewPlainTokenScheme()
	}

	// Services
	authService := service.NewAuthService(userRepository, tokens)
	goalService := service.NewGoalService(goalRepository, milestoneRepository)

	return &App{
		Cfg:         cfg,
		DB:          database,
		AuthService: authService,
		GoalService: goalService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
