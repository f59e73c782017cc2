package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/shahid1330/careerPilot-AI/internal/config"
	"github.com/shahid1330/careerPilot-AI/internal/platform/groq"
	"github.com/shahid1330/careerPilot-AI/internal/platform/logger"
	"github.com/shahid1330/careerPilot-AI/internal/platform/postgres"
	"github.com/shahid1330/careerPilot-AI/internal/service"
	"github.com/shahid1330/careerPilot-AI/internal/service/auth"
	"github.com/shahid1330/careerPilot-AI/internal/store"
)

// application holds the server's wired dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore      store.UserStore
	jwtService     auth.JWTService
	passwordHasher *auth.BcryptHasher

	generationService *service.GenerationService
}

// initializeApp loads configuration and wires all application components:
// logging, database, migrations, stores, the completion client, and services.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName)

	db, err := setupDatabase(cfg, log)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, log); err != nil {
		return nil, err
	}

	userStore := postgres.NewPostgresUserStore(db, log)
	roleStore := postgres.NewPostgresCareerRoleStore(db, log)
	roadmapStore := postgres.NewPostgresRoadmapStore(db, log)
	planStore := postgres.NewPostgresDailyPlanStore(db, log)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	completionClient, err := groq.NewClient(log, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create completion client: %w", err)
	}

	generationService, err := service.NewGenerationService(
		db,
		roleStore,
		roadmapStore,
		planStore,
		completionClient,
		log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation service: %w", err)
	}

	return &application{
		config:            cfg,
		logger:            log,
		db:                db,
		userStore:         userStore,
		jwtService:        jwtService,
		passwordHasher:    auth.NewBcryptHasher(0),
		generationService: generationService,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
