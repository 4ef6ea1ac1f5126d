package app

import (
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/mandatum/internal/common"
	"github.com/ternarybob/mandatum/internal/handlers"
	"github.com/ternarybob/mandatum/internal/interfaces"
	"github.com/ternarybob/mandatum/internal/services/llm"
	"github.com/ternarybob/mandatum/internal/services/orchestrator"
	"github.com/ternarybob/mandatum/internal/storage/badger"
)

// App holds all application components and dependencies
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	// Storage
	DB          *badger.BadgerDB
	ItemStorage interfaces.ItemStorage

	// Services
	LLMService   interfaces.LLMService
	Orchestrator interfaces.QueryOrchestrator

	// HTTP handlers
	APIHandler  *handlers.APIHandler
	AIHandler   *handlers.AIHandler
	ItemHandler *handlers.ItemHandler
}

// New initializes the application with all dependencies
func New(cfg *common.Config, logger arbor.ILogger) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	// Initialize database
	db, err := badger.NewBadgerDB(logger, &cfg.Storage.Badger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	app.DB = db
	app.ItemStorage = badger.NewItemStorage(db, logger)

	// Initialize LLM service
	app.LLMService = llm.NewService(&cfg.Gemini, &cfg.Claude, &cfg.LLM, logger)

	// Initialize query orchestrator
	app.Orchestrator = orchestrator.NewService(app.LLMService, app.ItemStorage, logger)

	// Initialize HTTP handlers
	app.APIHandler = handlers.NewAPIHandler(logger)
	app.AIHandler = handlers.NewAIHandler(app.Orchestrator, app.LLMService, logger)
	app.ItemHandler = handlers.NewItemHandler(app.ItemStorage, logger)

	logger.Info().
		Str("provider", string(cfg.LLM.DefaultProvider)).
		Str("badger_path", cfg.Storage.Badger.Path).
		Msg("Application initialized")

	return app, nil
}

// Close releases application resources
func (a *App) Close() error {
	if a.LLMService != nil {
		if err := a.LLMService.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Failed to close LLM service")
		}
	}

	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	a.Logger.Info().Msg("Application closed")
	return nil
}
