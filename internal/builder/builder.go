package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ouvrio/intake-backend/internal/api"
	dialogueapi "github.com/ouvrio/intake-backend/internal/api/dialogue"
	requestapi "github.com/ouvrio/intake-backend/internal/api/request"
	"github.com/ouvrio/intake-backend/internal/catalog"
	"github.com/ouvrio/intake-backend/internal/config"
	"github.com/ouvrio/intake-backend/internal/integration/classifier"
	"github.com/ouvrio/intake-backend/internal/integration/generation"
	"github.com/ouvrio/intake-backend/internal/pkg/formatter"
	"github.com/ouvrio/intake-backend/internal/repository"
	"github.com/ouvrio/intake-backend/internal/usecase/dialogue"
	"github.com/ouvrio/intake-backend/internal/usecase/request"
	"go.uber.org/zap"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Setup database connection
	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}

	// Run database migrations
	logger.Info("Running database migrations")
	if err := repository.RunMigrations(cfg.DatabaseURL); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Load the field catalog
	fieldCatalog, err := catalog.Load(cfg.CatalogPath, logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("load field catalog: %w", err)
	}
	logger.Info("Field catalog loaded", zap.Strings("categories", fieldCatalog.Categories()))

	// Initialize repositories
	projectRequestRepo := repository.NewProjectRequestPostgres(db)
	draftStore := repository.NewDraftCache(cfg.DialogueCfg.DraftTTL, cfg.DialogueCfg.CleanupInterval)
	logger.Info("Repositories initialized")

	// Initialize external service connectors (with mock support)
	var classifierConnector dialogue.IntentClassifier
	var generatorConnector dialogue.TextGenerator

	if cfg.EnableMocks {
		logger.Info("Using mock connectors for external services")
		classifierConnector = classifier.NewMockConnector(logger)
		generatorConnector = generation.NewMockConnector(logger)
	} else {
		logger.Info("Using real connectors for external services")
		classifierConnector = classifier.NewConnector(cfg.ClassifierConnectorCfg, logger)
		generatorConnector = generation.NewConnector(cfg.GeneratorConnectorCfg, logger)
	}

	// Initialize use cases
	dialogueUC := dialogue.NewUsecase(
		fieldCatalog,
		draftStore,
		projectRequestRepo,
		classifierConnector,
		generatorConnector,
		cfg.DialogueCfg,
		logger,
	)

	requestUC := request.NewUsecase(
		projectRequestRepo,
		fieldCatalog,
		formatter.NewFactory(),
		logger,
	)
	logger.Info("Use cases initialized")

	// Setup API handlers
	dialogueHandler := dialogueapi.NewHandler(dialogueUC, requestUC)
	requestHandler := requestapi.NewHandler(requestUC)
	logger.Info("API handlers initialized")

	// Setup router
	router := api.SetupRouter(dialogueHandler, requestHandler, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		db:     db,
		logger: logger,
	}, nil
}
