// Package app wires configuration, services, storage and handlers into a
// runnable application.
package app

import (
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/responsa/internal/common"
	"github.com/ternarybob/responsa/internal/handlers"
	"github.com/ternarybob/responsa/internal/interfaces"
	"github.com/ternarybob/responsa/internal/services/classifier"
	"github.com/ternarybob/responsa/internal/services/collection"
	"github.com/ternarybob/responsa/internal/services/fetcher"
	"github.com/ternarybob/responsa/internal/services/knowledge"
	"github.com/ternarybob/responsa/internal/services/processor"
	"github.com/ternarybob/responsa/internal/services/retrieval"
	"github.com/ternarybob/responsa/internal/services/verification"
	"github.com/ternarybob/responsa/internal/services/webcache"
	"github.com/ternarybob/responsa/internal/storage/badger"
)

// App holds all initialized services and handlers
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	// Services
	KnowledgeService    interfaces.KnowledgeService
	FetcherService      interfaces.WebFetcher
	ProcessorService    interfaces.ContentProcessor
	CacheService        interfaces.RetrievalCache
	VerificationService interfaces.VerificationService
	ClassifierService   interfaces.ClassifierService
	RetrievalService    interfaces.RetrievalService
	CollectionService   interfaces.CollectionService
	Middleware          *retrieval.Middleware

	// Storage
	StorageManager interfaces.StorageManager

	// Handlers
	APIHandler       *handlers.APIHandler
	QueryHandler     *handlers.QueryHandler
	KnowledgeHandler *handlers.KnowledgeHandler
	DocumentHandler  *handlers.DocumentHandler
	StatusHandler    *handlers.StatusHandler
}

// New creates and wires the application from config
func New(cfg *common.Config, logger arbor.ILogger) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	storageManager, err := badger.NewManager(logger, &cfg.Storage.Badger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	app.StorageManager = storageManager

	knowledgeService, err := knowledge.NewService(cfg.Knowledge, logger)
	if err != nil {
		storageManager.Close()
		return nil, fmt.Errorf("failed to initialize knowledge base: %w", err)
	}
	app.KnowledgeService = knowledgeService

	fetcherService := fetcher.NewService(cfg.WebSearch, cfg.IsDevelopment(), logger)
	app.FetcherService = fetcherService

	processorService := processor.NewService(fetcherService, logger)
	app.ProcessorService = processorService

	app.CacheService = webcache.NewService(cfg.Retrieval.CacheTTL, logger)
	app.VerificationService = verification.NewService(logger)
	app.ClassifierService = classifier.NewService(logger)

	app.RetrievalService = retrieval.NewService(
		app.KnowledgeService,
		app.FetcherService,
		app.ProcessorService,
		app.CacheService,
		app.VerificationService,
		cfg.Retrieval.StaticLimit,
		logger,
	)

	app.Middleware = retrieval.NewMiddleware(
		app.ClassifierService,
		app.RetrievalService,
		app.KnowledgeService,
		cfg.Retrieval.StaticLimit,
		cfg.Retrieval.DefaultModel,
		logger,
	)

	app.CollectionService = collection.NewService(
		cfg.Collection,
		app.FetcherService,
		app.ProcessorService,
		processorService,
		storageManager.DocumentStorage(),
		logger,
	)

	app.APIHandler = handlers.NewAPIHandler()
	app.QueryHandler = handlers.NewQueryHandler(app.Middleware, logger)
	app.KnowledgeHandler = handlers.NewKnowledgeHandler(app.KnowledgeService, logger)
	app.DocumentHandler = handlers.NewDocumentHandler(storageManager.DocumentStorage(), logger)
	app.StatusHandler = handlers.NewStatusHandler(
		app.CollectionService,
		app.CacheService,
		app.KnowledgeService,
		app.FetcherService,
		storageManager.DocumentStorage(),
		logger,
	)

	logger.Info().
		Str("fetch_mode", string(fetcherService.Mode())).
		Int("knowledge_entries", len(knowledgeService.AllEntries())).
		Msg("Application initialized")

	return app, nil
}

// Start begins background services
func (a *App) Start() error {
	if err := a.CollectionService.Start(); err != nil {
		return fmt.Errorf("failed to start collection service: %w", err)
	}
	return nil
}

// Close releases application resources
func (a *App) Close() error {
	a.CollectionService.Stop()

	if a.StorageManager != nil {
		if err := a.StorageManager.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Failed to close storage")
			return err
		}
	}
	return nil
}
