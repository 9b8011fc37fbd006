// Package app wires configuration, storage, clients, and services into a
// single application core shared by cmd/journal-server and the tests.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bobmcallan/tradejournal/internal/clients/gemini"
	"github.com/bobmcallan/tradejournal/internal/common"
	"github.com/bobmcallan/tradejournal/internal/interfaces"
	"github.com/bobmcallan/tradejournal/internal/services/ingest"
	"github.com/bobmcallan/tradejournal/internal/services/report"
	"github.com/bobmcallan/tradejournal/internal/services/review"
	"github.com/bobmcallan/tradejournal/internal/storage"
)

// App holds all initialized services, clients, and storage.
type App struct {
	Config        *common.Config
	Logger        *common.Logger
	Storage       *storage.Manager
	AIClient      interfaces.AIClient
	Ingestor      *ingest.Ingestor
	ReviewService interfaces.ReviewService
	ReportService interfaces.ReportService
	StartupTime   time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes configuration, logging, storage, clients, and services.
// configPath may be empty, in which case the default resolution logic is used.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	binDir := getBinaryDir()

	// Load configuration - check provided path, JOURNAL_CONFIG, then binary
	// dir, then fallback for development.
	if configPath == "" {
		configPath = os.Getenv("JOURNAL_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "journal.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/journal.toml"
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Resolve relative storage path to binary directory
	if config.Storage.Path != "" && !filepath.IsAbs(config.Storage.Path) {
		config.Storage.Path = filepath.Join(binDir, config.Storage.Path)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	storageManager, err := storage.NewManager(logger, config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// The Gemini client is optional: without a key the journal works fully
	// except for AI trade review.
	var aiClient interfaces.AIClient
	if config.Clients.Gemini.APIKey != "" {
		geminiClient, err := gemini.NewClient(context.Background(), config.Clients.Gemini.APIKey,
			gemini.WithLogger(logger),
			gemini.WithModel(config.Clients.Gemini.Model),
			gemini.WithRateLimit(config.Clients.Gemini.RateLimit),
		)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize Gemini client - AI review will be unavailable")
		} else {
			aiClient = geminiClient
		}
	} else {
		logger.Warn().Msg("Gemini API key not configured - AI review will be unavailable")
	}

	var reviewService interfaces.ReviewService
	if aiClient != nil {
		reviewService = review.NewService(aiClient, logger)
	}

	a := &App{
		Config:        config,
		Logger:        logger,
		Storage:       storageManager,
		AIClient:      aiClient,
		Ingestor:      ingest.NewIngestor(logger),
		ReviewService: reviewService,
		ReportService: report.NewService(logger),
		StartupTime:   startupStart,
	}

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return a, nil
}

// Close releases storage resources.
func (a *App) Close() {
	if a.Storage != nil {
		if err := a.Storage.Close(); err != nil {
			a.Logger.Error().Err(err).Msg("Failed to close storage")
		}
	}
}
