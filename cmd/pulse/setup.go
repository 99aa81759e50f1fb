package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/newspulse/pulse/internal/config"
	"github.com/newspulse/pulse/internal/providers/fetcher"
	"github.com/newspulse/pulse/internal/providers/llm"
	"github.com/newspulse/pulse/internal/providers/news"
	"github.com/newspulse/pulse/internal/service/answer"
	"github.com/newspulse/pulse/internal/service/chat"
	"github.com/newspulse/pulse/internal/storage/sqlite"
	"github.com/newspulse/pulse/internal/transport/httpapi"
	"github.com/newspulse/pulse/pkg/log"
	"github.com/newspulse/pulse/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	gnewsCfg := config.NewGNewsConfig(ctx)

	// 2. Storage
	db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	services = append(services, srv.NewCleanup(db.Close))

	// 3. Completion provider
	completer, err := llm.NewProvider(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize llm provider")
	}

	// 4. Answer pipeline
	synthesizer := answer.NewSynthesizer(completer, fetcher.New())
	orchestrator := chat.NewOrchestrator(synthesizer, sqlite.NewConversationsRepo(db))

	// 5. HTTP API
	server := httpapi.NewServer(ctx, appCfg, httpapi.Deps{
		Users:        sqlite.NewUsersRepo(db),
		Prefs:        sqlite.NewPreferencesRepo(db),
		Bookmarks:    sqlite.NewBookmarksRepo(db),
		Searches:     sqlite.NewSearchesRepo(db),
		News:         news.NewClient(gnewsCfg),
		Orchestrator: orchestrator,
		Enricher:     synthesizer,
	})
	services = append(services, server)

	return services
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
