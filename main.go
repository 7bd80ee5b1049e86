package main

import (
	"context"

	"github.com/LexiconIndonesia/mdpsc-crawler/common/config"
	"github.com/LexiconIndonesia/mdpsc-crawler/common/logger"
	"github.com/LexiconIndonesia/mdpsc-crawler/crawlers/mdpsc"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// INITIATE CONFIGURATION
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("Error loading .env file, using environment variables")
	}

	cfg := config.DefaultConfig()
	cfg.LoadFromEnv()

	// INITIATE RUN LOGGER
	runID := uuid.NewString()
	runLog, logFile, err := logger.New(cfg.Output.LogPath, runID)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.Output.LogPath).Msg("Failed to open log file")
		return
	}
	defer logFile.Close()

	ctx := context.Background()

	crawler, err := mdpsc.NewCrawler(cfg, runLog)
	if err != nil {
		runLog.Error().Err(err).Msg("Failed to create the crawler")
		return
	}

	if err := crawler.Setup(ctx); err != nil {
		runLog.Error().Err(err).Msg("Setup failed")
		return
	}
	defer func() {
		if err := crawler.Teardown(ctx); err != nil {
			runLog.Error().Err(err).Msg("Teardown failed")
		}
	}()

	// Failures below case level are already logged where they happen; the
	// process ends normally either way and diagnostics live in the log file.
	if err := crawler.CrawlAll(ctx); err != nil {
		runLog.Error().Err(err).Msg("Crawl aborted")
	}
}
