// Command gutentopics attributes public-domain ebooks to topics.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gutentopics/gutentopics/internal/adapters/driven/config/file"
	"github.com/gutentopics/gutentopics/internal/adapters/driven/encoding"
	"github.com/gutentopics/gutentopics/internal/adapters/driven/lexicon/english"
	"github.com/gutentopics/gutentopics/internal/adapters/driven/storage/sqlite"
	"github.com/gutentopics/gutentopics/internal/adapters/driven/topicmodel/remote"
	"github.com/gutentopics/gutentopics/internal/adapters/driving/cli"
	"github.com/gutentopics/gutentopics/internal/core/services"
	"github.com/gutentopics/gutentopics/internal/logger"
	"github.com/gutentopics/gutentopics/internal/metrics"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		logger.Warn("settings are invalid, run 'gutentopics settings show'", "err", err)
	}

	store, err := sqlite.NewStore(settings.Storage.DataDir)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer store.Close()

	if err := english.Setup(); err != nil {
		return err
	}
	normalizer := services.NewNormalizer(
		encoding.New(),
		english.New(),
		services.NormalizerOptionsFrom(settings.Encoding),
	)

	model := remote.New(remote.ConfigFrom(settings.TopicModel))
	attributor := services.NewTopicAttributor(model)

	corpusStore := store.CorpusIndexStore()
	recorder := metrics.NewRecorder(corpusStore)

	cli.SetServices(cli.Services{
		Analysis: services.NewAnalysisService(
			normalizer, attributor, corpusStore, store.AnalysisStore(), recorder,
		),
		Corpus:      services.NewCorpusService(corpusStore),
		Normalizer:  normalizer,
		Settings:    settingsService,
		Metrics:     recorder.Handler(),
		HealthCheck: model.Ping,
	})

	return cli.Execute(ctx)
}
