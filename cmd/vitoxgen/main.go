package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"vitoxgen/internal/pkg/vitoxgen/config"
	"vitoxgen/internal/pkg/vitoxgen/corpus"
	"vitoxgen/internal/pkg/vitoxgen/dataset"
	"vitoxgen/internal/pkg/vitoxgen/generator"
	"vitoxgen/internal/pkg/vitoxgen/vocab"
)

var Version = "dev"

func main() {
	fmt.Fprintf(os.Stderr, "vitoxgen %s\n", Version)

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.LoadAndParse()
	if errors.Is(err, config.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse configuration")
	}

	if err := setupLogging(cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to setup logging")
	}

	log.Debug().
		Str("output", cfg.Output).
		Str("format", cfg.Format).
		Bool("compress", cfg.Compress).
		Int("count", cfg.Count).
		Int64("seed", cfg.Seed).
		Bool("digraphs", cfg.Digraphs).
		Msg("Configuration loaded")

	v, err := loadVocabulary(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load vocabulary")
	}
	log.Info().
		Int("toxic", v.Size(vocab.Toxic)).
		Int("clean", v.Size(vocab.Clean)).
		Msg("Vocabulary ready")

	gen, err := generator.New(v, cfg.GeneratorOptions())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create generator")
	}

	store, err := dataset.NewStore(cfg.Output, cfg.Format, cfg.Compress)
	if err != nil {
		log.Fatal().Err(err).Str("format", cfg.Format).Msg("Failed to open dataset")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Int("count", cfg.Count).Str("output", store.Path).Msg("Generating new samples...")

	stats, err := corpus.Run(ctx, corpus.Options{
		Store:         store,
		Count:         cfg.Count,
		ProgressEvery: cfg.ProgressEvery,
		BatchSize:     cfg.BatchSize,
		OnExisting:    logExisting(store.Path),
		Progress: func(n int) {
			log.Info().Int("generated", n).Msg("Generated samples")
		},
	}, gen)
	if err != nil {
		stop()
		log.Fatal().Err(err).Str("output", store.Path).Msg("Failed to write dataset")
	}

	ev := log.Debug()
	for name, n := range gen.StageCounts() {
		ev = ev.Int(name, n)
	}
	ev.Msg("Transform stages applied")

	log.Info().
		Str("run_id", stats.RunID.String()).
		Int("existing", stats.Existing).
		Int("generated", stats.Generated).
		Int("total", stats.Total).
		Dur("elapsed", stats.Elapsed).
		Str("output", store.Path).
		Msg("Dataset written")
}

func loadVocabulary(cfg *config.Config) (*vocab.Vocabulary, error) {
	v := vocab.Builtin()

	var files []*vocab.File
	if cfg.VocabFile != "" {
		f, err := vocab.LoadFile(cfg.VocabFile)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	if cfg.VocabGlob != "" {
		matched, err := vocab.LoadGlob(cfg.VocabGlob)
		if err != nil {
			return nil, err
		}
		if len(matched) == 0 {
			log.Warn().Str("glob", cfg.VocabGlob).Msg("Vocabulary glob matched no files")
		}
		files = append(files, matched...)
	}

	for _, f := range files {
		added := v.Merge(f)
		log.Debug().Str("file", f.Source).Bool("replace", f.Replace).Int("added", added).Msg("Vocabulary file merged")
	}

	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v, nil
}

func logExisting(path string) func(int, error) {
	return func(n int, err error) {
		switch {
		case err == nil:
			log.Info().Int("samples", n).Str("path", path).Msg("Loaded existing samples")
		case errors.Is(err, os.ErrNotExist):
			log.Info().Str("path", path).Msg("No existing dataset found, creating new")
		default:
			log.Warn().Err(err).Str("path", path).Msg("Existing dataset is unreadable, starting empty")
		}
	}
}

func setupLogging(cfg *config.Config) error {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
	}

	return nil
}
