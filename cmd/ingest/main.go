package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/tuberec/tuberec/internal/app"
	"github.com/tuberec/tuberec/internal/command"
	"github.com/tuberec/tuberec/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	topic := flag.String("topic", "", "catalog search topic to ingest videos for")
	maxResults := flag.Int("max", 5, "maximum number of candidate videos to fetch")
	flag.Parse()

	ctx := context.Background()

	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	if *topic == "" {
		fmt.Fprintln(os.Stderr, "usage: ingest -topic <topic> [-max <n>]")
		os.Exit(2)
	}

	if err := run(ctx, *topic, *maxResults); err != nil {
		logger.ErrorContext(ctx, "ingestion failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, topic string, maxResults int) error {
	deps, err := app.SetupDependencies(ctx)
	if err != nil {
		return fmt.Errorf("setting up dependencies: %w", err)
	}

	saved, err := deps.IngestCmd.Execute(ctx, command.IngestVideosRequest{
		Topic:      topic,
		MaxResults: maxResults,
	})
	if err != nil {
		return err
	}

	logger := domain.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "ingestion completed successfully", "topic", topic, "saved", saved)
	return nil
}
