package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/youruser/productimages/internal/batch"
	"github.com/youruser/productimages/internal/config"
	"github.com/youruser/productimages/internal/fetch"
	"github.com/youruser/productimages/internal/logger"
	"github.com/youruser/productimages/internal/products"
	"github.com/youruser/productimages/internal/report"
	"github.com/youruser/productimages/internal/upc"
	"github.com/youruser/productimages/internal/util"
)

func main() {
	config.LoadEnvFiles()
	log := logger.New(logger.FromEnv("fetch-images"))

	cfg, err := config.LoadFetch()
	if err != nil {
		log.Fatal().Err(err).Msg("startup")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	run(ctx, cfg, log)
}

func run(ctx context.Context, cfg config.Fetch, log zerolog.Logger) {
	if err := util.EnsureDir(cfg.ImageDir); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.ImageDir).Msg("creating image directory")
	}
	timestamp := report.Timestamp(time.Now())

	rows, err := products.Load(cfg.InputPath)
	if errors.Is(err, products.ErrInputNotFound) {
		log.Error().Str("file", cfg.InputPath).Msg("input spreadsheet not found; make sure it exists in the current directory")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("reading input spreadsheet")
		return
	}

	client := upc.NewClient(upc.Options{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.HTTPTimeout,
	})
	fetcher := fetch.New(client, &http.Client{Timeout: cfg.HTTPTimeout}, cfg.ImageDir)
	summary := batch.NewRunner(fetcher, cfg.Delay, log).Run(ctx, rows)

	path, err := report.WriteFailures(cfg.ReportDir, timestamp, summary.Failures)
	switch {
	case err != nil:
		log.Error().Err(err).Msg("writing failed products report")
	case path == "":
		log.Info().Msg("no failed products to report")
	default:
		log.Info().Str("file", path).Msg("failed products report saved")
	}

	ev := log.Info()
	if summary.Interrupted {
		ev = log.Warn().Bool("interrupted", true)
	}
	ev.Str("run_id", summary.RunID).
		Int("total", summary.Total).
		Int("processed", summary.Processed).
		Int("succeeded", summary.Succeeded).
		Int("failed", len(summary.Failures)).
		Str("image_dir", cfg.ImageDir).
		Msg("download complete")
}
