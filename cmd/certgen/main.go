package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"go.uber.org/zap"

	gocert "github.com/VantageDataChat/GoCert"
)

func main() {
	configPath := flag.String("config", "certgen.yaml", "configuration file")
	requestsPath := flag.String("requests", "certificates.yaml", "certificate requests file")
	outDir := flag.String("out", "", "output directory (overrides output_dir)")
	flag.Parse()

	cfg, err := gocert.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	reqs, err := gocert.LoadRequests(*requestsPath)
	if err != nil {
		logger.Fatal("load requests", zap.Error(err))
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o750); err != nil {
		logger.Fatal("create output directory", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	gen, err := cfg.NewGenerator(logger)
	if err != nil {
		logger.Fatal("create generator", zap.Error(err))
	}
	results := gen.GenerateBatch(ctx, reqs, cfg.Workers)

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			continue
		}
		for _, a := range res.Artifacts.All() {
			path := filepath.Join(cfg.OutputDir, a.Name)
			if err := os.WriteFile(path, a.Data, 0o640); err != nil {
				logger.Error("write artifact", zap.String("path", path), zap.Error(err))
				failed++
				break
			}
		}
	}

	logger.Info("batch finished",
		zap.Int("certificates", len(results)),
		zap.Int("failed", failed),
		zap.String("output", cfg.OutputDir))
	if failed > 0 {
		logger.Sync()
		os.Exit(1)
	}
}
