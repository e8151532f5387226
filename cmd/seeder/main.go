package main

import (
	"context"
	"flag"
	"os"
	"time"

	"go-paygap/internal/config"
	"go-paygap/internal/paygap"
	"go-paygap/internal/shared/connection"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON config file")
	csvPath := flag.String("csv", "", "Glassdoor-format CSV to load into pay_gap")
	batchSize := flag.Int("batch", 500, "rows per INSERT")
	migrate := flag.Bool("migrate", true, "create the pay_gap table when missing")
	flag.Parse()

	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if *csvPath == "" {
		logger.Fatal("missing -csv")
	}

	cfg, err := config.Load(config.FileIfExists(*configPath))
	if err != nil {
		logger.Fatal("load config failed", zap.Error(err))
	}

	db, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		logger.Fatal("connect failed", zap.Error(err))
	}
	repo := paygap.NewRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if *migrate {
		if err := repo.Migrate(ctx); err != nil {
			logger.Fatal("migrate failed", zap.Error(err))
		}
	}

	f, err := os.Open(*csvPath)
	if err != nil {
		logger.Fatal("open csv failed", zap.Error(err))
	}
	defer f.Close()

	records, err := paygap.ParseCSV(f)
	if err != nil {
		logger.Fatal("parse csv failed", zap.String("file", *csvPath), zap.Error(err))
	}

	if err := repo.CreateBatch(ctx, records, *batchSize); err != nil {
		logger.Fatal("insert failed", zap.Error(err))
	}
	logger.Info("pay_gap seeded", zap.Int("records", len(records)), zap.String("file", *csvPath))
}
