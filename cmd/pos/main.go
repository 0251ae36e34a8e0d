package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mvbarbosa/stockpos/config"
	"github.com/mvbarbosa/stockpos/internal/cli"
	itemRepoPkg "github.com/mvbarbosa/stockpos/internal/item/repository"
	ledgerUCPkg "github.com/mvbarbosa/stockpos/internal/ledger/usecase"
	"github.com/mvbarbosa/stockpos/internal/logger"
	saleRepoPkg "github.com/mvbarbosa/stockpos/internal/sale/repository"
	"github.com/mvbarbosa/stockpos/internal/stats"
	"github.com/mvbarbosa/stockpos/internal/store"
)

func main() {
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	appLogger, err := logger.New(&logger.Config{
		Development:       cfg.App.Env == "development",
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	})
	if err != nil {
		log.Fatalf("could not build logger: %v", err)
	}
	defer appLogger.Sync()

	st, err := store.Open(cfg.SQLite.Path, cfg.SQLite.BusyTimeout)
	if err != nil {
		appLogger.Fatal("could not open database", zap.String("path", cfg.SQLite.Path), zap.Error(err))
	}
	defer st.Close()
	appLogger.Debug("opened database", zap.String("path", cfg.SQLite.Path))

	itemRepo := itemRepoPkg.NewSQLiteRepository(st.DB())
	saleRepo := saleRepoPkg.NewSQLiteRepository(st.DB())
	aggregator := stats.NewAggregator(saleRepo)
	uc := ledgerUCPkg.NewLedgerUseCase(itemRepo, saleRepo, aggregator, appLogger)

	root := cli.NewRootCommand(&cli.App{
		Ledger: uc,
		Stats:  aggregator,
		Logger: appLogger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
