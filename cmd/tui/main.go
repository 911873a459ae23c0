package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/coinfolio/internal/config"
	"github.com/rovshanmuradov/coinfolio/internal/export"
	"github.com/rovshanmuradov/coinfolio/internal/logger"
	"github.com/rovshanmuradov/coinfolio/internal/market"
	"github.com/rovshanmuradov/coinfolio/internal/portfolio"
	"github.com/rovshanmuradov/coinfolio/internal/storage"
	"github.com/rovshanmuradov/coinfolio/internal/ui"
)

const logBufferSize = 1000

func main() {
	configPath := flag.String("config", "configs/config.yaml", "Path to config file")
	route := flag.String("route", "/", "Route to open first, e.g. /home or /coin/bitcoin")
	ephemeral := flag.Bool("ephemeral", false, "Keep the portfolio in memory only")
	flag.Parse()

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logs := logger.NewLogBuffer(logBufferSize)
	appLogger, err := logger.CreateTUILogger(cfg.DebugLogging, logs, logger.DefaultFileConfig(cfg.LogFile))
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() {
		_ = appLogger.Sync()
	}()

	app, err := newAppContext(rootCtx, cfg, logs, appLogger, *ephemeral)
	if err != nil {
		appLogger.Error("Failed to initialise", zap.Error(err))
		fmt.Fprintf(os.Stderr, "coinfolio: %v\n", err)
		os.Exit(1)
	}

	start := ui.ParseLocation(*route)
	appLogger.Info("Starting CryptoLite TUI", zap.String("route", start.String()))

	handler := ui.NewRecoveryHandler(appLogger, func() (tea.Model, []tea.ProgramOption) {
		model := ui.NewSafeUIWrapper(NewAppModel(app, start), appLogger)
		return model, []tea.ProgramOption{
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
			tea.WithContext(rootCtx),
		}
	})

	go func() {
		<-rootCtx.Done()
		handler.Stop()
	}()

	if err := handler.RunWithRecovery(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		appLogger.Error("TUI application failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "coinfolio: %v\n", err)
		os.Exit(1)
	}
	appLogger.Info("Shutting down TUI application")
}

// newAppContext wires the services the screens share.
func newAppContext(ctx context.Context, cfg *config.Config, logs *logger.LogBuffer, appLogger *zap.Logger, ephemeral bool) (*ui.AppContext, error) {
	var kv storage.KV = storage.NewMemoryKV()
	if !ephemeral {
		fileKV, err := storage.NewFileKV(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("open data dir: %w", err)
		}
		kv = fileKV
	}

	client := market.NewClient(cfg, appLogger)
	store := portfolio.NewStore(kv, appLogger)
	store.Load()

	return &ui.AppContext{
		Ctx:       ctx,
		Theme:     ui.NewTheme(cfg.DarkMode),
		Keys:      ui.DefaultKeyMap(),
		Market:    client,
		Portfolio: store,
		Quotes:    portfolio.MarketQuotes{Coins: client},
		Exporter:  export.NewExporter(appLogger),
		Logs:      logs,
		Logger:    appLogger,
		Config:    cfg,
	}, nil
}
