package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path"
	"syscall"

	"github.com/google/subcommands"

	"github.com/rovshanmuradov/coinfolio/internal/cli"
	"github.com/rovshanmuradov/coinfolio/internal/config"
	"github.com/rovshanmuradov/coinfolio/internal/export"
	"github.com/rovshanmuradov/coinfolio/internal/logger"
	"github.com/rovshanmuradov/coinfolio/internal/market"
	"github.com/rovshanmuradov/coinfolio/internal/portfolio"
	"github.com/rovshanmuradov/coinfolio/internal/storage"
)

var (
	configPath = flag.String("config", "configs/config.yaml", "Path to config file")
	debug      = flag.Bool("debug", false, "Enable debug logging")
	ephemeral  = flag.Bool("ephemeral", false, "Keep the portfolio in memory only")
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	// Commands read env when they run, after flags are parsed.
	env := &cli.Env{Out: os.Stdout, Err: os.Stderr}
	cli.Register(commander, env)

	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := setup(env); err != nil {
		fmt.Fprintf(os.Stderr, "coinfolio: %v\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}
	defer func() {
		_ = env.Logger.Sync()
	}()

	os.Exit(int(commander.Execute(ctx)))
}

func setup(env *cli.Env) error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	appLogger, err := logger.CreatePrettyLogger(cfg.DebugLogging || *debug)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	var kv storage.KV = storage.NewMemoryKV()
	if !*ephemeral {
		fileKV, err := storage.NewFileKV(cfg.DataDir)
		if err != nil {
			return fmt.Errorf("open data dir: %w", err)
		}
		kv = fileKV
	}

	client := market.NewClient(cfg, appLogger)
	env.Logger = appLogger
	env.Config = cfg
	env.Market = client
	env.Store = portfolio.NewStore(kv, appLogger)
	env.Quotes = portfolio.MarketQuotes{Coins: client}
	env.Exporter = export.NewExporter(appLogger)
	return nil
}
