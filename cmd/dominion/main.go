package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dominionfree/dominion-server-go/internal/cli"
	"github.com/dominionfree/dominion-server-go/internal/config"
	"github.com/dominionfree/dominion-server-go/internal/game"
	"github.com/dominionfree/dominion-server-go/internal/repository"
)

var (
	configPath = flag.String("config", "", "path to configuration file")
	loadSave   = flag.String("load", "", "name of a saved game to resume (requires database)")
	version    = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting dominion",
		zap.String("version", version),
		zap.Int("players", len(cfg.Game.Players)),
	)

	ctx := context.Background()

	var saves *repository.SaveRepository
	if cfg.Database.Enabled {
		db, dbErr := repository.NewDB(ctx, cfg.Database, logger)
		if dbErr != nil {
			logger.Fatal("failed to connect to database", zap.Error(dbErr))
		}
		defer db.Close()
		saves = repository.NewSaveRepository(db)
		if schemaErr := saves.EnsureSchema(ctx); schemaErr != nil {
			logger.Fatal("failed to prepare save schema", zap.Error(schemaErr))
		}
	}

	engine := game.NewEngine(logger)

	var g *game.Game
	if *loadSave != "" {
		if saves == nil {
			logger.Fatal("cannot load a save without a configured database")
		}
		snap, loadErr := saves.Load(ctx, *loadSave)
		if loadErr != nil {
			logger.Fatal("failed to load save", zap.String("save", *loadSave), zap.Error(loadErr))
		}
		g, err = game.RestoreGame(snap, cfg.Game.Seed)
		if err != nil {
			logger.Fatal("failed to restore game", zap.Error(err))
		}
		logger.Info("resumed saved game", zap.String("save", *loadSave), zap.Int("turn", snap.Turn))
	} else {
		g, err = engine.NewGame(game.Options{
			PlayerNames: cfg.Game.Players,
			Kingdom:     cfg.Game.Kingdom,
			Seed:        cfg.Game.Seed,
		})
		if err != nil {
			logger.Fatal("failed to create game", zap.Error(err))
		}
	}

	eventLog := cli.NewEventLog(logger)
	eventLog.Attach(g.Events)

	session := cli.NewSession(engine, g, saves, os.Stdin, os.Stdout, logger)
	scores := session.Run(ctx)

	fmt.Println("\n=== Final scores ===")
	for _, s := range scores {
		fmt.Printf("%d. %s: %d points\n", s.Rank, s.Player, s.Points)
	}
	if purchases := eventLog.Purchases(); len(purchases) > 0 {
		fmt.Println("\nCards bought:")
		for _, p := range purchases {
			fmt.Printf("  %-15s %d\n", p.Card, p.Count)
		}
	}
}

// initLogger builds the zap logger from the logging configuration.
func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
