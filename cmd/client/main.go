package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cbodonnell/blockfall/client/game"
	"github.com/cbodonnell/blockfall/pkg/config"
	"github.com/cbodonnell/blockfall/pkg/log"
	"github.com/cbodonnell/blockfall/pkg/repositories"
	"github.com/cbodonnell/blockfall/pkg/version"
	"github.com/cbodonnell/blockfall/pkg/workers"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file")
	logLevel := flag.String("log-level", "", "Log level, overrides the config file")
	debug := flag.Bool("debug", false, "Show the debug overlay")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.Logging.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, cfg.Logging.Format, parsedLogLevel)
	log.SetDefaultLogger(logger)
	defer log.Sync()
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting client version %s", version.Get())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repository, err := repositories.NewRepository(ctx, cfg.Storage)
	if err != nil {
		panic(fmt.Sprintf("Failed to create repository: %v", err))
	}
	defer repository.Close(ctx)

	saveHighScoreChannelSize := 4
	saveHighScoreChan := make(chan workers.SaveHighScoreRequest, saveHighScoreChannelSize)
	saveHighScoreWorker := workers.NewSaveHighScoreWorker(workers.NewSaveHighScoreWorkerOptions{
		Repository:        repository,
		SaveHighScoreChan: saveHighScoreChan,
	})
	go saveHighScoreWorker.Start(ctx)

	g, err := game.NewGame(game.NewGameOptions{
		Debug:             *debug,
		Config:            *cfg,
		Repository:        repository,
		SaveHighScoreChan: saveHighScoreChan,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	width, height := game.ScreenSize(*cfg)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Blockfall")
	if err := ebiten.RunGame(g); err != nil {
		log.Error("Game exited with error: %v", err)
	}
}
