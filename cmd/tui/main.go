package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cbodonnell/blockfall/client/terminal"
	"github.com/cbodonnell/blockfall/pkg/config"
	"github.com/cbodonnell/blockfall/pkg/game"
	"github.com/cbodonnell/blockfall/pkg/game/types"
	"github.com/cbodonnell/blockfall/pkg/geometry"
	"github.com/cbodonnell/blockfall/pkg/log"
	"github.com/cbodonnell/blockfall/pkg/repositories"
	"github.com/cbodonnell/blockfall/pkg/repositories/models"
	"github.com/cbodonnell/blockfall/pkg/tetromino"
	"github.com/cbodonnell/blockfall/pkg/version"
	"github.com/cbodonnell/blockfall/pkg/workers"
	"github.com/gdamore/tcell/v2"
)

const frameInterval = 16 * time.Millisecond

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file")
	logLevel := flag.String("log-level", "", "Log level, overrides the config file")
	logFile := flag.String("log-file", "blockfall-tui.log", "File to write logs to, the terminal is used for the game")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse log level: %v\n", err)
		os.Exit(1)
	}
	out, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()
	log.SetDefaultLogger(log.New(out, cfg.Logging.Format, parsedLogLevel))
	defer log.Sync()

	log.Info("Starting terminal client version %s", version.Get())
	if err := run(cfg); err != nil {
		log.Error("Terminal client exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repository, err := repositories.NewRepository(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create repository: %v", err)
	}
	defer repository.Close(ctx)

	saveHighScoreChan := make(chan workers.SaveHighScoreRequest, 4)
	saveHighScoreWorker := workers.NewSaveHighScoreWorker(workers.NewSaveHighScoreWorkerOptions{
		Repository:        repository,
		SaveHighScoreChan: saveHighScoreChan,
	})
	go saveHighScoreWorker.Start(ctx)

	generator, err := tetromino.NewGenerator(cfg.Game.Generator, cfg.Game.Seed, cfg.Game.Sequence)
	if err != nil {
		return fmt.Errorf("failed to create generator: %v", err)
	}
	g := game.NewGame(game.NewGameOptions{
		Dimensions:        geometry.NewDimensions(cfg.Game.Width, cfg.Game.Height),
		Generator:         generator,
		StartLevel:        cfg.Game.StartLevel,
		PlayerName:        cfg.Game.PlayerName,
		SaveHighScoreChan: saveHighScoreChan,
	})

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %v", err)
	}
	defer screen.Fini()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	loop := &terminalLoop{
		game:       g,
		renderer:   terminal.NewRenderer(screen),
		repository: repository,
	}
	return loop.run(ctx, eventChan)
}

type terminalLoop struct {
	game       *game.Game
	renderer   *terminal.Renderer
	repository repositories.Repository

	paused     bool
	highScores []*models.HighScore
	rank       int
}

func (l *terminalLoop) run(ctx context.Context, eventChan <-chan tcell.Event) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-eventChan:
			key, ok := ev.(*tcell.EventKey)
			if !ok {
				continue
			}
			action, in := terminal.KeyAction(key.Key(), key.Rune())
			switch action {
			case terminal.ActionQuit:
				return nil
			case terminal.ActionPause:
				l.paused = !l.paused
			case terminal.ActionInput:
				if in == types.InputStartGame {
					l.highScores = nil
					l.rank = 0
				}
				if !l.paused {
					l.game.HandleInput(in)
				}
			}
		case now := <-ticker.C:
			if !l.paused {
				l.game.Update(now.Sub(last))
			}
			last = now
			l.collectSaveResult(ctx)
			l.draw()
		}
	}
}

func (l *terminalLoop) collectSaveResult(ctx context.Context) {
	response, ok := l.game.SaveResult()
	if !ok {
		return
	}
	if response.Err != nil {
		log.Error("Failed to save high score: %v", response.Err)
	}
	l.rank = response.Rank
	entries, err := l.repository.LoadHighScores(ctx)
	if err != nil && !repositories.IsNotFound(err) {
		log.Error("Failed to load high scores: %v", err)
		return
	}
	l.highScores = entries
}

func (l *terminalLoop) draw() {
	var message string
	switch {
	case !l.game.Started():
		message = "ENTER TO START"
	case l.paused:
		message = "PAUSED"
	case l.game.IsOver():
		message = "GAME OVER - ENTER"
	}
	view := l.game.View()
	l.renderer.Draw(view, terminal.Stats{
		Score: l.game.Score(),
		Level: l.game.Level(),
		Lines: l.game.Lines(),
	}, message)
	if l.game.IsOver() && l.highScores != nil {
		l.renderer.DrawHighScores(view, l.highScores, l.rank)
	}
	l.renderer.Show()
}
