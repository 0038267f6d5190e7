package game

import (
	"context"
	"fmt"

	"github.com/cbodonnell/blockfall/client/input"
	"github.com/cbodonnell/blockfall/client/scenes"
	"github.com/cbodonnell/blockfall/pkg/config"
	"github.com/cbodonnell/blockfall/pkg/game"
	"github.com/cbodonnell/blockfall/pkg/geometry"
	"github.com/cbodonnell/blockfall/pkg/log"
	"github.com/cbodonnell/blockfall/pkg/repositories"
	"github.com/cbodonnell/blockfall/pkg/repositories/models"
	"github.com/cbodonnell/blockfall/pkg/tetromino"
	"github.com/cbodonnell/blockfall/pkg/version"
	"github.com/cbodonnell/blockfall/pkg/workers"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	// boardMargin surrounds the board on every side.
	boardMargin = 24
	// sidePanelWidth is reserved to the right of the board for the HUD.
	sidePanelWidth = 200
	// minScreenWidth fits the menu and the high score table.
	minScreenWidth  = 640
	minScreenHeight = 480
)

type GameMode int

const (
	GameModeMenu GameMode = iota
	GameModePlay
	GameModeOver
)

func (m GameMode) String() string {
	switch m {
	case GameModeMenu:
		return "Menu"
	case GameModePlay:
		return "Play"
	case GameModeOver:
		return "Over"
	}
	return "Unknown"
}

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// cfg holds the board and client settings.
	cfg config.Config
	// repository reads the high score table. It may be nil.
	repository repositories.Repository
	// saveHighScoreChan is handed to every run.
	saveHighScoreChan chan<- workers.SaveHighScoreRequest
	// game is the run in progress or the last finished one.
	game *game.Game
	// mode is the current game mode.
	mode GameMode
	// scene is the current scene.
	scene scenes.Scene
}

type NewGameOptions struct {
	Debug             bool
	Config            config.Config
	Repository        repositories.Repository
	SaveHighScoreChan chan<- workers.SaveHighScoreRequest
}

func NewGame(opts NewGameOptions) (*Game, error) {
	g := &Game{
		debug:             opts.Debug,
		cfg:               opts.Config,
		repository:        opts.Repository,
		saveHighScoreChan: opts.SaveHighScoreChan,
	}

	if err := g.loadMenu(); err != nil {
		return nil, fmt.Errorf("failed to load menu scene: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) loadMenu() error {
	menu, err := scenes.NewMenuScene(scenes.MenuSceneOptions{
		PlayerName: g.cfg.Game.PlayerName,
		StartLevel: g.cfg.Game.StartLevel,
		OnStart: func(playerName string, startLevel uint32) error {
			g.cfg.Game.PlayerName = playerName
			g.cfg.Game.StartLevel = startLevel
			return g.loadPlay()
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create menu scene: %v", err)
	}
	if err := g.SetScene(menu); err != nil {
		return fmt.Errorf("failed to set menu scene: %v", err)
	}
	g.mode = GameModeMenu
	return nil
}

func (g *Game) loadPlay() error {
	generator, err := tetromino.NewGenerator(g.cfg.Game.Generator, g.cfg.Game.Seed, g.cfg.Game.Sequence)
	if err != nil {
		return fmt.Errorf("failed to create generator: %v", err)
	}
	g.game = game.NewGame(game.NewGameOptions{
		Dimensions:        geometry.NewDimensions(g.cfg.Game.Width, g.cfg.Game.Height),
		Generator:         generator,
		StartLevel:        g.cfg.Game.StartLevel,
		PlayerName:        g.cfg.Game.PlayerName,
		SaveHighScoreChan: g.saveHighScoreChan,
	})
	g.game.Start()

	play, err := scenes.NewPlayScene(scenes.PlaySceneOptions{
		Game:     g.game,
		CellSize: g.cfg.Client.CellSize,
		BoardX:   boardMargin,
		BoardY:   boardMargin,
	})
	if err != nil {
		return fmt.Errorf("failed to create play scene: %v", err)
	}
	if err := g.SetScene(play); err != nil {
		return fmt.Errorf("failed to set play scene: %v", err)
	}
	g.mode = GameModePlay
	return nil
}

func (g *Game) loadGameOver() error {
	opts := scenes.GameOverSceneOptions{
		Score:  g.game.Score(),
		Level:  g.game.Level(),
		Lines:  g.game.Lines(),
		TableX: boardMargin * 4,
		TableY: minScreenHeight / 2,
	}
	if g.saveHighScoreChan != nil {
		opts.SaveResult = g.game.SaveResult
	}
	if g.repository != nil {
		opts.LoadHighScores = func(ctx context.Context) ([]*models.HighScore, error) {
			return g.repository.LoadHighScores(ctx)
		}
	}
	gameOver, err := scenes.NewGameOverScene(opts)
	if err != nil {
		return fmt.Errorf("failed to create game over scene: %v", err)
	}
	if err := g.SetScene(gameOver); err != nil {
		return fmt.Errorf("failed to set game over scene: %v", err)
	}
	g.mode = GameModeOver
	return nil
}

func (g *Game) Update() error {
	// Handle input
	if err := g.handleInput(); err != nil {
		return fmt.Errorf("failed to handle input: %v", err)
	}

	// Update the current scene
	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	if g.mode == GameModePlay && g.game.IsOver() {
		if err := g.loadGameOver(); err != nil {
			return fmt.Errorf("failed to load game over scene: %v", err)
		}
	}

	return nil
}

func (g *Game) handleInput() error {
	switch g.mode {
	case GameModeMenu:
		// the menu handles its own widgets
	case GameModePlay:
		if input.IsNegativeJustPressed() {
			log.Info("Run abandoned")
			if err := g.loadMenu(); err != nil {
				return fmt.Errorf("failed to load menu scene: %v", err)
			}
		}
	case GameModeOver:
		if input.IsPositiveJustPressed() {
			if err := g.loadMenu(); err != nil {
				return fmt.Errorf("failed to load menu scene: %v", err)
			}
		}
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Mode: %s", g.mode))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   Version: %s", version.Get()))

	if g.game == nil {
		return
	}
	p := g.game.Playfield()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n   State: %s", p.State()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n\n   Gravity: %d", p.GravityLevel()))
}

// Layout sizes the screen to the configured board plus the side panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return ScreenSize(g.cfg)
}

func ScreenSize(cfg config.Config) (int, int) {
	width := int(cfg.Game.Width)*cfg.Client.CellSize + 2*boardMargin + sidePanelWidth
	height := int(cfg.Game.Height)*cfg.Client.CellSize + 2*boardMargin
	return max(width, minScreenWidth), max(height, minScreenHeight)
}
