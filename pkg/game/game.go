package game

import (
	"time"

	"github.com/cbodonnell/blockfall/pkg/game/constants"
	"github.com/cbodonnell/blockfall/pkg/game/types"
	"github.com/cbodonnell/blockfall/pkg/geometry"
	"github.com/cbodonnell/blockfall/pkg/gravity"
	"github.com/cbodonnell/blockfall/pkg/log"
	"github.com/cbodonnell/blockfall/pkg/queue"
	"github.com/cbodonnell/blockfall/pkg/repositories/models"
	"github.com/cbodonnell/blockfall/pkg/tetromino"
	"github.com/cbodonnell/blockfall/pkg/workers"
	"github.com/google/uuid"
)

// Game ties a playfield to its level manager through the shared event queue
// and reports every finished run to the high score worker.
type Game struct {
	playfield         *Playfield
	levelManager      *LevelManager
	eventQueue        queue.Queue[types.Event]
	saveHighScoreChan chan<- workers.SaveHighScoreRequest
	// saveResponseChan belongs to the last reported run and is nil before that.
	saveResponseChan  chan workers.SaveHighScoreResponse
	startLevel        uint32
	playerName        string

	started  bool
	reported bool
}

// NewGameOptions contains options for creating a new Game.
type NewGameOptions struct {
	Dimensions geometry.Dimensions
	Generator  tetromino.Generator
	StartLevel uint32
	PlayerName string
	// SaveHighScoreChan receives finished runs. Nil disables reporting.
	SaveHighScoreChan chan<- workers.SaveHighScoreRequest
}

func NewGame(opts NewGameOptions) *Game {
	dimensions := opts.Dimensions
	if dimensions.Width == 0 || dimensions.Height == 0 {
		dimensions = geometry.NewDimensions(constants.BoardWidth, constants.BoardHeight)
	}
	playerName := opts.PlayerName
	if playerName == "" {
		playerName = constants.DefaultPlayerName
	}

	eventQueue := queue.NewInMemoryQueue[types.Event]()
	return &Game{
		playfield: NewPlayfield(NewPlayfieldOptions{
			Dimensions: dimensions,
			Generator:  opts.Generator,
			EventQueue: eventQueue,
			Level:      opts.StartLevel,
			DeferSpawn: true,
		}),
		levelManager:      NewLevelManager(eventQueue),
		eventQueue:        eventQueue,
		saveHighScoreChan: opts.SaveHighScoreChan,
		startLevel:        clampLevel(opts.StartLevel),
		playerName:        playerName,
	}
}

func clampLevel(level uint32) uint32 {
	if level > gravity.MaxLevel {
		return gravity.MaxLevel
	}
	return level
}

// Start begins a new run at the configured start level. The first piece of
// the run is the generator's next piece. An answer still pending for the
// previous run is discarded.
func (g *Game) Start() {
	g.saveResponseChan = nil
	g.eventQueue.ClearQueue()
	g.levelManager.Reset()
	g.levelManager.StartLevel(g.startLevel)
	g.playfield.Reset()
	g.processEvents()
	g.started = true
	g.reported = false
	log.Info("Started game at level %d", g.startLevel)
}

// HandleInput routes one player command. StartGame begins a run when none is
// in progress, every other input goes to the playfield.
func (g *Game) HandleInput(in types.Input) bool {
	if in == types.InputStartGame {
		if g.started && !g.IsOver() {
			return false
		}
		g.Start()
		return true
	}
	if !g.started {
		return false
	}
	return g.playfield.HandleInput(in)
}

// Update advances the game by one frame.
func (g *Game) Update(delta time.Duration) {
	if !g.started {
		return
	}
	g.playfield.Update(delta)
	g.processEvents()
	if g.IsOver() && !g.reported {
		g.reported = true
		g.reportHighScore()
	}
}

// processEvents drains the event queue once. Events raised by the handlers
// are left for the next frame.
func (g *Game) processEvents() {
	for _, item := range g.eventQueue.ReadAllMessages() {
		switch event := item.(type) {
		case types.LevelStartedEvent:
			log.Debug("Level started: %d", event.Level)
			g.playfield.SetLevel(event.Level)
		case types.LinesClearedEvent:
			log.Debug("Lines cleared: %d", event.Count)
			g.levelManager.HandleLinesCleared(event.Count)
		default:
			log.Error("unhandled event type: %T", event)
		}
	}
}

func (g *Game) reportHighScore() {
	entry := &models.HighScore{
		ID:         uuid.New(),
		Name:       g.playerName,
		Score:      g.levelManager.Score(),
		Level:      g.levelManager.Level(),
		Lines:      g.levelManager.Lines(),
		AchievedAt: time.Now().UTC(),
	}
	log.Info("Game over: %s scored %d at level %d with %d lines", entry.Name, entry.Score, entry.Level, entry.Lines)

	if g.saveHighScoreChan == nil {
		log.Debug("No high score channel configured, skipping save")
		return
	}
	g.saveResponseChan = make(chan workers.SaveHighScoreResponse, 1)
	request := workers.SaveHighScoreRequest{
		Entry:    entry,
		Response: g.saveResponseChan,
	}
	select {
	case g.saveHighScoreChan <- request:
	default:
		log.Warn("High score channel is full, dropping score for %s", entry.Name)
	}
}

// SaveResult returns the outcome of the current run once the worker has answered.
// It reports false until then and for runs that were never reported.
func (g *Game) SaveResult() (workers.SaveHighScoreResponse, bool) {
	select {
	case response := <-g.saveResponseChan:
		return response, true
	default:
		return workers.SaveHighScoreResponse{}, false
	}
}

func (g *Game) View() View {
	return g.playfield.View()
}

func (g *Game) Playfield() *Playfield {
	return g.playfield
}

func (g *Game) Score() uint64 {
	return g.levelManager.Score()
}

func (g *Game) Level() uint32 {
	return g.levelManager.Level()
}

func (g *Game) Lines() uint32 {
	return g.levelManager.Lines()
}

func (g *Game) IsOver() bool {
	return g.playfield.State() == PlayfieldStateGameOver
}

func (g *Game) Started() bool {
	return g.started
}

func (g *Game) StartLevel() uint32 {
	return g.startLevel
}

// SetStartLevel changes the level used by the next Start.
func (g *Game) SetStartLevel(level uint32) {
	g.startLevel = clampLevel(level)
}
