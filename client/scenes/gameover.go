package scenes

import (
	"context"
	"fmt"
	"time"

	"github.com/cbodonnell/blockfall/client/fonts"
	"github.com/cbodonnell/blockfall/client/objects"
	"github.com/cbodonnell/blockfall/pkg/log"
	"github.com/cbodonnell/blockfall/pkg/repositories"
	"github.com/cbodonnell/blockfall/pkg/repositories/models"
	"github.com/cbodonnell/blockfall/pkg/workers"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// saveResultTimeout bounds how long the scene waits for the save worker.
	saveResultTimeout = 3 * time.Second
	loadTimeout       = 2 * time.Second
)

// GameOverScene shows the final result of a run and the high score table
// once the save worker has answered.
type GameOverScene struct {
	*BaseScene

	score uint64
	level uint32
	lines uint32

	saveResult     func() (workers.SaveHighScoreResponse, bool)
	loadHighScores func(ctx context.Context) ([]*models.HighScore, error)

	status   *objects.TextOverlayObject
	table    *objects.HighScoreTableObject
	waited   time.Duration
	resolved bool
}

type GameOverSceneOptions struct {
	Score uint64
	Level uint32
	Lines uint32
	// SaveResult polls for the save worker's answer. Nil when scores are not saved.
	SaveResult func() (workers.SaveHighScoreResponse, bool)
	// LoadHighScores reads the table. Nil hides it.
	LoadHighScores func(ctx context.Context) ([]*models.HighScore, error)
	// TableX and TableY locate the high score table.
	TableX int
	TableY int
}

var _ Scene = &GameOverScene{}

func NewGameOverScene(opts GameOverSceneOptions) (*GameOverScene, error) {
	s := &GameOverScene{
		BaseScene:      NewBaseScene(objects.NewTextOverlayObject("overlay-gameover", "Game Over!", &objects.NewTextOverlayObjectOptions{OffsetY: -180})),
		score:          opts.Score,
		level:          opts.Level,
		lines:          opts.Lines,
		saveResult:     opts.SaveResult,
		loadHighScores: opts.LoadHighScores,
	}
	s.status = objects.NewTextOverlayObject("status", "", &objects.NewTextOverlayObjectOptions{
		OffsetY: -100,
		Face:    fonts.TTFNormalFont,
	})
	s.table = objects.NewHighScoreTableObject("highscores", objects.NewHighScoreTableObjectOptions{
		X: opts.TableX,
		Y: opts.TableY,
	})
	return s, nil
}

func (s *GameOverScene) Init() error {
	root := s.GetRoot()
	summary := objects.NewTextOverlayObject("summary", fmt.Sprintf("Score %d  Level %d  Lines %d", s.score, s.level, s.lines), &objects.NewTextOverlayObjectOptions{
		OffsetY: -140,
		Face:    fonts.TTFNormalFont,
	})
	for _, child := range []objects.GameObject{summary, s.status} {
		if err := root.AddChild(child.GetID(), child); err != nil {
			return fmt.Errorf("failed to add %s: %v", child.GetID(), err)
		}
	}

	if s.saveResult == nil {
		s.resolve(workers.SaveHighScoreResponse{})
	}
	return s.BaseScene.Init()
}

func (s *GameOverScene) Update() error {
	if !s.resolved {
		if response, ok := s.saveResult(); ok {
			s.resolve(response)
		} else {
			s.waited += time.Second / time.Duration(ebiten.TPS())
			if s.waited >= saveResultTimeout {
				log.Warn("Timed out waiting for the high score to be saved")
				s.resolve(workers.SaveHighScoreResponse{Err: fmt.Errorf("timed out")})
			}
		}
	}
	return s.BaseScene.Update()
}

func (s *GameOverScene) resolve(response workers.SaveHighScoreResponse) {
	s.resolved = true
	switch {
	case response.Err != nil:
		s.status.SetText("Score not saved")
	case response.Rank > 0:
		s.status.SetText(fmt.Sprintf("New high score! Rank %d", response.Rank))
	}

	if s.loadHighScores == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()
	entries, err := s.loadHighScores(ctx)
	if err != nil && !repositories.IsNotFound(err) {
		log.Error("Failed to load high scores: %v", err)
		return
	}
	s.table.SetEntries(entries, response.Rank)
	if s.table.GetParent() == nil {
		if err := s.GetRoot().AddChild(s.table.GetID(), s.table); err != nil {
			log.Error("Failed to add high score table: %v", err)
		}
	}
}
