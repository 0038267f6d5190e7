package scenes

import (
	"fmt"
	"image/color"
	"time"

	"github.com/cbodonnell/blockfall/client/input"
	"github.com/cbodonnell/blockfall/client/objects"
	"github.com/cbodonnell/blockfall/pkg/game"
	"github.com/cbodonnell/blockfall/pkg/game/constants"
	"github.com/cbodonnell/blockfall/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	zIndexBoard = iota
	zIndexHUD
	zIndexEffects
	zIndexOverlay
)

// lineClearEffectTTL matches the line clear animation.
var lineClearEffectTTL = int(constants.LineClearDuration / time.Millisecond)

var lineClearLabels = map[uint32]string{
	1: "Single",
	2: "Double",
	3: "Triple",
	4: "Tetris",
}

// PlayScene drives a running game from keyboard input.
type PlayScene struct {
	*BaseScene

	game     *game.Game
	cellSize int
	boardX   int
	boardY   int

	pauseOverlay *objects.TextOverlayObject
	paused       bool
	lastLines    uint32
	lastScore    uint64
	effectCount  int
}

type PlaySceneOptions struct {
	// Game is started by the caller before the scene is set.
	Game *game.Game
	// CellSize is the side of one board cell in pixels.
	CellSize int
	// BoardX and BoardY locate the top left corner of the board.
	BoardX int
	BoardY int
}

var _ Scene = &PlayScene{}

func NewPlayScene(opts PlaySceneOptions) (*PlayScene, error) {
	if opts.Game == nil {
		return nil, fmt.Errorf("play scene requires a game")
	}
	s := &PlayScene{
		BaseScene: NewBaseScene(objects.NewSortedZIndexObject("play-root")),
		game:      opts.Game,
		cellSize:  opts.CellSize,
		boardX:    opts.BoardX,
		boardY:    opts.BoardY,
	}
	return s, nil
}

func (s *PlayScene) Init() error {
	root := s.GetRoot()
	board := objects.NewBoardObject("board", objects.NewBoardObjectOptions{
		X:        float32(s.boardX),
		Y:        float32(s.boardY),
		CellSize: float32(s.cellSize),
		View:     s.game.View,
		ZIndex:   zIndexBoard,
	})
	if err := root.AddChild(board.GetID(), board); err != nil {
		return fmt.Errorf("failed to add board: %v", err)
	}

	hud := objects.NewHUDObject("hud", objects.NewHUDObjectOptions{
		X: s.boardX + int(s.game.View().Dimensions.Width)*s.cellSize + 32,
		Y: s.boardY,
		Stats: func() objects.HUDStats {
			return objects.HUDStats{
				Score: s.game.Score(),
				Level: s.game.Level(),
				Lines: s.game.Lines(),
			}
		},
		ZIndex: zIndexHUD,
	})
	if err := root.AddChild(hud.GetID(), hud); err != nil {
		return fmt.Errorf("failed to add hud: %v", err)
	}

	s.pauseOverlay = objects.NewTextOverlayObject("pause", "", &objects.NewTextOverlayObjectOptions{ZIndex: zIndexOverlay})
	if err := root.AddChild(s.pauseOverlay.GetID(), s.pauseOverlay); err != nil {
		return fmt.Errorf("failed to add pause overlay: %v", err)
	}

	s.lastLines = s.game.Lines()
	s.lastScore = s.game.Score()
	return s.BaseScene.Init()
}

func (s *PlayScene) Update() error {
	if input.IsPauseJustPressed() {
		s.paused = !s.paused
		if s.paused {
			s.pauseOverlay.SetText("Paused")
		} else {
			s.pauseOverlay.SetText("")
		}
		log.Debug("Paused: %t", s.paused)
	}

	if !s.paused {
		for _, in := range input.Inputs() {
			s.game.HandleInput(in)
		}
		s.game.Update(time.Second / time.Duration(ebiten.TPS()))
		if err := s.checkLineClear(); err != nil {
			return fmt.Errorf("failed to add line clear effect: %v", err)
		}
	}

	return s.BaseScene.Update()
}

// checkLineClear shows the points earned since the last frame above the board.
func (s *PlayScene) checkLineClear() error {
	lines, score := s.game.Lines(), s.game.Score()
	cleared := lines - s.lastLines
	earned := score - s.lastScore
	s.lastLines, s.lastScore = lines, score
	if cleared == 0 {
		return nil
	}

	s.effectCount++
	width := int(s.game.View().Dimensions.Width) * s.cellSize
	height := int(s.game.View().Dimensions.Height) * s.cellSize
	effect := objects.NewTextEffect(fmt.Sprintf("line-clear-%d", s.effectCount), objects.NewTextEffectOptions{
		Text:   fmt.Sprintf("%s +%d", lineClearLabels[cleared], earned),
		X:      float64(s.boardX + width/2),
		Y:      float64(s.boardY + height/2),
		Color:  color.RGBA{R: 240, G: 200, B: 0, A: 255},
		Scroll: true,
		TTL:    lineClearEffectTTL,
		ZIndex: zIndexEffects,
	})
	return s.GetRoot().AddChild(effect.GetID(), effect)
}

// IsOver reports whether the running game has ended.
func (s *PlayScene) IsOver() bool {
	return s.game.IsOver()
}
