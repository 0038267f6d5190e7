package terminal

import (
	"testing"

	"github.com/cbodonnell/blockfall/pkg/game"
	"github.com/cbodonnell/blockfall/pkg/game/types"
	"github.com/cbodonnell/blockfall/pkg/geometry"
	"github.com/cbodonnell/blockfall/pkg/repositories/models"
	"github.com/cbodonnell/blockfall/pkg/tetromino"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScreen struct {
	cells map[[2]int]rune
	shown int
}

func newFakeScreen() *fakeScreen {
	return &fakeScreen{cells: make(map[[2]int]rune)}
}

func (s *fakeScreen) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	s.cells[[2]int{x, y}] = primary
}

func (s *fakeScreen) Clear() {
	s.cells = make(map[[2]int]rune)
}

func (s *fakeScreen) Show() {
	s.shown++
}

func (s *fakeScreen) text(x, y, n int) string {
	out := make([]rune, n)
	for i := range out {
		out[i] = s.cells[[2]int{x + i, y}]
	}
	return string(out)
}

func TestRenderer_Draw(t *testing.T) {
	g := game.NewGame(game.NewGameOptions{
		Dimensions: geometry.NewDimensions(10, 20),
		Generator:  tetromino.NewSequenceGenerator(tetromino.TypeO),
	})
	g.Start()
	require.True(t, g.HandleInput(types.InputDrop))
	g.Update(0)

	screen := newFakeScreen()
	r := NewRenderer(screen)
	r.Draw(g.View(), Stats{Score: 1200, Level: 2, Lines: 14}, "PAUSED")
	r.Show()

	// border corners
	assert.Equal(t, '─', screen.cells[[2]int{0, 0}])
	assert.Equal(t, '│', screen.cells[[2]int{0, 5}])
	assert.Equal(t, '│', screen.cells[[2]int{21, 5}])

	// the landed O fills columns 4 and 5 of the bottom two rows
	assert.Equal(t, "████", screen.text(1+4*cellWidth, 20, 4))
	assert.Equal(t, "████", screen.text(1+4*cellWidth, 19, 4))
	assert.Equal(t, string(emptyRune), screen.text(1, 20, 1))

	panelX := 20 + panelGap
	assert.Equal(t, "SCORE", screen.text(panelX, 1, 5))
	assert.Equal(t, "1200", screen.text(panelX, 2, 4))
	assert.Equal(t, "2", screen.text(panelX, 5, 1))
	assert.Equal(t, "14", screen.text(panelX, 8, 2))
	assert.Equal(t, "PAUSED", screen.text(panelX, 10, 6))
	assert.Equal(t, 1, screen.shown)
}

func TestRenderer_DrawHighScores(t *testing.T) {
	view := game.NewGame(game.NewGameOptions{}).View()
	screen := newFakeScreen()
	r := NewRenderer(screen)

	r.DrawHighScores(view, []*models.HighScore{
		{Name: "ACE", Score: 9000},
		{Name: "BOB", Score: 400},
	}, 2)

	x := 20 + panelGap
	assert.Equal(t, "HIGH SCORES", screen.text(x, 12, 11))
	assert.Equal(t, " 1 ACE            9000", screen.text(x, 13, 22))
	assert.Equal(t, " 2 BOB             400", screen.text(x, 14, 22))
}

func TestKeyAction(t *testing.T) {
	tests := []struct {
		name       string
		key        tcell.Key
		ch         rune
		wantAction Action
		wantInput  types.Input
	}{
		{name: "left arrow", key: tcell.KeyLeft, wantAction: ActionInput, wantInput: types.InputMoveLeft},
		{name: "right arrow", key: tcell.KeyRight, wantAction: ActionInput, wantInput: types.InputMoveRight},
		{name: "down arrow", key: tcell.KeyDown, wantAction: ActionInput, wantInput: types.InputMoveDown},
		{name: "up arrow rotates", key: tcell.KeyUp, wantAction: ActionInput, wantInput: types.InputRotateClockwise},
		{name: "enter starts", key: tcell.KeyEnter, wantAction: ActionInput, wantInput: types.InputStartGame},
		{name: "z rotates back", key: tcell.KeyRune, ch: 'z', wantAction: ActionInput, wantInput: types.InputRotateCounterclockwise},
		{name: "space drops", key: tcell.KeyRune, ch: ' ', wantAction: ActionInput, wantInput: types.InputDrop},
		{name: "vi left", key: tcell.KeyRune, ch: 'h', wantAction: ActionInput, wantInput: types.InputMoveLeft},
		{name: "pause", key: tcell.KeyRune, ch: 'p', wantAction: ActionPause},
		{name: "escape quits", key: tcell.KeyEscape, wantAction: ActionQuit},
		{name: "q quits", key: tcell.KeyRune, ch: 'q', wantAction: ActionQuit},
		{name: "unmapped rune", key: tcell.KeyRune, ch: 'k', wantAction: ActionNone},
		{name: "unmapped key", key: tcell.KeyTab, wantAction: ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, in := KeyAction(tt.key, tt.ch)
			assert.Equal(t, tt.wantAction, action)
			if tt.wantAction == ActionInput {
				assert.Equal(t, tt.wantInput, in)
			}
		})
	}
}
