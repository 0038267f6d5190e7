// Package terminal draws a game on a tcell screen and maps terminal keys to game inputs.
package terminal

import (
	"fmt"

	"github.com/cbodonnell/blockfall/pkg/game"
	"github.com/cbodonnell/blockfall/pkg/game/types"
	"github.com/cbodonnell/blockfall/pkg/repositories/models"
	"github.com/cbodonnell/blockfall/pkg/tetromino"
	"github.com/gdamore/tcell/v2"
)

const (
	// cellWidth is the number of terminal columns per board cell.
	cellWidth = 2
	blockRune = '█'
	ghostRune = '░'
	emptyRune = '·'
	// panelGap separates the board from the side panel.
	panelGap = 4
)

var pieceColors = map[tetromino.Type]tcell.Color{
	tetromino.TypeI: tcell.NewRGBColor(0, 240, 240),
	tetromino.TypeO: tcell.NewRGBColor(240, 240, 0),
	tetromino.TypeT: tcell.NewRGBColor(160, 0, 240),
	tetromino.TypeZ: tcell.NewRGBColor(240, 0, 0),
	tetromino.TypeS: tcell.NewRGBColor(0, 240, 0),
	tetromino.TypeJ: tcell.NewRGBColor(0, 0, 240),
	tetromino.TypeL: tcell.NewRGBColor(240, 160, 0),
}

// Stats is the side panel content.
type Stats struct {
	Score uint64
	Level uint32
	Lines uint32
}

// Screen is the part of tcell.Screen the renderer draws with.
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Clear()
	Show()
}

type Renderer struct {
	screen Screen
}

func NewRenderer(screen Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw clears the screen and draws the board with its border at (1,1),
// the stats beside it and an optional status message below the stats.
func (r *Renderer) Draw(v game.View, stats Stats, message string) {
	r.screen.Clear()
	border := tcell.StyleDefault.Foreground(tcell.ColorGray)
	w := int(v.Dimensions.Width) * cellWidth
	h := int(v.Dimensions.Height)

	for y := 0; y <= h+1; y++ {
		r.screen.SetContent(0, y, '│', nil, border)
		r.screen.SetContent(w+1, y, '│', nil, border)
	}
	for x := 0; x <= w+1; x++ {
		r.screen.SetContent(x, 0, '─', nil, border)
		r.screen.SetContent(x, h+1, '─', nil, border)
	}

	empty := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for y, row := range v.Cells {
		hidden := v.IsLineHidden(y)
		for x, cell := range row {
			if cell.Filled && !hidden {
				r.drawCell(x, y, blockRune, tcell.StyleDefault.Foreground(pieceColors[cell.Type]))
			} else {
				r.drawCell(x, y, emptyRune, empty)
			}
		}
	}
	if v.Ghost != nil {
		r.drawPiece(*v.Ghost, ghostRune)
	}
	if v.Current != nil {
		r.drawPiece(*v.Current, blockRune)
	}

	panelX := w + panelGap
	r.drawText(panelX, 1, tcell.StyleDefault.Foreground(tcell.ColorGray), "SCORE")
	r.drawText(panelX, 2, tcell.StyleDefault, fmt.Sprintf("%d", stats.Score))
	r.drawText(panelX, 4, tcell.StyleDefault.Foreground(tcell.ColorGray), "LEVEL")
	r.drawText(panelX, 5, tcell.StyleDefault, fmt.Sprintf("%d", stats.Level))
	r.drawText(panelX, 7, tcell.StyleDefault.Foreground(tcell.ColorGray), "LINES")
	r.drawText(panelX, 8, tcell.StyleDefault, fmt.Sprintf("%d", stats.Lines))
	if message != "" {
		r.drawText(panelX, 10, tcell.StyleDefault.Foreground(tcell.ColorYellow), message)
	}
}

// DrawHighScores draws the table below the side panel stats.
// highlight is the 1-based row to emphasize, 0 for none.
func (r *Renderer) DrawHighScores(v game.View, entries []*models.HighScore, highlight int) {
	x := int(v.Dimensions.Width)*cellWidth + panelGap
	y := 12
	r.drawText(x, y, tcell.StyleDefault.Foreground(tcell.ColorGray), "HIGH SCORES")
	for i, e := range entries {
		style := tcell.StyleDefault
		if i+1 == highlight {
			style = style.Foreground(tcell.ColorYellow).Bold(true)
		}
		r.drawText(x, y+1+i, style, fmt.Sprintf("%2d %-10.10s %8d", i+1, e.Name, e.Score))
	}
}

func (r *Renderer) Show() {
	r.screen.Show()
}

func (r *Renderer) drawPiece(piece tetromino.Instance, ch rune) {
	style := tcell.StyleDefault.Foreground(pieceColors[piece.Type])
	for _, p := range piece.WorldBlocks() {
		if p.Y < 0 {
			continue
		}
		r.drawCell(p.X, p.Y, ch, style)
	}
}

// drawCell draws board cell (x,y) inside the border.
func (r *Renderer) drawCell(x, y int, ch rune, style tcell.Style) {
	for i := 0; i < cellWidth; i++ {
		r.screen.SetContent(1+x*cellWidth+i, 1+y, ch, nil, style)
	}
}

func (r *Renderer) drawText(x, y int, style tcell.Style, s string) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// Action is what a key press asks of the terminal loop.
type Action int

const (
	ActionNone Action = iota
	ActionInput
	ActionPause
	ActionQuit
)

// KeyAction maps a terminal key to a loop action and, for ActionInput, the game input.
// ch is only read for tcell.KeyRune.
func KeyAction(key tcell.Key, ch rune) (Action, types.Input) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, 0
	case tcell.KeyLeft:
		return ActionInput, types.InputMoveLeft
	case tcell.KeyRight:
		return ActionInput, types.InputMoveRight
	case tcell.KeyDown:
		return ActionInput, types.InputMoveDown
	case tcell.KeyUp:
		return ActionInput, types.InputRotateClockwise
	case tcell.KeyEnter:
		return ActionInput, types.InputStartGame
	case tcell.KeyRune:
		switch ch {
		case 'q':
			return ActionQuit, 0
		case 'p':
			return ActionPause, 0
		case 'x':
			return ActionInput, types.InputRotateClockwise
		case 'z':
			return ActionInput, types.InputRotateCounterclockwise
		case ' ':
			return ActionInput, types.InputDrop
		case 'h':
			return ActionInput, types.InputMoveLeft
		case 'l':
			return ActionInput, types.InputMoveRight
		case 'j':
			return ActionInput, types.InputMoveDown
		}
	}
	return ActionNone, 0
}
