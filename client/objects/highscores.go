package objects

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/blockfall/client/fonts"
	"github.com/cbodonnell/blockfall/pkg/repositories/models"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

var highlightColor = color.RGBA{R: 240, G: 200, B: 0, A: 255}

// HighScoreTableObject draws the ranked high score list.
// The row matching highlight (1-based, 0 for none) is drawn in a highlight color.
type HighScoreTableObject struct {
	*BaseObject

	x, y      int
	entries   []*models.HighScore
	highlight int
}

type NewHighScoreTableObjectOptions struct {
	X         int
	Y         int
	Entries   []*models.HighScore
	Highlight int
	ZIndex    int
}

func NewHighScoreTableObject(id string, opts NewHighScoreTableObjectOptions) *HighScoreTableObject {
	return &HighScoreTableObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		x:          opts.X,
		y:          opts.Y,
		entries:    opts.Entries,
		highlight:  opts.Highlight,
	}
}

// SetEntries replaces the table contents.
func (o *HighScoreTableObject) SetEntries(entries []*models.HighScore, highlight int) {
	o.entries = entries
	o.highlight = highlight
}

func (o *HighScoreTableObject) Draw(screen *ebiten.Image) {
	f := fonts.TTFSmallFont
	y := o.y
	text.Draw(screen, fmt.Sprintf("%-3s %-10s %8s %5s %5s", "#", "NAME", "SCORE", "LVL", "LINES"), f, o.x, y, color.Gray{Y: 160})
	if len(o.entries) == 0 {
		text.Draw(screen, "NO SCORES YET", f, o.x, y+20, color.White)
		return
	}
	for i, e := range o.entries {
		y += 20
		clr := color.Color(color.White)
		if i+1 == o.highlight {
			clr = highlightColor
		}
		name := e.Name
		if len(name) > 10 {
			name = name[:10]
		}
		line := fmt.Sprintf("%-3d %-10s %8d %5d %5d", i+1, name, e.Score, e.Level, e.Lines)
		text.Draw(screen, line, f, o.x, y, clr)
	}
}
