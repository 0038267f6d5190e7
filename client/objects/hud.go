package objects

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/blockfall/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// HUDStats is what the HUD shows for the current run.
type HUDStats struct {
	Score uint64
	Level uint32
	Lines uint32
}

// HUDObject draws the score panel beside the board.
type HUDObject struct {
	*BaseObject

	x, y  int
	stats func() HUDStats
}

type NewHUDObjectOptions struct {
	// X is the x-coordinate of the left edge of the panel.
	X int
	// Y is the y-coordinate of the top of the panel.
	Y int
	// Stats returns the values to draw.
	Stats func() HUDStats
	// ZIndex is the z-index of the panel.
	ZIndex int
}

func NewHUDObject(id string, opts NewHUDObjectOptions) *HUDObject {
	return &HUDObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		x:          opts.X,
		y:          opts.Y,
		stats:      opts.Stats,
	}
}

func (o *HUDObject) Draw(screen *ebiten.Image) {
	stats := o.stats()
	labels := []struct {
		name  string
		value string
	}{
		{"SCORE", fmt.Sprintf("%d", stats.Score)},
		{"LEVEL", fmt.Sprintf("%d", stats.Level)},
		{"LINES", fmt.Sprintf("%d", stats.Lines)},
	}
	y := o.y
	for _, l := range labels {
		y += 24
		text.Draw(screen, l.name, fonts.TTFSmallFont, o.x, y, color.Gray{Y: 160})
		y += 28
		text.Draw(screen, l.value, fonts.TTFNormalFont, o.x, y, color.White)
		y += 12
	}
}
