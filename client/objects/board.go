package objects

import (
	"image/color"

	"github.com/cbodonnell/blockfall/pkg/game"
	"github.com/cbodonnell/blockfall/pkg/geometry"
	"github.com/cbodonnell/blockfall/pkg/grid"
	"github.com/cbodonnell/blockfall/pkg/tetromino"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	boardBackground = color.RGBA{R: 16, G: 16, B: 24, A: 255}
	boardBorder     = color.RGBA{R: 96, G: 96, B: 112, A: 255}
	ghostAlpha      = uint8(64)

	// PieceColors is indexed by tetromino.Type.
	PieceColors = map[tetromino.Type]color.RGBA{
		tetromino.TypeI: {R: 0, G: 240, B: 240, A: 255},
		tetromino.TypeO: {R: 240, G: 240, B: 0, A: 255},
		tetromino.TypeT: {R: 160, G: 0, B: 240, A: 255},
		tetromino.TypeZ: {R: 240, G: 0, B: 0, A: 255},
		tetromino.TypeS: {R: 0, G: 240, B: 0, A: 255},
		tetromino.TypeJ: {R: 0, G: 0, B: 240, A: 255},
		tetromino.TypeL: {R: 240, G: 160, B: 0, A: 255},
	}
)

// BoardObject draws the playfield: landed blocks, the ghost, then the falling piece.
type BoardObject struct {
	*BaseObject

	x, y     float32
	cellSize float32
	// view is the snapshot drawn on the next frame.
	view func() game.View
}

type NewBoardObjectOptions struct {
	// X is the x-coordinate of the top left corner of the board.
	X float32
	// Y is the y-coordinate of the top left corner of the board.
	Y float32
	// CellSize is the side of one cell in pixels.
	CellSize float32
	// View returns the snapshot to draw.
	View func() game.View
	// ZIndex is the z-index of the board object.
	ZIndex int
}

func NewBoardObject(id string, opts NewBoardObjectOptions) *BoardObject {
	return &BoardObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: opts.ZIndex,
		}),
		x:        opts.X,
		y:        opts.Y,
		cellSize: opts.CellSize,
		view:     opts.View,
	}
}

func (o *BoardObject) Draw(screen *ebiten.Image) {
	v := o.view()
	w := float32(v.Dimensions.Width) * o.cellSize
	h := float32(v.Dimensions.Height) * o.cellSize
	vector.DrawFilledRect(screen, o.x, o.y, w, h, boardBackground, false)
	vector.StrokeRect(screen, o.x-1, o.y-1, w+2, h+2, 2, boardBorder, false)

	for y, row := range v.Cells {
		if v.IsLineHidden(y) {
			continue
		}
		for x, cell := range row {
			if cell.Filled {
				o.drawCell(screen, geometry.NewPosition(x, y), cell, 255)
			}
		}
	}

	if v.Ghost != nil {
		o.drawPiece(screen, *v.Ghost, ghostAlpha)
	}
	if v.Current != nil {
		o.drawPiece(screen, *v.Current, 255)
	}
}

func (o *BoardObject) drawPiece(screen *ebiten.Image, piece tetromino.Instance, alpha uint8) {
	cell := grid.Filled(piece.Type)
	for _, p := range piece.WorldBlocks() {
		// blocks above the top edge are not drawn
		if p.Y < 0 {
			continue
		}
		o.drawCell(screen, p, cell, alpha)
	}
}

func (o *BoardObject) drawCell(screen *ebiten.Image, p geometry.Position, cell grid.Cell, alpha uint8) {
	clr := PieceColors[cell.Type]
	clr.R = uint8(uint16(clr.R) * uint16(alpha) / 255)
	clr.G = uint8(uint16(clr.G) * uint16(alpha) / 255)
	clr.B = uint8(uint16(clr.B) * uint16(alpha) / 255)
	clr.A = alpha
	px := o.x + float32(p.X)*o.cellSize
	py := o.y + float32(p.Y)*o.cellSize
	vector.DrawFilledRect(screen, px+1, py+1, o.cellSize-2, o.cellSize-2, clr, false)
}
