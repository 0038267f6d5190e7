package game

import (
	"github.com/cbodonnell/blockfall/pkg/geometry"
	"github.com/cbodonnell/blockfall/pkg/grid"
	"github.com/cbodonnell/blockfall/pkg/tetromino"
	"github.com/kamstrup/intmap"
)

// View is a read-only snapshot of the playfield for renderers.
// Cells is indexed [row][column] and does not include the falling piece.
type View struct {
	Dimensions   geometry.Dimensions
	Cells        [][]grid.Cell
	Current      *tetromino.Instance
	Ghost        *tetromino.Instance
	FullLines    []int
	LinesVisible bool
	State        PlayfieldState

	fullLines *intmap.Map[int, struct{}]
}

func newView(dimensions geometry.Dimensions, cells [][]grid.Cell, fullLines []int) View {
	lookup := intmap.New[int, struct{}](len(fullLines))
	for _, y := range fullLines {
		lookup.Put(y, struct{}{})
	}
	return View{
		Dimensions:   dimensions,
		Cells:        cells,
		FullLines:    append([]int(nil), fullLines...),
		LinesVisible: true,
		fullLines:    lookup,
	}
}

// IsFullLine reports whether row y is being cleared.
func (v View) IsFullLine(y int) bool {
	if v.fullLines == nil {
		return false
	}
	_, ok := v.fullLines.Get(y)
	return ok
}

// IsLineHidden reports whether row y should be skipped this frame.
func (v View) IsLineHidden(y int) bool {
	return !v.LinesVisible && v.IsFullLine(y)
}

// Cell returns the cell at p, or an empty cell outside the board.
func (v View) Cell(p geometry.Position) grid.Cell {
	if !v.Dimensions.Contains(p) {
		return grid.Empty
	}
	return v.Cells[p.Y][p.X]
}
