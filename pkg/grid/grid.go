package grid

import (
	"github.com/cbodonnell/blockfall/pkg/geometry"
	"github.com/cbodonnell/blockfall/pkg/tetromino"
)

// Cell is an optional piece type: the zero value is an empty cell.
type Cell struct {
	Type   tetromino.Type
	Filled bool
}

// Filled returns a cell occupied by a block of type t.
func Filled(t tetromino.Type) Cell {
	return Cell{Type: t, Filled: true}
}

// Empty is the unoccupied cell.
var Empty = Cell{}

// Grid stores the landed blocks of the board.
//
// Grid is passive storage: out-of-bounds reads return Empty and out-of-bounds
// writes are dropped. Placement rules are enforced by the playfield.
type Grid struct {
	dimensions geometry.Dimensions
	cells      [][]Cell
}

func New(dimensions geometry.Dimensions) *Grid {
	g := &Grid{
		dimensions: dimensions,
		cells:      make([][]Cell, dimensions.Height),
	}
	for y := range g.cells {
		g.cells[y] = make([]Cell, dimensions.Width)
	}
	return g
}

func (g *Grid) Dimensions() geometry.Dimensions {
	return g.dimensions
}

func (g *Grid) Set(p geometry.Position, cell Cell) {
	if !g.dimensions.Contains(p) {
		return
	}
	g.cells[p.Y][p.X] = cell
}

func (g *Grid) Get(p geometry.Position) Cell {
	if !g.dimensions.Contains(p) {
		return Empty
	}
	return g.cells[p.Y][p.X]
}

func (g *Grid) IsOccupied(p geometry.Position) bool {
	return g.Get(p).Filled
}

// FullLines returns the indices of every completely filled row in ascending order.
func (g *Grid) FullLines() []int {
	var full []int
	for y, row := range g.cells {
		if isRowFull(row) {
			full = append(full, y)
		}
	}
	return full
}

func isRowFull(row []Cell) bool {
	for _, cell := range row {
		if !cell.Filled {
			return false
		}
	}
	return len(row) > 0
}

// RemoveLines deletes the given rows. Rows above a removed row move down and
// empty rows are inserted at the top. Rows out of range are ignored.
func (g *Grid) RemoveLines(rows []int) {
	remove := make(map[int]bool, len(rows))
	for _, y := range rows {
		if y >= 0 && y < len(g.cells) {
			remove[y] = true
		}
	}
	if len(remove) == 0 {
		return
	}

	write := len(g.cells) - 1
	for read := len(g.cells) - 1; read >= 0; read-- {
		if remove[read] {
			continue
		}
		if write != read {
			copy(g.cells[write], g.cells[read])
		}
		write--
	}
	for ; write >= 0; write-- {
		for x := range g.cells[write] {
			g.cells[write][x] = Empty
		}
	}
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = Empty
		}
	}
}

// Snapshot returns a deep copy of the cells indexed [row][column].
func (g *Grid) Snapshot() [][]Cell {
	snapshot := make([][]Cell, len(g.cells))
	for y, row := range g.cells {
		snapshot[y] = append([]Cell(nil), row...)
	}
	return snapshot
}

// FilledCount returns the number of occupied cells.
func (g *Grid) FilledCount() int {
	n := 0
	for _, row := range g.cells {
		for _, cell := range row {
			if cell.Filled {
				n++
			}
		}
	}
	return n
}
