package tetromino

import "fmt"

// Rotation diagrams, clockwise order. '#' is an occupied cell.
var diagrams = map[Type][][MatrixSize]string{
	TypeI: {
		{
			"....",
			"####",
			"....",
			"....",
		},
		{
			"..#.",
			"..#.",
			"..#.",
			"..#.",
		},
	},
	TypeO: {
		{
			"....",
			".##.",
			".##.",
			"....",
		},
	},
	TypeT: {
		{
			"....",
			"###.",
			".#..",
			"....",
		},
		{
			".#..",
			"##..",
			".#..",
			"....",
		},
		{
			".#..",
			"###.",
			"....",
			"....",
		},
		{
			".#..",
			".##.",
			".#..",
			"....",
		},
	},
	TypeZ: {
		{
			"....",
			"##..",
			".##.",
			"....",
		},
		{
			"..#.",
			".##.",
			".#..",
			"....",
		},
	},
	TypeS: {
		{
			"....",
			".##.",
			"##..",
			"....",
		},
		{
			"#...",
			"##..",
			".#..",
			"....",
		},
	},
	TypeJ: {
		{
			"....",
			"###.",
			"..#.",
			"....",
		},
		{
			".#..",
			".#..",
			"##..",
			"....",
		},
		{
			"#...",
			"###.",
			"....",
			"....",
		},
		{
			".##.",
			".#..",
			".#..",
			"....",
		},
	},
	TypeL: {
		{
			"....",
			"###.",
			"#...",
			"....",
		},
		{
			"##..",
			".#..",
			".#..",
			"....",
		},
		{
			"..#.",
			"###.",
			"....",
			"....",
		},
		{
			".#..",
			".#..",
			".##.",
			"....",
		},
	},
}

var definitions = buildDefinitions()

func buildDefinitions() []*Definition {
	defs := make([]*Definition, len(AllTypes))
	for _, t := range AllTypes {
		rows, ok := diagrams[t]
		if !ok {
			panic(fmt.Sprintf("missing diagram for tetromino %s", t))
		}
		def := &Definition{Type: t, rotations: make([]Matrix, len(rows))}
		for r, diagram := range rows {
			def.rotations[r] = parseMatrix(t, diagram)
		}
		defs[t] = def
	}
	return defs
}

func parseMatrix(t Type, diagram [MatrixSize]string) Matrix {
	var m Matrix
	count := 0
	for y, row := range diagram {
		if len(row) != MatrixSize {
			panic(fmt.Sprintf("tetromino %s: diagram row %q must be %d cells wide", t, row, MatrixSize))
		}
		for x, c := range row {
			switch c {
			case '#':
				m[y][x] = true
				count++
			case '.':
			default:
				panic(fmt.Sprintf("tetromino %s: invalid diagram cell %q", t, c))
			}
		}
	}
	if count != 4 {
		panic(fmt.Sprintf("tetromino %s: diagram has %d blocks, want 4", t, count))
	}
	return m
}
