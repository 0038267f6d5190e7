package game

import (
	"fmt"
	"time"

	"github.com/cbodonnell/blockfall/pkg/game/constants"
	"github.com/cbodonnell/blockfall/pkg/game/types"
	"github.com/cbodonnell/blockfall/pkg/geometry"
	"github.com/cbodonnell/blockfall/pkg/gravity"
	"github.com/cbodonnell/blockfall/pkg/grid"
	"github.com/cbodonnell/blockfall/pkg/log"
	"github.com/cbodonnell/blockfall/pkg/queue"
	"github.com/cbodonnell/blockfall/pkg/tetromino"
)

type PlayfieldState int

const (
	PlayfieldStatePlaying PlayfieldState = iota
	PlayfieldStateAnimatingLines
	PlayfieldStateGameOver
)

func (s PlayfieldState) String() string {
	switch s {
	case PlayfieldStatePlaying:
		return "Playing"
	case PlayfieldStateAnimatingLines:
		return "AnimatingLines"
	case PlayfieldStateGameOver:
		return "GameOver"
	}
	return fmt.Sprintf("PlayfieldState(%d)", int(s))
}

// Playfield is the board state machine. It owns the grid, the falling piece and
// the gravity timer, and reports cleared lines on the event queue.
type Playfield struct {
	grid      *grid.Grid
	gravity   *gravity.Timer
	generator tetromino.Generator
	events    queue.Queue[types.Event]
	spawn     geometry.Position

	state     PlayfieldState
	current   *tetromino.Instance
	countdown time.Duration
	fullLines []int
}

// NewPlayfieldOptions contains options for creating a new Playfield.
type NewPlayfieldOptions struct {
	Dimensions geometry.Dimensions
	// SpawnPosition defaults to the standard anchor when nil.
	SpawnPosition *geometry.Position
	Generator     tetromino.Generator
	EventQueue    queue.Queue[types.Event]
	Level         uint32
	// DeferSpawn leaves the playfield empty until the first Reset.
	DeferSpawn bool
}

// NewPlayfield returns a playfield in the Playing state with the first piece
// spawned unless DeferSpawn is set.
func NewPlayfield(opts NewPlayfieldOptions) *Playfield {
	spawn := geometry.NewPosition(constants.SpawnX, constants.SpawnY)
	if opts.SpawnPosition != nil {
		spawn = *opts.SpawnPosition
	}
	generator := opts.Generator
	if generator == nil {
		generator = tetromino.NewRandomGenerator(time.Now().UnixNano())
	}
	events := opts.EventQueue
	if events == nil {
		events = queue.NewInMemoryQueue[types.Event]()
	}

	p := &Playfield{
		grid:      grid.New(opts.Dimensions),
		gravity:   gravity.New(opts.Level),
		generator: generator,
		events:    events,
		spawn:     spawn,
		state:     PlayfieldStatePlaying,
	}
	if !opts.DeferSpawn {
		p.Spawn()
	}
	return p
}

func (p *Playfield) State() PlayfieldState {
	return p.state
}

// Current returns a copy of the falling piece, or false when there is none.
func (p *Playfield) Current() (tetromino.Instance, bool) {
	if p.current == nil {
		return tetromino.Instance{}, false
	}
	return *p.current, true
}

func (p *Playfield) Grid() *grid.Grid {
	return p.grid
}

func (p *Playfield) Dimensions() geometry.Dimensions {
	return p.grid.Dimensions()
}

// Countdown returns the remaining line clear animation time. It is zero outside AnimatingLines.
func (p *Playfield) Countdown() time.Duration {
	return p.countdown
}

// FullLines returns the rows being cleared. It is empty outside AnimatingLines.
func (p *Playfield) FullLines() []int {
	return append([]int(nil), p.fullLines...)
}

func (p *Playfield) GravityLevel() uint32 {
	return p.gravity.Level()
}

// HandleInput applies one player command and reports whether it changed the board.
// Only the Playing state accepts input.
func (p *Playfield) HandleInput(in types.Input) bool {
	if p.state != PlayfieldStatePlaying || p.current == nil {
		return false
	}

	switch in {
	case types.InputMoveLeft:
		return p.TryMove((*tetromino.Instance).MoveLeft)
	case types.InputMoveRight:
		return p.TryMove((*tetromino.Instance).MoveRight)
	case types.InputRotateClockwise:
		return p.TryMove((*tetromino.Instance).RotateClockwise)
	case types.InputRotateCounterclockwise:
		return p.TryMove((*tetromino.Instance).RotateCounterclockwise)
	case types.InputMoveDown:
		if !p.TryMove((*tetromino.Instance).MoveDown) {
			p.lock()
		}
		return true
	case types.InputDrop:
		p.HardDrop()
		return true
	default:
		log.Trace("Playfield ignoring input %s", in)
		return false
	}
}

// Update advances the playfield by delta.
func (p *Playfield) Update(delta time.Duration) {
	switch p.state {
	case PlayfieldStatePlaying:
		if p.current == nil {
			p.Spawn()
			return
		}
		if !p.gravity.Update(delta) {
			return
		}
		if !p.TryMove((*tetromino.Instance).MoveDown) {
			p.lock()
		}
	case PlayfieldStateAnimatingLines:
		if p.countdown > delta {
			p.countdown -= delta
			return
		}
		p.grid.RemoveLines(p.fullLines)
		p.fullLines = nil
		p.countdown = 0
		p.state = PlayfieldStatePlaying
		p.Spawn()
	case PlayfieldStateGameOver:
	}
}

// TryMove applies transform to a copy of the falling piece and commits it only
// when the result can be placed.
func (p *Playfield) TryMove(transform func(*tetromino.Instance)) bool {
	if p.current == nil {
		return false
	}
	candidate := *p.current
	transform(&candidate)
	if !p.CanPlace(candidate) {
		return false
	}
	*p.current = candidate
	return true
}

// HardDrop moves the falling piece down until it is blocked and locks it.
func (p *Playfield) HardDrop() {
	if p.current == nil {
		return
	}
	for p.TryMove((*tetromino.Instance).MoveDown) {
	}
	p.lock()
}

// lock writes the falling piece into the grid and either starts the line
// clear animation or spawns the next piece.
func (p *Playfield) lock() {
	if p.current == nil {
		return
	}
	piece := *p.current
	for _, block := range piece.WorldBlocks() {
		p.grid.Set(block, grid.Filled(piece.Type))
	}
	p.current = nil
	p.gravity.Reset()

	full := p.grid.FullLines()
	if len(full) > 0 {
		log.Debug("Locked %s at %s completing %d line(s)", piece.Type, piece.Position, len(full))
		p.fullLines = full
		p.countdown = constants.LineClearDuration
		p.state = PlayfieldStateAnimatingLines
		p.events.Enqueue(types.LinesClearedEvent{Count: uint32(len(full))})
		return
	}
	p.Spawn()
}

// Spawn installs the next piece at the spawn anchor. When the anchor is
// blocked the playfield enters GameOver and no piece is installed.
func (p *Playfield) Spawn() bool {
	piece := p.generator.Generate(p.spawn)
	if !p.CanPlace(piece) {
		log.Debug("Cannot spawn %s at %s, game over", piece.Type, p.spawn)
		p.current = nil
		p.state = PlayfieldStateGameOver
		return false
	}
	p.current = &piece
	return true
}

// CanPlace reports whether every block of piece is on the board and free.
func (p *Playfield) CanPlace(piece tetromino.Instance) bool {
	dimensions := p.grid.Dimensions()
	for _, block := range piece.WorldBlocks() {
		if !dimensions.Contains(block) || p.grid.IsOccupied(block) {
			return false
		}
	}
	return true
}

func (p *Playfield) SetLevel(level uint32) {
	p.gravity.SetLevel(level)
}

// Reset clears the board and starts over with a fresh piece.
func (p *Playfield) Reset() {
	p.grid.Clear()
	p.gravity.Reset()
	p.current = nil
	p.fullLines = nil
	p.countdown = 0
	p.state = PlayfieldStatePlaying
	p.Spawn()
}

// LinesVisible reports whether the lines being cleared should be drawn this frame.
func (p *Playfield) LinesVisible() bool {
	if p.state != PlayfieldStateAnimatingLines {
		return true
	}
	return p.countdown.Milliseconds()%constants.BlinkPeriod.Milliseconds() <= constants.BlinkHiddenAfter.Milliseconds()
}

// Ghost returns where the falling piece would land if dropped now.
func (p *Playfield) Ghost() (tetromino.Instance, bool) {
	if p.current == nil {
		return tetromino.Instance{}, false
	}
	ghost := *p.current
	for {
		next := ghost
		next.MoveDown()
		if !p.CanPlace(next) {
			return ghost, true
		}
		ghost = next
	}
}

// View returns a read-only snapshot for rendering.
func (p *Playfield) View() View {
	view := newView(p.grid.Dimensions(), p.grid.Snapshot(), p.fullLines)
	view.State = p.state
	view.LinesVisible = p.LinesVisible()
	if current, ok := p.Current(); ok {
		view.Current = &current
	}
	if ghost, ok := p.Ghost(); ok {
		view.Ghost = &ghost
	}
	return view
}
