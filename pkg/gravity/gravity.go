package gravity

import "time"

// FrameDuration is the length of one frame of the reference 60Hz loop.
const FrameDuration = 16 * time.Millisecond

// framesPerDrop holds how many frames the active piece waits per row, by level.
var framesPerDrop = [...]int{53, 49, 45, 41, 37, 33, 28, 22, 17, 11, 10, 9, 8, 7, 6, 6, 5, 5, 4, 4, 3}

// MaxLevel is the highest level with its own speed.
const MaxLevel = uint32(len(framesPerDrop) - 1)

// Interval returns the time between drops at the given level.
// Levels past MaxLevel use the MaxLevel speed.
func Interval(level uint32) time.Duration {
	return time.Duration(framesPerDrop[clamp(level)]) * FrameDuration
}

func clamp(level uint32) uint32 {
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// Timer accumulates frame time and signals when the active piece should drop.
type Timer struct {
	accumulated time.Duration
	level       uint32
}

func New(level uint32) *Timer {
	return &Timer{level: clamp(level)}
}

func (t *Timer) Level() uint32 {
	return t.level
}

// SetLevel changes the speed. Time already accumulated towards the next drop is kept.
func (t *Timer) SetLevel(level uint32) {
	t.level = clamp(level)
}

// Interval returns the drop interval at the current level.
func (t *Timer) Interval() time.Duration {
	return Interval(t.level)
}

// Accumulated returns the time counted towards the next drop.
func (t *Timer) Accumulated() time.Duration {
	return t.accumulated
}

// Reset zeroes the accumulated time without changing the level.
func (t *Timer) Reset() {
	t.accumulated = 0
}

// Update adds delta and reports whether a drop is due.
// A due drop zeroes the accumulator, otherwise the time carries over.
func (t *Timer) Update(delta time.Duration) bool {
	t.accumulated += delta
	if t.accumulated >= t.Interval() {
		t.accumulated = 0
		return true
	}
	return false
}
