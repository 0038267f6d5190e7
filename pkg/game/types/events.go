package types

import "fmt"

// Event is a message from the playfield or the level manager, queued during a
// frame and dispatched by the game after the frame's update.
type Event interface {
	isEvent()
}

// LevelStartedEvent is emitted whenever a new level takes effect.
type LevelStartedEvent struct {
	Level uint32
}

// LinesClearedEvent is emitted when a locked piece completes one or more lines.
type LinesClearedEvent struct {
	Count uint32
}

func (LevelStartedEvent) isEvent() {}

func (LinesClearedEvent) isEvent() {}

func (e LevelStartedEvent) String() string {
	return fmt.Sprintf("LevelStarted(%d)", e.Level)
}

func (e LinesClearedEvent) String() string {
	return fmt.Sprintf("LinesCleared(%d)", e.Count)
}
