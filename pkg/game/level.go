package game

import (
	"github.com/cbodonnell/blockfall/pkg/game/constants"
	"github.com/cbodonnell/blockfall/pkg/game/types"
	"github.com/cbodonnell/blockfall/pkg/log"
	"github.com/cbodonnell/blockfall/pkg/queue"
)

// LevelManager tracks score, cleared lines and the current level.
type LevelManager struct {
	events     queue.Queue[types.Event]
	level      uint32
	totalLines uint32
	score      uint64
}

func NewLevelManager(events queue.Queue[types.Event]) *LevelManager {
	return &LevelManager{events: events}
}

// HandleLinesCleared scores n lines at the current level and advances the
// level once the cleared total reaches the next multiple of ten.
// A level set by StartLevel holds until the line count overtakes it.
func (m *LevelManager) HandleLinesCleared(n uint32) {
	m.score += constants.BasePoints(n) * uint64(m.level+1)
	m.totalLines += n

	newLevel := m.totalLines / constants.LinesPerLevel
	if newLevel > m.level {
		log.Debug("Level %d reached after %d lines", newLevel, m.totalLines)
		m.level = newLevel
		m.events.Enqueue(types.LevelStartedEvent{Level: newLevel})
	}
}

// StartLevel sets the level directly and announces it.
func (m *LevelManager) StartLevel(level uint32) {
	m.level = level
	m.events.Enqueue(types.LevelStartedEvent{Level: level})
}

// Reset zeroes the level, lines and score without emitting an event.
func (m *LevelManager) Reset() {
	m.level = 0
	m.totalLines = 0
	m.score = 0
}

func (m *LevelManager) Level() uint32 {
	return m.level
}

func (m *LevelManager) Lines() uint32 {
	return m.totalLines
}

func (m *LevelManager) Score() uint64 {
	return m.score
}
